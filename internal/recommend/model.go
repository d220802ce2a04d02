package recommend

import (
	"fmt"

	"wildflix-api/internal/catalog"
	"wildflix-api/internal/knn"
)

// Scorer con modelo de vecinos. El resultado es un outcome tipado:
// o scores utilizables, o degradado con motivo. La decisión de caer al
// fallback es una rama explícita del motor, no una excepción tragada.

type modelOutcome struct {
	scores   map[int]float64
	degraded bool
	reason   string
}

func degraded(format string, args ...any) modelOutcome {
	return modelOutcome{degraded: true, reason: fmt.Sprintf(format, args...)}
}

func (e *Engine) modelScores(cat *catalog.Catalog, model NeighborModel, favKeys map[string]bool, n int) modelOutcome {
	if model.Len() != cat.Len() {
		return degraded("modelo no alineado con el catálogo (%d vectores vs %d filas)", model.Len(), cat.Len())
	}

	// favoritos → índices de fila; los que no matchean se ignoran
	favRows := make(map[int]bool, len(favKeys))
	queries := make([][]float64, 0, len(favKeys))
	for key := range favKeys {
		i, ok := cat.IndexOf(key)
		if !ok {
			continue
		}
		favRows[i] = true
	}
	if len(favRows) == 0 {
		return degraded("ningún favorito presente en el catálogo")
	}
	for i := range favRows {
		v, err := model.FittedVector(i)
		if err != nil {
			return degraded("vector ajustado inaccesible: %v", err)
		}
		queries = append(queries, v)
	}

	k := n * e.opts.NeighborMultiplier
	if k < e.opts.NeighborFloor {
		k = e.opts.NeighborFloor
	}
	if k > model.Len() {
		k = model.Len()
	}

	// una sola consulta batcheada para todos los seeds
	indices, distances, err := model.QueryNeighbors(queries, k)
	if err != nil {
		return degraded("consulta de vecinos falló: %v", err)
	}

	scores := make(map[int]float64)
	for qi := range indices {
		for j, nb := range indices[qi] {
			if nb < 0 || nb >= cat.Len() || favRows[nb] {
				continue
			}
			sim := similarityFromDistance(model.Metric(), distances[qi][j])
			// nos quedamos con la MEJOR similitud entre todos los seeds:
			// un candidato fuerte para cualquier favorito rankea por ese
			// match, no por un promedio diluido
			if prev, seen := scores[nb]; !seen || sim > prev {
				scores[nb] = sim
			}
		}
	}
	if len(scores) == 0 {
		return degraded("el modelo no devolvió candidatos")
	}
	return modelOutcome{scores: scores}
}

// similarityFromDistance convierte distancia en similitud según la métrica.
// Para coseno la distancia vive en [0,2] y 1-d es una similitud real.
// Para euclidiana/manhattan 1-d no significa nada: usamos 1/(1+d), que es
// monótona decreciente en d, así el orden del ranking sigue siendo
// "más cercano primero".
func similarityFromDistance(metric string, d float64) float64 {
	switch metric {
	case knn.MetricEuclidean, knn.MetricManhattan:
		return 1 / (1 + d)
	default:
		return 1 - d
	}
}
