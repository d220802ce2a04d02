package knn

import (
	"encoding/gob"
	"fmt"
	"math"
	"os"
	"sort"
)

// Métricas soportadas por los modelos pre-entrenados.
const (
	MetricCosine    = "cosine"
	MetricEuclidean = "euclidean"
	MetricManhattan = "manhattan"
)

// ValidMetric indica si la métrica corresponde a un modelo conocido.
func ValidMetric(metric string) bool {
	switch metric {
	case MetricCosine, MetricEuclidean, MetricManhattan:
		return true
	}
	return false
}

// payload serializado con gob en los ficheros KNN_<metric>.gob.
// El equivalente Go del pickle de sklearn: métrica + vectores ya ajustados,
// alineados fila a fila con el catálogo.
type modelFile struct {
	Metric  string
	Vectors [][]float64
}

// Model es un índice de vecinos pre-entrenado y de solo lectura.
// Las consultas no mutan nada, así que es seguro para lectores concurrentes.
type Model struct {
	metric  string
	vectors [][]float64
}

// New valida y construye un modelo en memoria.
func New(metric string, vectors [][]float64) (*Model, error) {
	if !ValidMetric(metric) {
		return nil, fmt.Errorf("métrica desconocida %q", metric)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("modelo sin vectores")
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("vector %d con dimensión %d (esperaba %d)", i, len(v), dim)
		}
	}
	return &Model{metric: metric, vectors: vectors}, nil
}

// Load abre y valida un fichero de modelo. Cualquier problema devuelve error;
// el que llama decide si degradar al scorer de contenido.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var mf modelFile
	if err := gob.NewDecoder(f).Decode(&mf); err != nil {
		return nil, fmt.Errorf("modelo corrupto o incompatible: %w", err)
	}
	return New(mf.Metric, mf.Vectors)
}

// Save escribe un modelo en disco (tooling offline y tests).
func Save(path, metric string, vectors [][]float64) error {
	if !ValidMetric(metric) {
		return fmt.Errorf("métrica desconocida %q", metric)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(modelFile{Metric: metric, Vectors: vectors})
}

func (m *Model) Metric() string { return m.metric }
func (m *Model) Len() int       { return len(m.vectors) }

// FittedVector devuelve el vector ajustado de la fila i, para usarlo
// como query sin recalcular features.
func (m *Model) FittedVector(i int) ([]float64, error) {
	if i < 0 || i >= len(m.vectors) {
		return nil, fmt.Errorf("índice %d fuera de rango (0..%d)", i, len(m.vectors)-1)
	}
	return m.vectors[i], nil
}

// QueryNeighbors devuelve, para cada query, los k vecinos más cercanos
// (índices y distancias en paralelo, ordenados por distancia ascendente).
func (m *Model) QueryNeighbors(queries [][]float64, k int) ([][]int, [][]float64, error) {
	if k <= 0 {
		return nil, nil, fmt.Errorf("k debe ser positivo")
	}
	if k > len(m.vectors) {
		k = len(m.vectors)
	}

	dim := len(m.vectors[0])
	indices := make([][]int, len(queries))
	distances := make([][]float64, len(queries))

	for qi, q := range queries {
		if len(q) != dim {
			return nil, nil, fmt.Errorf("query %d con dimensión %d (esperaba %d)", qi, len(q), dim)
		}

		type cand struct {
			idx  int
			dist float64
		}
		cands := make([]cand, len(m.vectors))
		for i, v := range m.vectors {
			cands[i] = cand{idx: i, dist: m.distance(q, v)}
		}
		sort.Slice(cands, func(a, b int) bool {
			if cands[a].dist != cands[b].dist {
				return cands[a].dist < cands[b].dist
			}
			return cands[a].idx < cands[b].idx
		})

		idxs := make([]int, k)
		dists := make([]float64, k)
		for i := 0; i < k; i++ {
			idxs[i] = cands[i].idx
			dists[i] = cands[i].dist
		}
		indices[qi] = idxs
		distances[qi] = dists
	}
	return indices, distances, nil
}

func (m *Model) distance(a, b []float64) float64 {
	switch m.metric {
	case MetricEuclidean:
		var s float64
		for i := range a {
			d := a[i] - b[i]
			s += d * d
		}
		return math.Sqrt(s)
	case MetricManhattan:
		var s float64
		for i := range a {
			s += math.Abs(a[i] - b[i])
		}
		return s
	default: // cosine
		var dot, na, nb float64
		for i := range a {
			dot += a[i] * b[i]
			na += a[i] * a[i]
			nb += b[i] * b[i]
		}
		if na == 0 || nb == 0 {
			// vector nulo: distancia coseno máxima razonable
			return 1
		}
		return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb))
	}
}
