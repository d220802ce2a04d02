package recommend

import (
	"math"

	"wildflix-api/internal/catalog"
)

// Scorer determinista sin modelo: coseno entre el perfil del usuario
// (suma de tokens de sus favoritos, ponderada por frecuencia) y el set
// de tokens de cada candidato (vector binario).

// fallbackScores devuelve score por índice de fila para todas las filas
// no favoritas. ok=false significa "sin señal suficiente" (ningún favorito
// en el catálogo o perfil vacío): resultado legítimo, no un error.
func fallbackScores(cat *catalog.Catalog, favKeys map[string]bool) (map[int]float64, bool) {
	profile := make(map[string]float64)
	favRows := make(map[int]bool)

	for i := range cat.Movies {
		if !favKeys[cat.Movies[i].ImdbKey] {
			continue
		}
		favRows[i] = true
		for _, tok := range ContentTokens(&cat.Movies[i]) {
			profile[tok]++
		}
	}
	if len(favRows) == 0 || len(profile) == 0 {
		return nil, false
	}

	var norm float64
	for _, w := range profile {
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm <= 0 {
		return nil, false
	}

	scores := make(map[int]float64, cat.Len()-len(favRows))
	for i := range cat.Movies {
		if favRows[i] {
			continue
		}
		set := tokenSet(ContentTokens(&cat.Movies[i]))
		if len(set) == 0 {
			// sin tokens: score 0 pero sigue en el pool, el tiebreak
			// por popularidad aún puede rescatarla
			scores[i] = 0
			continue
		}
		var dot float64
		for tok := range set {
			dot += profile[tok]
		}
		scores[i] = dot / (norm * math.Sqrt(float64(len(set))))
	}
	return scores, true
}
