package recommend

import (
	"math"
	"sort"

	"wildflix-api/internal/catalog"
)

// rankPool ordena los candidatos (score desc, desempate por señales de
// popularidad), deduplica por imdb_key y recorta al tamaño de pool.
// Los favoritos nunca entran al pool.
func (e *Engine) rankPool(cat *catalog.Catalog, scores map[int]float64, favKeys map[string]bool, pool int) []Item {
	items := make([]Item, 0, len(scores))
	for idx, score := range scores {
		key := cat.Movies[idx].ImdbKey
		if favKeys[key] {
			continue
		}
		items = append(items, Item{Index: idx, Key: key, Score: score})
	}

	// cadena de desempate: score_global > popularity > num_voted_users,
	// saltando las columnas que el catálogo no trae
	tiebreaks := make([]func(*catalog.Movie) *float64, 0, 3)
	if cat.HasColumn(catalog.ColScoreGlobal) {
		tiebreaks = append(tiebreaks, func(m *catalog.Movie) *float64 { return m.ScoreGlobal })
	}
	if cat.HasColumn(catalog.ColPopularity) {
		tiebreaks = append(tiebreaks, func(m *catalog.Movie) *float64 { return m.Popularity })
	}
	if cat.HasColumn(catalog.ColNumVotedUsers) {
		tiebreaks = append(tiebreaks, func(m *catalog.Movie) *float64 { return m.NumVotedUsers })
	}

	val := func(p *float64) float64 {
		if p == nil {
			return math.Inf(-1) // valor ausente rankea último
		}
		return *p
	}

	sort.Slice(items, func(a, b int) bool {
		ia, ib := items[a], items[b]
		if ia.Score != ib.Score {
			return ia.Score > ib.Score
		}
		for _, tb := range tiebreaks {
			va := val(tb(&cat.Movies[ia.Index]))
			vb := val(tb(&cat.Movies[ib.Index]))
			if va != vb {
				return va > vb
			}
		}
		// desempate final por índice: salida 100% determinista
		return ia.Index < ib.Index
	})

	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, it := range items {
		if seen[it.Key] {
			continue
		}
		seen[it.Key] = true
		out = append(out, it)
		if len(out) == pool {
			break
		}
	}
	return out
}

// selectTop recorre el pool en orden (selección greedy estable, sin
// re-ordenar) aceptando filas mientras su franquicia no haya llegado al
// cap. Las claves vacías son grupos unitarios: nunca se capean entre sí.
func (e *Engine) selectTop(cat *catalog.Catalog, pool []Item, n int) []Item {
	if len(pool) == 0 || n <= 0 {
		return nil
	}

	keys := e.franchiseKeys(cat, pool)
	counts := make(map[string]int)
	out := make([]Item, 0, n)

	for i, it := range pool {
		key := keys[i]
		if key != "" {
			if counts[key] >= e.opts.FranchiseCap {
				continue // se salta, no se corta: puede haber otras sagas después
			}
			counts[key]++
		}
		out = append(out, it)
		if len(out) == n {
			break
		}
	}
	return out
}
