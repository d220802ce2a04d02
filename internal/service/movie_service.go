package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"wildflix-api/internal/catalog"
	"wildflix-api/internal/text"
)

// Pesos del score "featured" de la portada.
const (
	wQuality    = 0.4
	wPopularity = 0.2
	wGlobal     = 0.4
)

// umbral mínimo para aceptar un match difuso de título
const searchThreshold = 0.42

type MovieService struct {
	catalog *catalog.Store
}

func NewMovieService(store *catalog.Store) *MovieService {
	return &MovieService{catalog: store}
}

func (s *MovieService) snapshot() (*catalog.Catalog, error) {
	cat := s.catalog.Get()
	if cat == nil {
		return nil, fmt.Errorf("catálogo no cargado")
	}
	return cat, nil
}

// GetMovie busca por imdb_key. nil sin error si no existe.
func (s *MovieService) GetMovie(_ context.Context, imdbKey string) (*catalog.Movie, error) {
	cat, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	i, ok := cat.IndexOf(imdbKey)
	if !ok {
		return nil, nil
	}
	m := cat.Movies[i]
	return &m, nil
}

// ==================== Destacados de portada ====================

// Featured mezcla calidad, popularidad y score global normalizados.
func (s *MovieService) Featured(_ context.Context, n int) ([]catalog.Movie, error) {
	cat, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	idx := allIndices(cat)
	featured := func(m *catalog.Movie) float64 {
		return wQuality*m.ImdbScoreNorm + wPopularity*m.PopularityNorm + wGlobal*m.ScoreGlobalNorm
	}
	sort.Slice(idx, func(a, b int) bool {
		fa, fb := featured(&cat.Movies[idx[a]]), featured(&cat.Movies[idx[b]])
		if fa != fb {
			return fa > fb
		}
		return idx[a] < idx[b]
	})
	return takeMovies(cat, idx, n), nil
}

// Blockbusters: mayor presupuesto, prefiriendo presupuestos no imputados.
func (s *MovieService) Blockbusters(_ context.Context, n int) ([]catalog.Movie, error) {
	cat, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if !cat.HasColumn(catalog.ColBudget) {
		return nil, nil
	}

	var idx, nonImputed []int
	for i := range cat.Movies {
		if cat.Movies[i].Budget == nil {
			continue
		}
		idx = append(idx, i)
		if !cat.Movies[i].BudgetImputed {
			nonImputed = append(nonImputed, i)
		}
	}
	if len(nonImputed) > 0 {
		idx = nonImputed
	}
	sort.Slice(idx, func(a, b int) bool {
		ba, bb := *cat.Movies[idx[a]].Budget, *cat.Movies[idx[b]].Budget
		if ba != bb {
			return ba > bb
		}
		return idx[a] < idx[b]
	})
	return takeMovies(cat, idx, n), nil
}

// UnderratedGems: buen score global con relativamente pocos votos.
func (s *MovieService) UnderratedGems(_ context.Context, n int) ([]catalog.Movie, error) {
	cat, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if !cat.HasColumn(catalog.ColNumVotedUsers) || !cat.HasColumn(catalog.ColScoreGlobal) {
		return nil, nil
	}

	var idx []int
	for i := range cat.Movies {
		m := &cat.Movies[i]
		if m.NumVotedUsers != nil && m.ScoreGlobal != nil && *m.NumVotedUsers > 1000 {
			idx = append(idx, i)
		}
	}
	gem := func(m *catalog.Movie) float64 {
		return *m.ScoreGlobal / math.Pow(*m.NumVotedUsers, 0.2)
	}
	sort.Slice(idx, func(a, b int) bool {
		ga, gb := gem(&cat.Movies[idx[a]]), gem(&cat.Movies[idx[b]])
		if ga != gb {
			return ga > gb
		}
		return idx[a] < idx[b]
	})
	return takeMovies(cat, idx, n), nil
}

// NicheMovies: películas confiables (≥100 votos) en la franja de votos
// más baja que aún alcance para llenar la lista.
func (s *MovieService) NicheMovies(_ context.Context, n int) ([]catalog.Movie, error) {
	cat, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if !cat.HasColumn(catalog.ColNumVotedUsers) || !cat.HasColumn(catalog.ColScoreGlobal) {
		return nil, nil
	}

	var base []int
	for i := range cat.Movies {
		m := &cat.Movies[i]
		if m.NumVotedUsers != nil && m.ScoreGlobal != nil && *m.NumVotedUsers >= 100 {
			base = append(base, i)
		}
	}

	idx := base
	for _, threshold := range []float64{1000, 2000, 5000, 10000, math.Inf(1)} {
		var cands []int
		for _, i := range base {
			if *cat.Movies[i].NumVotedUsers <= threshold {
				cands = append(cands, i)
			}
		}
		if len(cands) >= n {
			idx = cands
			break
		}
	}

	sort.Slice(idx, func(a, b int) bool {
		ma, mb := &cat.Movies[idx[a]], &cat.Movies[idx[b]]
		if *ma.ScoreGlobal != *mb.ScoreGlobal {
			return *ma.ScoreGlobal > *mb.ScoreGlobal
		}
		if *ma.NumVotedUsers != *mb.NumVotedUsers {
			return *ma.NumVotedUsers < *mb.NumVotedUsers // menos votos primero
		}
		return idx[a] < idx[b]
	})
	return takeMovies(cat, idx, n), nil
}

// ==================== Búsqueda por título ====================

type SearchHit struct {
	catalog.Movie
	SearchScore float64 `json:"searchScore"`
}

// Search hace matching difuso sobre el título normalizado. Queries muy
// cortas solo hacen substring (lo difuso metería demasiado ruido).
func (s *MovieService) Search(_ context.Context, query string, limit int) ([]SearchHit, error) {
	cat, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	qNorm := text.Normalize(query)
	if len(qNorm) < 2 {
		return nil, nil
	}
	qCompact := strings.ReplaceAll(qNorm, " ", "")

	var hits []SearchHit
	if len(qCompact) <= 3 {
		for i := range cat.Movies {
			tCompact := strings.ReplaceAll(cat.Movies[i].TitleSearch, " ", "")
			if strings.Contains(tCompact, qCompact) {
				hits = append(hits, SearchHit{Movie: cat.Movies[i], SearchScore: 1})
			}
		}
	} else {
		all := make([]SearchHit, 0, cat.Len())
		for i := range cat.Movies {
			score := scoreTitle(qNorm, cat.Movies[i].TitleSearch)
			all = append(all, SearchHit{Movie: cat.Movies[i], SearchScore: score})
			if score >= searchThreshold {
				hits = append(hits, SearchHit{Movie: cat.Movies[i], SearchScore: score})
			}
		}
		if len(hits) == 0 {
			// sin matches claros: devolvemos los mejores aunque estén bajo el umbral
			hits = all
		}
	}

	fval := func(p *float64) float64 {
		if p == nil {
			return math.Inf(-1)
		}
		return *p
	}
	sort.SliceStable(hits, func(a, b int) bool {
		if hits[a].SearchScore != hits[b].SearchScore {
			return hits[a].SearchScore > hits[b].SearchScore
		}
		if va, vb := fval(hits[a].ScoreGlobal), fval(hits[b].ScoreGlobal); va != vb {
			return va > vb
		}
		if va, vb := fval(hits[a].Popularity), fval(hits[b].Popularity); va != vb {
			return va > vb
		}
		return fval(hits[a].NumVotedUsers) > fval(hits[b].NumVotedUsers)
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// scoreTitle combina cobertura de tokens, substring común más largo y una
// ratio de similitud global. Funciona bien para títulos parciales y typos.
func scoreTitle(qNorm, titleNorm string) float64 {
	q := strings.ReplaceAll(qNorm, " ", "")
	t := strings.ReplaceAll(titleNorm, " ", "")
	if q == "" || t == "" {
		return 0
	}
	if strings.Contains(t, q) {
		return 1
	}

	tokens := strings.Fields(qNorm)
	var tokenScore float64
	if len(tokens) > 0 {
		hits := 0
		for _, tok := range tokens {
			if tok != "" && strings.Contains(titleNorm, tok) {
				hits++
			}
		}
		tokenScore = float64(hits) / float64(len(tokens))
	}

	partial := float64(longestCommonSubstring(q, t)) / float64(len(q))
	ratio := 2 * float64(longestCommonSubsequence(q, t)) / float64(len(q)+len(t))

	return math.Max(0.55*tokenScore+0.45*partial, 0.35*ratio+0.65*partial)
}

func longestCommonSubstring(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	best := 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return best
}

func longestCommonSubsequence(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// ==================== helpers ====================

func allIndices(cat *catalog.Catalog) []int {
	idx := make([]int, cat.Len())
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func takeMovies(cat *catalog.Catalog, idx []int, n int) []catalog.Movie {
	if n > len(idx) {
		n = len(idx)
	}
	out := make([]catalog.Movie, 0, n)
	for _, i := range idx[:n] {
		out = append(out, cat.Movies[i])
	}
	return out
}
