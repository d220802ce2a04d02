package recommend

import (
	"testing"

	"wildflix-api/internal/catalog"
)

func TestRankPoolTiebreakChain(t *testing.T) {
	cat := contentCatalog([]catalog.Movie{
		{ImdbKey: "a", Title: "A", ScoreGlobal: fptr(5), Popularity: fptr(10), NumVotedUsers: fptr(100)},
		{ImdbKey: "b", Title: "B", ScoreGlobal: fptr(9), Popularity: fptr(1), NumVotedUsers: fptr(1)},
		{ImdbKey: "c", Title: "C", ScoreGlobal: fptr(5), Popularity: fptr(20), NumVotedUsers: fptr(1)},
		{ImdbKey: "d", Title: "D"}, // sin señales: al final
	})
	e := NewEngine(DefaultOptions())

	scores := map[int]float64{0: 0.5, 1: 0.5, 2: 0.5, 3: 0.5}
	pool := e.rankPool(cat, scores, nil, 10)

	want := []string{"b", "c", "a", "d"}
	if len(pool) != len(want) {
		t.Fatalf("pool = %d items, want %d", len(pool), len(want))
	}
	for i, key := range want {
		if pool[i].Key != key {
			t.Errorf("pool[%d] = %q, want %q", i, pool[i].Key, key)
		}
	}
}

func TestRankPoolExcludesFavoritesAndDedups(t *testing.T) {
	cat := contentCatalog([]catalog.Movie{
		{ImdbKey: "fav", Title: "Fav"},
		{ImdbKey: "dup", Title: "Dup v1"},
		{ImdbKey: "dup", Title: "Dup v2"}, // misma imdb_key, fila repetida
		{ImdbKey: "ok", Title: "Ok"},
	})
	e := NewEngine(DefaultOptions())

	scores := map[int]float64{0: 0.9, 1: 0.8, 2: 0.7, 3: 0.6}
	pool := e.rankPool(cat, scores, map[string]bool{"fav": true}, 10)

	if len(pool) != 2 {
		t.Fatalf("esperaba 2 items (sin fav, dup deduplicado), got %d", len(pool))
	}
	if pool[0].Key != "dup" || pool[1].Key != "ok" {
		t.Errorf("pool inesperado: %v", pool)
	}
}

func TestRankPoolTruncates(t *testing.T) {
	movies := make([]catalog.Movie, 20)
	scores := make(map[int]float64, 20)
	for i := range movies {
		movies[i] = catalog.Movie{ImdbKey: "tt" + string(rune('a'+i)), Title: "T"}
		scores[i] = float64(i)
	}
	pool := NewEngine(DefaultOptions()).rankPool(contentCatalog(movies), scores, nil, 5)
	if len(pool) != 5 {
		t.Errorf("pool debería truncarse a 5, got %d", len(pool))
	}
}

// Tres entregas de la misma saga bien rankeadas + dos títulos
// sueltos. Con N=3 y cap=2 deben salir 2 de la saga y 1 suelto.
func TestSelectTopFranchiseCap(t *testing.T) {
	cat := contentCatalog([]catalog.Movie{
		{ImdbKey: "z1", Title: "Zeta One"},
		{ImdbKey: "z2", Title: "Zeta Two"},
		{ImdbKey: "z3", Title: "Zeta Three"},
		{ImdbKey: "q", Title: "Quasar"},
		{ImdbKey: "n", Title: "Nimbus"},
	})
	e := NewEngine(DefaultOptions())

	pool := []Item{
		{Index: 0, Key: "z1", Score: 0.9},
		{Index: 1, Key: "z2", Score: 0.8},
		{Index: 2, Key: "z3", Score: 0.7},
		{Index: 3, Key: "q", Score: 0.6},
		{Index: 4, Key: "n", Score: 0.5},
	}
	out := e.selectTop(cat, pool, 3)

	if len(out) != 3 {
		t.Fatalf("esperaba 3 items, got %d", len(out))
	}
	zetas := 0
	for _, it := range out {
		if it.Key == "z1" || it.Key == "z2" || it.Key == "z3" {
			zetas++
		}
	}
	if zetas != 2 {
		t.Errorf("esperaba exactamente 2 Zetas, got %d (%v)", zetas, out)
	}
	// orden entrante preservado: z1, z2 y luego el primer no-Zeta
	if out[0].Key != "z1" || out[1].Key != "z2" || out[2].Key != "q" {
		t.Errorf("selección greedy estable rota: %v", out)
	}
}

func TestSelectTopEmptyKeysNeverCapped(t *testing.T) {
	// títulos vacíos -> clave vacía -> grupos unitarios, jamás se capean
	cat := contentCatalog([]catalog.Movie{
		{ImdbKey: "a", Title: ""},
		{ImdbKey: "b", Title: ""},
		{ImdbKey: "c", Title: ""},
	})
	pool := []Item{
		{Index: 0, Key: "a", Score: 0.3},
		{Index: 1, Key: "b", Score: 0.2},
		{Index: 2, Key: "c", Score: 0.1},
	}
	out := NewEngine(DefaultOptions()).selectTop(cat, pool, 3)
	if len(out) != 3 {
		t.Errorf("los sin-título no deberían caparse entre sí: got %d", len(out))
	}
}

func TestSelectTopStopsAtN(t *testing.T) {
	cat := contentCatalog([]catalog.Movie{
		{ImdbKey: "a", Title: "Uno"},
		{ImdbKey: "b", Title: "Dos"},
		{ImdbKey: "c", Title: "Tres"},
	})
	pool := poolFor(cat)
	if out := NewEngine(DefaultOptions()).selectTop(cat, pool, 2); len(out) != 2 {
		t.Errorf("esperaba 2, got %d", len(out))
	}
}
