package service

import (
	"context"
	"testing"

	"wildflix-api/internal/catalog"
)

func fp(v float64) *float64 { return &v }

func discoveryCatalog() *catalog.Store {
	movies := []catalog.Movie{
		{ImdbKey: "m1", Title: "Alpha", ImdbScoreNorm: 0.9, PopularityNorm: 0.9, ScoreGlobalNorm: 0.9,
			Budget: fp(200), ScoreGlobal: fp(7.0), NumVotedUsers: fp(500000)},
		{ImdbKey: "m2", Title: "Beta", ImdbScoreNorm: 0.5, PopularityNorm: 0.5, ScoreGlobalNorm: 0.5,
			Budget: fp(900), BudgetImputed: true, ScoreGlobal: fp(8.5), NumVotedUsers: fp(1500)},
		{ImdbKey: "m3", Title: "Gamma", ImdbScoreNorm: 0.7, PopularityNorm: 0.1, ScoreGlobalNorm: 0.8,
			Budget: fp(50), ScoreGlobal: fp(8.0), NumVotedUsers: fp(300)},
		{ImdbKey: "m4", Title: "Delta", ImdbScoreNorm: 0.2, PopularityNorm: 0.2, ScoreGlobalNorm: 0.2,
			Budget: fp(400), ScoreGlobal: fp(6.0), NumVotedUsers: fp(90)},
	}
	cat := catalog.New(movies,
		catalog.ColBudget, catalog.ColScoreGlobal, catalog.ColNumVotedUsers, catalog.ColPopularity)
	return catalog.NewStoreWithSnapshot(cat)
}

func TestFeaturedOrdering(t *testing.T) {
	svc := NewMovieService(discoveryCatalog())

	out, err := svc.Featured(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("quería 2 resultados, hay %d", len(out))
	}
	// m1 tiene todas las normas altas; m3 gana a m2 por calidad+global
	if out[0].ImdbKey != "m1" || out[1].ImdbKey != "m3" {
		t.Fatalf("orden inesperado: %s, %s", out[0].ImdbKey, out[1].ImdbKey)
	}
}

func TestBlockbustersPrefersRealBudgets(t *testing.T) {
	svc := NewMovieService(discoveryCatalog())

	out, err := svc.Blockbusters(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	// m2 tiene el mayor presupuesto pero es imputado: quedan los reales
	if out[0].ImdbKey != "m4" || out[1].ImdbKey != "m1" {
		t.Fatalf("orden inesperado: %s, %s", out[0].ImdbKey, out[1].ImdbKey)
	}
}

func TestUnderratedGemsNeedVotes(t *testing.T) {
	svc := NewMovieService(discoveryCatalog())

	out, err := svc.UnderratedGems(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	// m3 (300 votos) y m4 (90) quedan fuera por el mínimo de 1000
	for _, m := range out {
		if m.ImdbKey == "m3" || m.ImdbKey == "m4" {
			t.Fatalf("%s no debería ser gem (pocos votos)", m.ImdbKey)
		}
	}
	// m2: buen score con muchos menos votos que m1
	if len(out) == 0 || out[0].ImdbKey != "m2" {
		t.Fatalf("esperaba m2 primero, hay %v", out)
	}
}

func TestNicheLadderPicksLowestBandThatFills(t *testing.T) {
	svc := NewMovieService(discoveryCatalog())

	// con n=1 basta la franja ≤1000: m3 (300 votos, ≥100)
	out, err := svc.NicheMovies(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].ImdbKey != "m3" {
		t.Fatalf("esperaba [m3], hay %v", out)
	}

	// m4 (90 votos) nunca entra: bajo el mínimo de confianza
	out, err = svc.NicheMovies(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range out {
		if m.ImdbKey == "m4" {
			t.Fatal("m4 no alcanza el mínimo de 100 votos")
		}
	}
}

// ==================== búsqueda ====================

func searchCatalog() *catalog.Store {
	movies := []catalog.Movie{
		{ImdbKey: "s1", Title: "The Matrix", ScoreGlobal: fp(8.7)},
		{ImdbKey: "s2", Title: "The Matrix Reloaded", ScoreGlobal: fp(7.2)},
		{ImdbKey: "s3", Title: "Léon: The Professional", ScoreGlobal: fp(8.5)},
		{ImdbKey: "s4", Title: "Up", ScoreGlobal: fp(8.2)},
		{ImdbKey: "s5", Title: "Totally Unrelated Film", ScoreGlobal: fp(5.0)},
	}
	cat := catalog.New(movies, catalog.ColScoreGlobal, catalog.ColPopularity, catalog.ColNumVotedUsers)
	return catalog.NewStoreWithSnapshot(cat)
}

func TestSearchExactAndPrefix(t *testing.T) {
	svc := NewMovieService(searchCatalog())

	hits, err := svc.Search(context.Background(), "matrix", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) < 2 {
		t.Fatalf("esperaba al menos 2 hits, hay %d", len(hits))
	}
	// ambos contienen la query: desempata score_global
	if hits[0].ImdbKey != "s1" || hits[1].ImdbKey != "s2" {
		t.Fatalf("orden inesperado: %s, %s", hits[0].ImdbKey, hits[1].ImdbKey)
	}
}

func TestSearchIgnoresAccents(t *testing.T) {
	svc := NewMovieService(searchCatalog())

	hits, err := svc.Search(context.Background(), "leon professional", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) == 0 || hits[0].ImdbKey != "s3" {
		t.Fatalf("esperaba s3 primero, hay %v", hits)
	}
}

func TestSearchShortQueryIsSubstringOnly(t *testing.T) {
	svc := NewMovieService(searchCatalog())

	hits, err := svc.Search(context.Background(), "up", 10)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, h := range hits {
		if h.ImdbKey == "s4" {
			found = true
		}
	}
	if !found {
		t.Fatal("'up' debería matchear Up por substring")
	}

	// una sola letra no dispara búsqueda
	hits, err = svc.Search(context.Background(), "u", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 0 {
		t.Fatalf("query de 1 carácter debería dar vacío, hay %d", len(hits))
	}
}

func TestSearchTypoStillMatches(t *testing.T) {
	svc := NewMovieService(searchCatalog())

	hits, err := svc.Search(context.Background(), "matrxi reloaded", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) == 0 || hits[0].ImdbKey != "s2" {
		t.Fatalf("el typo debería resolver a s2, hay %v", hits)
	}
}

func TestScoreTitle(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		title   string
		atLeast float64
		below   float64
	}{
		{"substring exacto", "matrix", "the matrix", 1, 1.01},
		{"token parcial", "matrix reloaded", "the matrix reloaded", 1, 1.01},
		{"sin relación", "zzzz qqqq", "the matrix", 0, searchThreshold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scoreTitle(tc.query, tc.title)
			if got < tc.atLeast || got >= tc.below {
				t.Fatalf("score %v fuera de [%v, %v)", got, tc.atLeast, tc.below)
			}
		})
	}
}
