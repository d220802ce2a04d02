package recommend

import (
	"testing"

	"wildflix-api/internal/catalog"
)

func fptr(v float64) *float64 { return &v }

func contentCatalog(movies []catalog.Movie) *catalog.Catalog {
	return catalog.New(movies,
		catalog.ColGenreMain, catalog.ColLanguage, catalog.ColPlotKeywords,
		catalog.ColScoreGlobal, catalog.ColPopularity, catalog.ColNumVotedUsers,
	)
}

func TestContentTokens(t *testing.T) {
	m := catalog.Movie{
		ImdbKey:      "tt1",
		Title:        "Test",
		GenreMain:    "Science Fiction",
		Language:     "Français",
		PlotKeywords: "space travel|alien|lost colony",
	}
	got := ContentTokens(&m)
	want := []string{"space_travel", "alien", "lost_colony", "genre_science_fiction", "lang_francais"}
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestContentTokensEmptyRow(t *testing.T) {
	m := catalog.Movie{ImdbKey: "tt1", Title: "Sin señal"}
	if got := ContentTokens(&m); len(got) != 0 {
		t.Errorf("fila sin campos debería dar 0 tokens, got %v", got)
	}
}

func TestFallbackScoresNoFavorites(t *testing.T) {
	cat := contentCatalog([]catalog.Movie{
		{ImdbKey: "tt1", Title: "A", GenreMain: "Action"},
	})

	t.Run("set vacio", func(t *testing.T) {
		if _, ok := fallbackScores(cat, map[string]bool{}); ok {
			t.Error("sin favoritos no debería haber scores")
		}
	})
	t.Run("favorito inexistente", func(t *testing.T) {
		if _, ok := fallbackScores(cat, map[string]bool{"tt999": true}); ok {
			t.Error("favorito fuera del catálogo no debería dar scores")
		}
	})
	t.Run("favorito sin tokens", func(t *testing.T) {
		cat := contentCatalog([]catalog.Movie{
			{ImdbKey: "tt1", Title: "Mudo"},
			{ImdbKey: "tt2", Title: "Otro", GenreMain: "Drama"},
		})
		if _, ok := fallbackScores(cat, map[string]bool{"tt1": true}); ok {
			t.Error("perfil sin peso debería devolver vacío")
		}
	})
}

func TestFallbackScoresRanksByOverlap(t *testing.T) {
	cat := contentCatalog([]catalog.Movie{
		{ImdbKey: "fav", Title: "Favorita", GenreMain: "Action", Language: "English", PlotKeywords: "hero|explosion"},
		{ImdbKey: "match", Title: "Parecida", GenreMain: "Action", Language: "English", PlotKeywords: "hero|explosion"},
		{ImdbKey: "half", Title: "A medias", GenreMain: "Action", Language: "German", PlotKeywords: "romance"},
		{ImdbKey: "none", Title: "Nada que ver", GenreMain: "Documentary", Language: "Korean", PlotKeywords: "whales"},
		{ImdbKey: "empty", Title: "Sin tokens"},
	})

	scores, ok := fallbackScores(cat, map[string]bool{"fav": true})
	if !ok {
		t.Fatal("esperaba scores")
	}

	idx := func(key string) int {
		i, _ := cat.IndexOf(key)
		return i
	}
	if _, favIn := scores[idx("fav")]; favIn {
		t.Error("el favorito no debería puntuarse")
	}
	if scores[idx("match")] <= scores[idx("half")] {
		t.Errorf("match (%g) debería superar a half (%g)", scores[idx("match")], scores[idx("half")])
	}
	if scores[idx("none")] != 0 {
		t.Errorf("sin solape esperaba 0, got %g", scores[idx("none")])
	}
	// fila sin tokens: score exactamente 0 pero presente en el pool
	if v, in := scores[idx("empty")]; !in || v != 0 {
		t.Errorf("fila sin tokens debería quedar con score 0, got %v (presente=%v)", v, in)
	}
}

// Dos favoritos de perfiles disjuntos; el fallback debe
// rescatar al match fuerte de cada uno (agregación simétrica del perfil).
func TestFallbackSurfacesBothProfiles(t *testing.T) {
	cat := contentCatalog([]catalog.Movie{
		{ImdbKey: "favAction", Title: "Guns", GenreMain: "Action", Language: "English", PlotKeywords: "hero|explosion"},
		{ImdbKey: "favComedy", Title: "Rires", GenreMain: "Comedy", Language: "French", PlotKeywords: "paris|amour"},
		{ImdbKey: "candAction", Title: "More Guns", GenreMain: "Action", Language: "English", PlotKeywords: "hero|explosion"},
		{ImdbKey: "candComedy", Title: "Encore Rires", GenreMain: "Comedy", Language: "French", PlotKeywords: "paris|amour"},
	})

	e := NewEngine(DefaultOptions())
	res := e.Recommend(cat, nil, "", []string{"favAction", "favComedy"}, 2)

	if len(res.Items) != 2 {
		t.Fatalf("esperaba 2 items, got %d", len(res.Items))
	}
	got := map[string]bool{res.Items[0].Key: true, res.Items[1].Key: true}
	if !got["candAction"] || !got["candComedy"] {
		t.Errorf("deberían salir ambos matches, got %v", got)
	}
}
