package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCSV(t, `imdb_key,movie_title,genre_main,language,plot_keywords_final,imdb_score,popularity,score_global,num_voted_users,budget,budget_is_imputed,title_year
tt001,Léon,Crime,French,hitman|orphan,8.5,100,9.0,500000,16000000,0,1994
tt002,Alien,Horror,English,space|monster,8.4,,8.8,700000,,1,1979
tt003,Sin Datos,,,,,,,,,,
,Fila sin key,Drama,English,x,1,1,1,1,1,0,2000
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if c.Len() != 3 {
		t.Fatalf("esperaba 3 filas (la sin key se descarta), got %d", c.Len())
	}

	i, ok := c.IndexOf("tt001")
	if !ok {
		t.Fatal("tt001 debería indexarse")
	}
	m := c.Movies[i]
	if m.Title != "Léon" || m.TitleSearch != "leon" {
		t.Errorf("título/normalizado inesperado: %q / %q", m.Title, m.TitleSearch)
	}
	if m.ImdbScore == nil || *m.ImdbScore != 8.5 {
		t.Errorf("imdb_score mal parseado: %v", m.ImdbScore)
	}
	if m.BudgetImputed {
		t.Error("budget_is_imputed=0 no debería marcar imputado")
	}
	if m.TitleYear == nil || *m.TitleYear != 1994 {
		t.Errorf("title_year mal parseado: %v", m.TitleYear)
	}

	i2, _ := c.IndexOf("tt002")
	if c.Movies[i2].Popularity != nil {
		t.Error("popularidad vacía debería quedar nil")
	}
	if !c.Movies[i2].BudgetImputed {
		t.Error("budget_is_imputed=1 debería marcar imputado")
	}

	i3, _ := c.IndexOf("tt003")
	if c.Movies[i3].GenreMain != "" || c.Movies[i3].ImdbScore != nil {
		t.Error("fila sin datos debería quedar vacía, no fallar")
	}

	if !c.HasColumn(ColScoreGlobal) || c.HasColumn("columna_fantasma") {
		t.Error("detección de columnas incorrecta")
	}
}

func TestLoadMissingIDColumn(t *testing.T) {
	path := writeCSV(t, "movie_title,genre_main\nSolo,Drama\n")
	if _, err := Load(path); err == nil {
		t.Fatal("sin imdb_key la carga debe fallar (error de configuración)")
	}
}

func TestLoadMissingOptionalColumns(t *testing.T) {
	path := writeCSV(t, "imdb_key,movie_title\ntt1,Uno\ntt2,Dos\n")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("columnas opcionales ausentes no deberían romper la carga: %v", err)
	}
	if c.Len() != 2 || c.HasColumn(ColPopularity) {
		t.Errorf("catálogo inesperado: len=%d", c.Len())
	}
}

func TestComputeNorms(t *testing.T) {
	path := writeCSV(t, `imdb_key,movie_title,imdb_score
tt1,A,2
tt2,B,4
tt3,C,6
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	i, _ := c.IndexOf("tt2")
	if got := c.Movies[i].ImdbScoreNorm; got != 0.5 {
		t.Errorf("min-max de 4 en [2,6] = 0.5, got %g", got)
	}
}

func TestIndexOfKeepsFirstDuplicate(t *testing.T) {
	c := New([]Movie{
		{ImdbKey: "dup", Title: "Primera"},
		{ImdbKey: "dup", Title: "Segunda"},
	})
	i, ok := c.IndexOf("dup")
	if !ok || i != 0 {
		t.Errorf("duplicado debería resolver a la primera fila, got %d", i)
	}
}

func TestStoreReload(t *testing.T) {
	path := writeCSV(t, "imdb_key,movie_title\ntt1,Uno\n")
	s := NewStore(path)

	if s.Get() != nil {
		t.Fatal("antes de cargar el snapshot debe ser nil")
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if s.Get() == nil || s.Get().Len() != 1 {
		t.Fatal("snapshot no publicado")
	}

	if err := os.WriteFile(path, []byte("imdb_key,movie_title\ntt1,Uno\ntt2,Dos\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(); err != nil {
		t.Fatal(err)
	}
	if s.Get().Len() != 2 {
		t.Errorf("snapshot nuevo debería tener 2 filas, got %d", s.Get().Len())
	}
}
