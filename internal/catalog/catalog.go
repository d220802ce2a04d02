package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"wildflix-api/internal/text"
)

// Nombres de columnas del CSV (df_pret_bis.csv). Solo imdb_key es obligatoria,
// el resto se consume de forma oportunista.
const (
	ColImdbKey       = "imdb_key"
	ColTitle         = "movie_title"
	ColGenreMain     = "genre_main"
	ColLanguage      = "language"
	ColPlotKeywords  = "plot_keywords_final"
	ColTitleYear     = "title_year"
	ColImdbScore     = "imdb_score"
	ColPopularity    = "popularity"
	ColScoreGlobal   = "score_global"
	ColNumVotedUsers = "num_voted_users"
	ColBudget        = "budget"
	ColBudgetImputed = "budget_is_imputed"
	ColDirectorLikes = "director_facebook_likes"
	ColActorLikes    = "actor_1_facebook_likes"
)

// Movie es una fila del catálogo. Los numéricos opcionales son punteros:
// nil = la columna no existe o el valor estaba vacío.
type Movie struct {
	ImdbKey      string `json:"imdbKey"`
	Title        string `json:"title"`
	TitleSearch  string `json:"-"` // título normalizado (text.Normalize)
	GenreMain    string `json:"genreMain,omitempty"`
	Language     string `json:"language,omitempty"`
	PlotKeywords string `json:"-"` // keywords crudas separadas por "|"

	TitleYear     *int     `json:"year,omitempty"`
	ImdbScore     *float64 `json:"imdbScore,omitempty"`
	Popularity    *float64 `json:"popularity,omitempty"`
	ScoreGlobal   *float64 `json:"scoreGlobal,omitempty"`
	NumVotedUsers *float64 `json:"numVotedUsers,omitempty"`
	Budget        *float64 `json:"budget,omitempty"`
	BudgetImputed bool     `json:"-"`
	DirectorLikes *float64 `json:"-"`
	ActorLikes    *float64 `json:"-"`

	// min-max 0..1 sobre el catálogo completo (0 si la columna no existe)
	ImdbScoreNorm   float64 `json:"-"`
	PopularityNorm  float64 `json:"-"`
	ScoreGlobalNorm float64 `json:"-"`
}

// Catalog es el snapshot inmutable del catálogo: una vez construido
// solo se lee, así que es seguro compartirlo entre requests.
type Catalog struct {
	Movies []Movie

	byKey map[string]int
	cols  map[string]bool
}

// New arma un catálogo a partir de filas ya construidas (tests, reuso).
// cols declara qué columnas opcionales se consideran presentes.
func New(movies []Movie, cols ...string) *Catalog {
	c := &Catalog{
		Movies: movies,
		byKey:  make(map[string]int, len(movies)),
		cols:   map[string]bool{ColImdbKey: true, ColTitle: true},
	}
	for _, col := range cols {
		c.cols[col] = true
	}
	for i := range movies {
		if movies[i].TitleSearch == "" {
			movies[i].TitleSearch = text.Normalize(movies[i].Title)
		}
		key := movies[i].ImdbKey
		if key == "" {
			continue
		}
		if _, dup := c.byKey[key]; !dup {
			c.byKey[key] = i
		}
	}
	return c
}

func (c *Catalog) Len() int { return len(c.Movies) }

// IndexOf devuelve el índice de fila de una imdb_key (primera aparición).
func (c *Catalog) IndexOf(key string) (int, bool) {
	i, ok := c.byKey[strings.TrimSpace(key)]
	return i, ok
}

// HasColumn indica si la columna existía en el CSV de origen.
func (c *Catalog) HasColumn(name string) bool { return c.cols[name] }

// Load lee el CSV del catálogo. La única precondición dura es que exista
// la columna imdb_key; cualquier otra columna ausente degrada la feature
// que la usaba, nunca la carga.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catálogo: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("catálogo: header inválido: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	if _, ok := colIdx[ColImdbKey]; !ok {
		return nil, fmt.Errorf("catálogo: falta la columna obligatoria %q", ColImdbKey)
	}

	field := func(row []string, col string) string {
		i, ok := colIdx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	floatField := func(row []string, col string) *float64 {
		s := field(row, col)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &v
	}

	var movies []Movie
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catálogo: fila inválida: %w", err)
		}

		key := field(row, ColImdbKey)
		if key == "" {
			// sin id no hay fila recomendable
			continue
		}

		m := Movie{
			ImdbKey:       key,
			Title:         field(row, ColTitle),
			GenreMain:     field(row, ColGenreMain),
			Language:      field(row, ColLanguage),
			PlotKeywords:  field(row, ColPlotKeywords),
			ImdbScore:     floatField(row, ColImdbScore),
			Popularity:    floatField(row, ColPopularity),
			ScoreGlobal:   floatField(row, ColScoreGlobal),
			NumVotedUsers: floatField(row, ColNumVotedUsers),
			Budget:        floatField(row, ColBudget),
			DirectorLikes: floatField(row, ColDirectorLikes),
			ActorLikes:    floatField(row, ColActorLikes),
		}
		m.TitleSearch = text.Normalize(m.Title)
		if v := floatField(row, ColBudgetImputed); v != nil && *v != 0 {
			m.BudgetImputed = true
		}
		if y := floatField(row, ColTitleYear); y != nil {
			yy := int(*y)
			m.TitleYear = &yy
		}
		movies = append(movies, m)
	}

	cols := make([]string, 0, len(colIdx))
	for name := range colIdx {
		cols = append(cols, name)
	}
	c := New(movies, cols...)
	c.computeNorms()
	return c, nil
}

// computeNorms calcula los *_norm min-max que usa la portada (featured).
func (c *Catalog) computeNorms() {
	norm := func(get func(*Movie) *float64, set func(*Movie, float64)) {
		min, max := 0.0, 0.0
		first := true
		for i := range c.Movies {
			v := get(&c.Movies[i])
			if v == nil {
				continue
			}
			if first || *v < min {
				min = *v
			}
			if first || *v > max {
				max = *v
			}
			first = false
		}
		if first || min == max {
			return // sin datos o constante: se quedan en 0
		}
		for i := range c.Movies {
			if v := get(&c.Movies[i]); v != nil {
				set(&c.Movies[i], (*v-min)/(max-min))
			}
		}
	}

	norm(func(m *Movie) *float64 { return m.ImdbScore },
		func(m *Movie, v float64) { m.ImdbScoreNorm = v })
	norm(func(m *Movie) *float64 { return m.Popularity },
		func(m *Movie, v float64) { m.PopularityNorm = v })
	norm(func(m *Movie) *float64 { return m.ScoreGlobal },
		func(m *Movie, v float64) { m.ScoreGlobalNorm = v })
}
