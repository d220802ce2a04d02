package recommend

import (
	"strings"

	"wildflix-api/internal/catalog"
	"wildflix-api/internal/text"
)

// ContentTokens convierte una fila del catálogo en su bolsa de tokens
// semánticos: keywords de la sinopsis, género principal y lengua.
// Una fila sin señal devuelve una lista vacía (el scorer la puntúa 0).
func ContentTokens(m *catalog.Movie) []string {
	var out []string

	if m.PlotKeywords != "" {
		for _, part := range strings.Split(m.PlotKeywords, "|") {
			if tok := text.Slug(part); tok != "" {
				out = append(out, tok)
			}
		}
	}
	if tok := text.Slug(m.GenreMain); tok != "" {
		out = append(out, "genre_"+tok)
	}
	if tok := text.Slug(m.Language); tok != "" {
		out = append(out, "lang_"+tok)
	}
	return out
}

// tokenSet deduplica la lista de tokens (el candidato se trata como
// vector binario, no ponderado por frecuencia).
func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
