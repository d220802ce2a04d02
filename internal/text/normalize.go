package text

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// NFKD + quitar marcas combinantes = quitar acentos ("é" -> "e")
	stripAccents = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	nonAlnum   = regexp.MustCompile(`[^a-z0-9]+`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// Normalize pasa un texto a su forma canónica de búsqueda:
// minúsculas, sin acentos, todo lo no alfanumérico colapsado a un espacio.
// Se usa igual en búsqueda y en recomendación (mismas claves para ambos).
func Normalize(value string) string {
	s := strings.ToLower(strings.TrimSpace(value))
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	s = nonAlnum.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Slug normaliza y une con "_" (para tokens tipo "science_fiction").
func Slug(value string) string {
	return strings.ReplaceAll(Normalize(value), " ", "_")
}
