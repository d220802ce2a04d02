package recommend

import (
	"regexp"
	"strings"

	"wildflix-api/internal/catalog"
)

// Detección de franquicias: "Movie Two", "Movie Part II" y "Movie: The Sequel"
// deben agruparse bajo la misma clave para que el ranking pueda limitar
// cuántas entregas de una saga entran en una misma lista.

// palabras que marcan numeración de saga (inglés y francés)
var sequelWords = map[string]bool{
	"part": true, "chapter": true, "episode": true, "volume": true, "season": true,
	"partie": true, "chapitre": true, "saison": true, "tome": true, "volet": true,
}

// romanos ii..xx (el "i" solo daría demasiados falsos positivos)
var romanNumerals = map[string]bool{
	"ii": true, "iii": true, "iv": true, "v": true, "vi": true, "vii": true,
	"viii": true, "ix": true, "x": true, "xi": true, "xii": true, "xiii": true,
	"xiv": true, "xv": true, "xvi": true, "xvii": true, "xviii": true,
	"xix": true, "xx": true,
}

// artículos / conjunciones / preposiciones (inglés y francés)
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "and": true, "or": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "with": true,
	"le": true, "la": true, "les": true, "un": true, "une": true, "des": true,
	"du": true, "de": true, "d": true, "l": true, "et": true, "ou": true,
	"en": true, "au": true, "aux": true, "sur": true, "dans": true, "pour": true,
}

var (
	pureDigits = regexp.MustCompile(`^[0-9]+$`)
	// ordinales: 2nd, 3rd, 21st... y franceses 2e, 2eme, 1er, 1ere
	ordinal = regexp.MustCompile(`^[0-9]+(st|nd|rd|th|e|eme|er|ere)$`)
	// formas fusionadas tipo "part2" o "chapitre3"
	fusedSequel = regexp.MustCompile(`^(part|chapter|episode|volume|season|partie|chapitre|saison|tome|volet)[0-9]+$`)
)

func isSequelMarker(tok string) bool {
	if tok == "" {
		return false
	}
	if pureDigits.MatchString(tok) || ordinal.MatchString(tok) {
		return true
	}
	if sequelWords[tok] || romanNumerals[tok] {
		return true
	}
	return fusedSequel.MatchString(tok)
}

// coreTokens reduce un título ya normalizado a sus tokens "núcleo":
// quita la cola de marcadores de saga y después las stopwords, sin dejar
// nunca el título vacío (si un paso lo vaciaría, conserva el anterior).
func coreTokens(normTitle string) []string {
	toks := strings.Fields(normTitle)
	if len(toks) == 0 {
		return nil
	}

	end := len(toks)
	for end > 0 && isSequelMarker(toks[end-1]) {
		end--
	}
	stripped := toks[:end]
	if end == 0 {
		stripped = toks
	}

	core := stripped[:0:0]
	for _, t := range stripped {
		if !stopwords[t] {
			core = append(core, t)
		}
	}
	if len(core) == 0 {
		core = stripped
	}
	return core
}

// franchiseKeys calcula la clave de franquicia de cada fila del pool.
// La elección base/key2/key1 depende de las frecuencias dentro del pool
// (no globales): una saga solo se detecta si aparece repetida en el lote.
// Una clave vacía significa "grupo unitario": nunca se capea contra otras.
func (e *Engine) franchiseKeys(cat *catalog.Catalog, pool []Item) []string {
	cores := make([][]string, len(pool))
	count1 := make(map[string]int, len(pool))
	count2 := make(map[string]int, len(pool))

	for i, it := range pool {
		core := coreTokens(cat.Movies[it.Index].TitleSearch)
		cores[i] = core
		if len(core) >= 1 {
			count1[core[0]]++
		}
		if len(core) >= 2 {
			count2[core[0]+" "+core[1]]++
		}
	}

	global := e.firstTokenFreq(cat)

	keys := make([]string, len(pool))
	for i, core := range cores {
		if len(core) == 0 {
			keys[i] = ""
			continue
		}
		key1 := core[0]
		var key2 string
		if len(core) >= 2 {
			key2 = core[0] + " " + core[1]
		}

		switch {
		case key2 != "" && count2[key2] >= 2:
			keys[i] = key2
		case count1[key1] >= 2 && e.safeSingleKey(key1, global):
			keys[i] = key1
		default:
			keys[i] = strings.Join(core, " ")
		}
	}
	return keys
}

// safeSingleKey decide si una clave de una sola palabra es confiable:
// un primer token genérico ("the", "2") no es señal de franquicia.
func (e *Engine) safeSingleKey(tok string, globalFreq map[string]int) bool {
	if len(tok) < e.opts.MinSafeKeyLen {
		return false
	}
	if pureDigits.MatchString(tok) {
		return false
	}
	if globalFreq != nil && globalFreq[tok] > e.opts.MaxFirstTokenFreq {
		return false
	}
	return true
}

// firstTokenFreq devuelve la frecuencia de cada primer token núcleo sobre
// el catálogo completo. Memoizada por número de filas: el snapshot es
// inmutable, así que solo una recarga (otro row count) obliga a recalcular.
func (e *Engine) firstTokenFreq(cat *catalog.Catalog) map[string]int {
	if cat == nil {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.freq != nil && e.freqRows == cat.Len() {
		return e.freq
	}

	freq := make(map[string]int)
	for i := range cat.Movies {
		if core := coreTokens(cat.Movies[i].TitleSearch); len(core) > 0 {
			freq[core[0]]++
		}
	}
	e.freq = freq
	e.freqRows = cat.Len()
	return freq
}
