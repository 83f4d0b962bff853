// Package pipeline implementa o núcleo do relatório: limpeza dos registros
// de inscrição, classificação de status, derivação de atributos e as
// agregações que alimentam o Summary.
package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decompõe acentos, remove as marcas combinantes e descarta o
// que sobrar fora do ASCII ("São Paulo" -> "Sao Paulo").
var stripMarks = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// Normalize upper-cases and strips accents from free text (state and
// country names). Non-string values normalize to "". Never fails.
func Normalize(value interface{}) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(strings.TrimSpace(out))
}
