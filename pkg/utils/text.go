package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugInvalid  = regexp.MustCompile(`[^\w\-]+`)
	slugHyphens  = regexp.MustCompile(`\-\-+`)
	slugTrimEdge = regexp.MustCompile(`^-+|-+$`)
)

// RemoveDiacritics remove acentos ("CLASSIFICAÇÃO" -> "CLASSIFICACAO")
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// FoldHeader normaliza um texto de cabeçalho para comparação sem caixa e sem acento
func FoldHeader(s string) string {
	return strings.ToUpper(strings.TrimSpace(RemoveDiacritics(s)))
}

// Slugify gera o identificador de URL de um cliente ("João Silva" -> "joao-silva")
func Slugify(text string) string {
	s := RemoveDiacritics(strings.ToLower(text))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugHyphens.ReplaceAllString(s, "-")
	return slugTrimEdge.ReplaceAllString(s, "")
}
