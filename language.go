package sitesearch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"
)

// Locales the query language detector can return.
const (
	LangArabic     = "ar"
	LangHindi      = "hi"
	LangVietnamese = "vi"
	LangSpanish    = "es"
)

var (
	arabicScript     = runes.In(unicode.Arabic)
	devanagariScript = runes.In(unicode.Devanagari)
)

// Letters that only occur in Vietnamese among the supported locales.
// Plain acute vowels are shared with Spanish and excluded.
const vietnameseLetters = "ăâđêôơư" +
	"àằầèềìòồờùừỳ" +
	"ảẳẩẻểỉỏổởủửỷ" +
	"ãẵẫẽễĩõỗỡũữỹ" +
	"ạặậẹệịọộợụựỵ" +
	"ấắếốớứý"

const spanishLetters = "ñáéíóúü¿¡"

// DetectLanguage guesses the locale of a query from the scripts and
// diacritics it contains. Queries with no distinguishing characters,
// including the empty query, are DefaultLang.
func DetectLanguage(query string) string {
	q := NormalizeQuery(query)
	switch {
	case q == "":
		return DefaultLang
	case strings.ContainsFunc(q, arabicScript.Contains):
		return LangArabic
	case strings.ContainsFunc(q, devanagariScript.Contains):
		return LangHindi
	case strings.ContainsAny(q, vietnameseLetters):
		return LangVietnamese
	case strings.ContainsAny(q, spanishLetters):
		return LangSpanish
	}
	return DefaultLang
}

// NormalizeQuery lower-cases and trims a query and composes its
// diacritics so decomposed input matches precomposed index text.
func NormalizeQuery(query string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(query)))
}
