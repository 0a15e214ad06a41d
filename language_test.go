package sitesearch_test

import (
	"testing"

	"github.com/mosaic-community/sitesearch"
	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"empty query is english", "", "en"},
		{"whitespace query is english", "   ", "en"},
		{"plain ascii is english", "aged care", "en"},
		{"arabic script", "رعاية المسنين", "ar"},
		{"devanagari script", "वृद्ध देखभाल", "hi"},
		{"vietnamese diacritics", "chăm sóc người cao tuổi", "vi"},
		{"spanish enye", "niños", "es"},
		{"spanish accented vowel", "atención", "es"},
		{"spanish inverted question mark", "¿dónde?", "es"},
		{"decomposed spanish accent", "atencio\u0301n", "es"},
		{"uppercase vietnamese", "NGƯỜI", "vi"},
		{"arabic wins over latin", "visa تأشيرة", "ar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, sitesearch.DetectLanguage(tt.query))
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "aged care", sitesearch.NormalizeQuery("  Aged CARE "))
	assert.Equal(t, "atención", sitesearch.NormalizeQuery("Atencio\u0301n"))
}
