package search_test

import (
	"testing"

	"github.com/mosaic-community/sitesearch"
	"github.com/mosaic-community/sitesearch/search"
	"github.com/stretchr/testify/assert"
)

func TestClient_Suggestions(t *testing.T) {
	t.Parallel()

	t.Run("returns an empty list for an empty query", func(t *testing.T) {
		t.Parallel()

		c := newClient(t, nil, agedCareRecord())

		assert.Equal(t, []string{}, c.Suggestions(""))
		assert.Equal(t, []string{}, c.Suggestions("  "))
	})

	t.Run("leads with All even when nothing matches", func(t *testing.T) {
		t.Parallel()

		c := newClient(t, nil)

		assert.Equal(t, []string{search.SuggestionAll}, c.Suggestions("zzzz"))
	})

	t.Run("suggests the English intent phrase by default", func(t *testing.T) {
		t.Parallel()

		c := newClient(t, nil)

		assert.Equal(t, []string{"All", "Aged care services"}, c.Suggestions("aged"))
	})

	t.Run("localizes intent phrases for the detected language", func(t *testing.T) {
		t.Parallel()

		c := newClient(t, map[string]string{
			sitesearch.TranslationsArtifact: `{"aged_care": {"es": "Cuidado de mayores"}}`,
		})

		assert.Equal(t, []string{"All", "Cuidado de mayores"}, c.Suggestions("¿mayores?"))
	})

	t.Run("caps the list at five", func(t *testing.T) {
		t.Parallel()

		c := newClient(t, nil)

		got := c.Suggestions("aged job visa youth form")

		assert.Equal(t, []string{
			"All",
			"Aged care services",
			"Employment support",
			"Settlement services",
			"Youth and family programs",
		}, got)
	})

	t.Run("adds titles and tags within typo distance", func(t *testing.T) {
		t.Parallel()

		c := newClient(t, nil, &sitesearch.Record{
			Path:  "/get-involved",
			Title: "Volunteer",
			Tags:  []string{"volunteer"},
			Lang:  "en",
		})

		assert.Equal(t, []string{"All", "volunteer"}, c.Suggestions("volunter"))
	})
}
