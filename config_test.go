package sitesearch_test

import (
	"testing"

	"github.com/mosaic-community/sitesearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMetadata(t *testing.T) {
	t.Parallel()

	t.Run("decodes complete entries", func(t *testing.T) {
		t.Parallel()

		md, err := sitesearch.DecodeMetadata([]byte(`{
			"/services/aged-care": {"intent": "aged_care", "category": "Services", "priority": 5, "tags": ["seniors"]}
		}`))

		require.NoError(t, err)
		m := md["/services/aged-care"]
		require.NotNil(t, m)
		assert.Equal(t, "aged_care", m.Intent)
		assert.Equal(t, "Services", m.Category)
		require.NotNil(t, m.Priority)
		assert.InDelta(t, 5.0, *m.Priority, 0)
		assert.Equal(t, []string{"seniors"}, m.Tags)
	})

	t.Run("ignores non-numeric priority", func(t *testing.T) {
		t.Parallel()

		md, err := sitesearch.DecodeMetadata([]byte(`{"/about": {"category": "About", "priority": "high"}}`))

		require.NoError(t, err)
		require.NotNil(t, md["/about"])
		assert.Nil(t, md["/about"].Priority)
		assert.Equal(t, "About", md["/about"].Category)
	})

	t.Run("drops malformed entries and keeps the rest", func(t *testing.T) {
		t.Parallel()

		md, err := sitesearch.DecodeMetadata([]byte(`{"/a": "oops", "/b": {"intent": "contact"}}`))

		require.NoError(t, err)
		assert.NotContains(t, md, "/a")
		assert.Equal(t, "contact", md["/b"].Intent)
	})

	t.Run("returns EINVALID for non-object artifact", func(t *testing.T) {
		t.Parallel()

		_, err := sitesearch.DecodeMetadata([]byte(`[1,2]`))

		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	})
}

func TestTranslations_Phrase(t *testing.T) {
	t.Parallel()

	tr := sitesearch.Translations{"aged_care": {"es": "Cuidado de mayores"}}

	assert.Equal(t, "Cuidado de mayores", tr.Phrase("aged_care", "es"))
	assert.Empty(t, tr.Phrase("aged_care", "vi"))
	assert.Empty(t, tr.Phrase("employment", "es"))
}
