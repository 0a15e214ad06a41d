package sitesearch_test

import (
	"testing"

	"github.com/mosaic-community/sitesearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires path", func(t *testing.T) {
		t.Parallel()

		r := &sitesearch.Record{Title: "Home"}

		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(r.Validate()))
	})

	t.Run("defaults lang to english", func(t *testing.T) {
		t.Parallel()

		r := &sitesearch.Record{Path: "/"}

		require.NoError(t, r.Validate())
		assert.Equal(t, "en", r.Lang)
	})
}

func TestRecord_Locale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "en", (&sitesearch.Record{}).Locale())
	assert.Equal(t, "vi", (&sitesearch.Record{Lang: "VI"}).Locale())
}

func TestRecord_HasTag(t *testing.T) {
	t.Parallel()

	r := &sitesearch.Record{Tags: []string{"aged care", "Services"}}

	assert.True(t, r.HasTag("services"))
	assert.True(t, r.HasTag("AGED CARE"))
	assert.False(t, r.HasTag("youth"))
}

func TestBundle_Label(t *testing.T) {
	t.Parallel()

	b := &sitesearch.Bundle{
		Nav:      map[string]string{"about": "Acerca de"},
		Services: map[string]string{"agedCare": "Cuidado de mayores"},
	}

	assert.Equal(t, "Acerca de", b.Label("nav.about"))
	assert.Equal(t, "Cuidado de mayores", b.Label("services.agedCare"))
	assert.Empty(t, b.Label("nav.donate"))
	assert.Empty(t, b.Label("footer.about"))

	var nilBundle *sitesearch.Bundle
	assert.Empty(t, nilBundle.Label("nav.about"))
}
