package sitesearch_test

import (
	"testing"

	"github.com/mosaic-community/sitesearch"
	"github.com/stretchr/testify/assert"
)

func TestSynonymRules_Tags(t *testing.T) {
	t.Parallel()

	rules := sitesearch.SynonymRules{
		{Trigger: "aged care", Related: []string{"elder care", "seniors"}},
		{Trigger: "youth", Related: []string{"teens"}},
	}

	t.Run("adds trigger and related phrases on case-insensitive match", func(t *testing.T) {
		t.Parallel()

		tags := rules.Tags("Our AGED CARE team visits you at home")

		assert.Equal(t, []string{"aged care", "elder care", "seniors"}, tags)
	})

	t.Run("returns nothing when no trigger matches", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, rules.Tags("Donate today"))
	})
}

func TestSynonymRules_Expand(t *testing.T) {
	t.Parallel()

	rules := sitesearch.SynonymRules{
		{Trigger: "aged care", Related: []string{"elder care", "older people"}},
		{Trigger: "employment", Related: []string{"jobs"}},
	}

	t.Run("trigger in query adds related phrases", func(t *testing.T) {
		t.Parallel()

		terms := rules.Expand("aged care near me")

		assert.Equal(t, []string{"aged care", "elder care", "older people"}, terms)
	})

	t.Run("related phrase in query adds its trigger", func(t *testing.T) {
		t.Parallel()

		terms := rules.Expand("older people care")

		assert.Equal(t, []string{"aged care"}, terms)
	})

	t.Run("empty query expands to nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, rules.Expand(""))
	})
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"aged", "care", "services"}, sitesearch.Tokenize("Aged Care — Services!"))
	assert.Equal(t, []string{"get", "involved"}, sitesearch.Tokenize("Get-Involved"))
	assert.Empty(t, sitesearch.Tokenize(" / "))
}
