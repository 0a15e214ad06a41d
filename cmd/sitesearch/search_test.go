package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/mosaic-community/sitesearch"
	main "github.com/mosaic-community/sitesearch/cmd/sitesearch"
	"github.com/mosaic-community/sitesearch/mock"
	"github.com/mosaic-community/sitesearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []*sitesearch.Record {
	return []*sitesearch.Record{
		{Path: "/services/aged-care", Title: "Aged Care Services", Tags: []string{"aged care", "home care"}, Lang: "en"},
		{Path: "/services/home-care", Title: "Home Care", Tags: []string{"home care"}, Lang: "en"},
		{Path: "/resources/forms", Title: "Forms", Tags: []string{"forms"}, Lang: "en"},
		{Path: "/services/aged-care", Title: "Cuidado de mayores", Tags: []string{"aged care"}, Lang: "es"},
	}
}

func newDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	client := search.NewClient(nil, search.WithItems(testItems()))
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   slog.New(slog.NewTextHandler(stderr, nil)),
		Client:   client,
		Searcher: client,
	}
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints matching records", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		var gotFacets []string
		deps.Searcher = &mock.Searcher{
			SearchFn: func(query string, facets []string) []*sitesearch.Record {
				gotFacets = facets
				return testItems()[:1]
			},
		}

		err := (&main.SearchCmd{Query: "aged care", Facet: []string{"Services"}}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "/services/aged-care  [en]  Aged Care Services\n", stdout.String())
		assert.Equal(t, []string{"Services"}, gotFacets)
	})

	t.Run("prints scores", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})

		err := (&main.SearchCmd{Query: "aged care", Scores: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "/services/aged-care  [en]  Aged Care Services")
		assert.Contains(t, stdout.String(), "/services/home-care  [en]  Home Care")
	})

	t.Run("limits output", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})

		err := (&main.SearchCmd{Query: "home care", Limit: 1}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 1, bytes.Count(stdout.Bytes(), []byte("\n")))
	})

	t.Run("reports no results", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		// Records under /services always score, so keep them out.
		deps.Searcher = search.NewClient(nil, search.WithItems(testItems()[2:3]))

		err := (&main.SearchCmd{Query: "zzzz"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "No results.\n", stdout.String())
	})
}

func TestSuggestCmd_Run(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	deps := newDeps(stdout, &bytes.Buffer{})

	err := (&main.SuggestCmd{Query: "aged"}).Run(deps)

	require.NoError(t, err)
	assert.Equal(t, "All\nAged care services\n", stdout.String())
}

func TestFacetsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists facets for the working locale", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})

		err := (&main.FacetsCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Services\nResources\n", stdout.String())
	})

	t.Run("lists facets of a query's results", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})

		err := (&main.FacetsCmd{Query: "forms"}).Run(deps)

		require.NoError(t, err)
		// The /services records match any query through the path boost.
		assert.Equal(t, "Services\nResources\n", stdout.String())
	})
}

func TestRelatedCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists pages sharing tags", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})

		err := (&main.RelatedCmd{Path: "/services/aged-care", Limit: 5}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "/services/home-care  Home Care\n", stdout.String())
	})

	t.Run("returns ENOTFOUND for unknown page", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)

		err := (&main.RelatedCmd{Path: "/nope", Limit: 5}).Run(deps)

		assert.Equal(t, sitesearch.ENOTFOUND, sitesearch.ErrorCode(err))
		assert.Empty(t, stderr.String())
	})
}

func TestPromptsCmd_Run(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	deps := newDeps(stdout, &bytes.Buffer{})

	err := (&main.PromptsCmd{}).Run(deps)

	require.NoError(t, err)
	assert.Equal(t, 4, bytes.Count(stdout.Bytes(), []byte("\n")))
}
