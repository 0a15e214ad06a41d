package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mosaic-community/sitesearch"
	"github.com/mosaic-community/sitesearch/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Index Artifact
// The index is written atomically and left alone when unchanged

func TestIndexFile_WriteIndex(t *testing.T) {
	t.Parallel()

	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)
	items := func() []*sitesearch.Record {
		return []*sitesearch.Record{
			{Path: "/about", Title: "About", Body: "Who we are", Tags: []string{"about"}, Lang: "en"},
		}
	}

	t.Run("writes index JSON with generatedAt and items", func(t *testing.T) {
		t.Parallel()

		// Given an index file in a missing directory
		path := filepath.Join(t.TempDir(), "public", "search-index.json")
		f := fs.NewIndexFile(path)

		// When I write an index
		err := f.WriteIndex(context.Background(), &sitesearch.Index{GeneratedAt: first, Items: items()})

		// Then the artifact holds both fields
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.JSONEq(t, `"2026-01-01T00:00:00Z"`, string(raw["generatedAt"]))
		assert.JSONEq(t, `[{"path":"/about","title":"About","body":"Who we are","tags":["about"],"lang":"en"}]`, string(raw["items"]))
	})

	t.Run("keeps existing file when items are unchanged", func(t *testing.T) {
		t.Parallel()

		// Given an index already on disk
		path := filepath.Join(t.TempDir(), "search-index.json")
		f := fs.NewIndexFile(path)
		require.NoError(t, f.WriteIndex(context.Background(), &sitesearch.Index{GeneratedAt: first, Items: items()}))

		// When I write the same items again later
		idx := &sitesearch.Index{GeneratedAt: second, Items: items()}
		require.NoError(t, f.WriteIndex(context.Background(), idx))

		// Then the original timestamp is kept
		assert.Equal(t, first, idx.GeneratedAt)
		got, err := f.ReadIndex()
		require.NoError(t, err)
		assert.Equal(t, first, got.GeneratedAt)
	})

	t.Run("rewrites file when items change", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "search-index.json")
		f := fs.NewIndexFile(path)
		require.NoError(t, f.WriteIndex(context.Background(), &sitesearch.Index{GeneratedAt: first, Items: items()}))

		changed := items()
		changed[0].Title = "About Mosaic"
		require.NoError(t, f.WriteIndex(context.Background(), &sitesearch.Index{GeneratedAt: second, Items: changed}))

		got, err := f.ReadIndex()
		require.NoError(t, err)
		assert.Equal(t, second, got.GeneratedAt)
		assert.Equal(t, "About Mosaic", got.Items[0].Title)

		// And no temp files are left behind
		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestIndexFile_ReadIndex(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewIndexFile(filepath.Join(t.TempDir(), "none.json")).ReadIndex()

		assert.Equal(t, sitesearch.ENOTFOUND, sitesearch.ErrorCode(err))
	})

	t.Run("returns EINVALID for malformed file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

		_, err := fs.NewIndexFile(path).ReadIndex()

		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	})
}
