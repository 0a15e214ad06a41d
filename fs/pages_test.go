package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mosaic-community/sitesearch"
	"github.com/mosaic-community/sitesearch/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageDir_FindPage(t *testing.T) {
	t.Parallel()

	t.Run("resolves page by file name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "About.tsx"), []byte("<h1>About</h1>"), 0644))

		page, err := fs.NewPageDir(dir).FindPage(context.Background(), "About")

		require.NoError(t, err)
		assert.Equal(t, "About", page.ID)
		assert.Equal(t, "<h1>About</h1>", page.Markup)
		assert.Equal(t, filepath.Join(dir, "About.tsx"), page.Source)
	})

	t.Run("resolves page directory index", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "AgedCare"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "AgedCare", "index.jsx"), []byte("x"), 0644))

		page, err := fs.NewPageDir(dir).FindPage(context.Background(), "AgedCare")

		require.NoError(t, err)
		assert.Equal(t, "x", page.Markup)
	})

	t.Run("returns ENOTFOUND for missing page", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewPageDir(t.TempDir()).FindPage(context.Background(), "Missing")

		assert.Equal(t, sitesearch.ENOTFOUND, sitesearch.ErrorCode(err))
	})

	t.Run("rejects identifiers with path separators", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewPageDir(t.TempDir()).FindPage(context.Background(), "../secrets")

		assert.Equal(t, sitesearch.ENOTFOUND, sitesearch.ErrorCode(err))
	})
}
