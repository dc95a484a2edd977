package chrome

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

const sampleBookmarks = `{
  "checksum": "abc",
  "roots": {
    "bookmark_bar": {
      "id": "1", "name": "Bookmarks bar", "type": "folder",
      "children": [
        {"id": "2", "name": "Go", "type": "url", "url": "https://go.dev"},
        {"id": "3", "name": "Work", "type": "folder", "children": [
          {"id": "4", "name": "Mail", "type": "url", "url": "https://mail.example"}
        ]}
      ]
    },
    "other": {
      "id": "5", "name": "Other bookmarks", "type": "folder",
      "children": [
        {"id": "6", "name": "", "type": "url", "url": "https://untitled.example"}
      ]
    },
    "synced": {"id": "7", "name": "Mobile bookmarks", "type": "folder", "children": []}
  },
  "version": 1
}`

func writeBookmarks(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "Bookmarks")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParse_RootOrderAndFlatten(t *testing.T) {
	roots, err := Parse([]byte(sampleBookmarks))

	require.NoError(t, err)
	require.Len(t, roots, 3)
	assert.Equal(t, "Bookmarks bar", roots[0].Title)
	assert.Equal(t, "Other bookmarks", roots[1].Title)
	assert.Equal(t, "Mobile bookmarks", roots[2].Title)

	flat := domain.FlattenBookmarks(roots)
	require.Len(t, flat, 3)
	assert.Equal(t, "Go", flat[0].Title)
	assert.Equal(t, "Mail", flat[1].Title)
	assert.Equal(t, "https://untitled.example", flat[2].URL)
}

func TestParse_FoldersHaveNoURL(t *testing.T) {
	roots, err := Parse([]byte(sampleBookmarks))
	require.NoError(t, err)

	work := roots[0].Children[1]
	assert.True(t, work.IsFolder())
	assert.Equal(t, "Work", work.Title)
}

func TestParse_MissingRoots(t *testing.T) {
	roots, err := Parse([]byte(`{"roots": {"other": {"id": "1", "name": "Other", "type": "folder"}}}`))

	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "Other", roots[0].Title)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	assert.Error(t, err)
}

func TestSource_BookmarkTree(t *testing.T) {
	path := writeBookmarks(t, t.TempDir(), sampleBookmarks)
	src := NewSource(path)

	roots, err := src.BookmarkTree(context.Background())

	require.NoError(t, err)
	assert.Len(t, roots, 3)
	assert.Equal(t, SourceName, src.Name())
	assert.Equal(t, path, src.Path())
}

func TestSource_MissingFile(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "Bookmarks"))

	_, err := src.BookmarkTree(context.Background())

	assert.Error(t, err)
}

func TestSource_CachesUntilInvalidated(t *testing.T) {
	dir := t.TempDir()
	path := writeBookmarks(t, dir, sampleBookmarks)
	src := NewSource(path)
	ctx := context.Background()

	_, err := src.BookmarkTree(ctx)
	require.NoError(t, err)

	writeBookmarks(t, dir, `{"roots": {}}`)
	roots, err := src.BookmarkTree(ctx)
	require.NoError(t, err)
	assert.Len(t, roots, 3, "served from cache")

	src.Invalidate()
	roots, err = src.BookmarkTree(ctx)
	require.NoError(t, err)
	assert.Empty(t, roots)
}

func TestSource_WatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeBookmarks(t, dir, sampleBookmarks)
	src := NewSource(path)
	require.NoError(t, src.Watch())
	defer func() { _ = src.Close() }()
	ctx := context.Background()

	roots, err := src.BookmarkTree(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 3)

	writeBookmarks(t, dir, `{"roots": {"other": {"id": "1", "name": "Other", "type": "folder"}}}`)

	assert.Eventually(t, func() bool {
		roots, err := src.BookmarkTree(ctx)
		return err == nil && len(roots) == 1
	}, 2*time.Second, 20*time.Millisecond)
}

func TestSource_WatchMissingDirectory(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "missing", "Bookmarks"))

	assert.Error(t, src.Watch())
	assert.NoError(t, src.Close())
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "Bookmarks", filepath.Base(DefaultPath()))
	assert.Equal(t, DefaultPath(), NewSource("").Path())
}
