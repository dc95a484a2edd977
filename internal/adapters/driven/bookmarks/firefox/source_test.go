package firefox

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

const schema = `
CREATE TABLE moz_places (id INTEGER PRIMARY KEY, url LONGVARCHAR, title LONGVARCHAR);
CREATE TABLE moz_bookmarks (
	id INTEGER PRIMARY KEY,
	type INTEGER,
	fk INTEGER DEFAULT NULL,
	parent INTEGER,
	position INTEGER,
	title LONGVARCHAR,
	guid TEXT
);`

// setupPlaces creates a places.sqlite with a toolbar holding a Work
// folder, a menu bookmark, a separator and a tag entry.
func setupPlaces(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.sqlite")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	stmts := []string{
		schema,
		`INSERT INTO moz_places (id, url, title) VALUES
			(10, 'https://mail.example', 'Mail page'),
			(11, 'https://go.dev', 'Go'),
			(12, 'https://news.example', 'News')`,
		`INSERT INTO moz_bookmarks (id, type, fk, parent, position, title, guid) VALUES
			(1, 2, NULL, 0, 0, '', 'root________'),
			(2, 2, NULL, 1, 0, 'menu', 'menu________'),
			(3, 2, NULL, 1, 1, 'toolbar', 'toolbar_____'),
			(4, 2, NULL, 1, 2, 'tags', 'tags________'),
			(5, 2, NULL, 1, 3, 'unfiled', 'unfiled_____'),
			(20, 2, NULL, 3, 0, 'Work', 'work'),
			(21, 1, 10, 20, 0, 'Mail', 'mail'),
			(22, 1, 11, 2, 1, 'Go', 'go'),
			(23, 3, NULL, 2, 0, '', 'sep'),
			(24, 2, NULL, 4, 0, 'golang', 'tag'),
			(25, 1, 11, 24, 0, NULL, 'tagged'),
			(26, 1, 12, 5, 0, NULL, 'news')`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}

func TestSource_BookmarkTree(t *testing.T) {
	src := NewSource(setupPlaces(t))

	roots, err := src.BookmarkTree(context.Background())

	require.NoError(t, err)
	titles := make([]string, 0, len(roots))
	for _, r := range roots {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"menu", "toolbar", "unfiled"}, titles)
}

func TestSource_FlattenedOrder(t *testing.T) {
	src := NewSource(setupPlaces(t))

	roots, err := src.BookmarkTree(context.Background())
	require.NoError(t, err)

	flat := domain.FlattenBookmarks(roots)
	require.Len(t, flat, 3)
	assert.Equal(t, "Go", flat[0].Title)
	assert.Equal(t, "https://go.dev", flat[0].URL)
	assert.Equal(t, "Mail", flat[1].Title)
	assert.Equal(t, "", flat[2].Title)
	assert.Equal(t, "https://news.example", flat[2].URL)
}

func TestSource_FolderExcludedFromFlatten(t *testing.T) {
	src := NewSource(setupPlaces(t))

	roots, err := src.BookmarkTree(context.Background())
	require.NoError(t, err)

	toolbar := roots[1]
	require.Len(t, toolbar.Children, 1)
	work := toolbar.Children[0]
	assert.True(t, work.IsFolder())
	assert.Equal(t, "20", work.ID)
	require.Len(t, work.Children, 1)
	assert.Equal(t, "Mail", work.Children[0].Title)
}

func TestSource_MissingFile(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "places.sqlite"))

	_, err := src.BookmarkTree(context.Background())

	assert.Error(t, err)
}

func TestSource_NotADatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.sqlite")
	require.NoError(t, os.WriteFile(path, []byte("definitely not sqlite"), 0600))

	_, err := NewSource(path).BookmarkTree(context.Background())

	assert.Error(t, err)
}

func TestSource_Name(t *testing.T) {
	src := NewSource("/tmp/places.sqlite")

	assert.Equal(t, SourceName, src.Name())
	assert.Equal(t, "/tmp/places.sqlite", src.Path())
}

func TestFindPlaces(t *testing.T) {
	dir := t.TempDir()
	for _, profile := range []string{"abc.other", "xyz.default-release"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, profile), 0700))
		require.NoError(t, os.WriteFile(filepath.Join(dir, profile, "places.sqlite"), nil, 0600))
	}

	assert.Equal(t, filepath.Join(dir, "xyz.default-release", "places.sqlite"), findPlaces(dir))
	assert.Empty(t, findPlaces(filepath.Join(dir, "missing")))
}

func TestBuildTree_Empty(t *testing.T) {
	assert.Empty(t, buildTree(nil))
}
