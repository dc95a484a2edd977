// Package firefox reads bookmarks from a Firefox profile's places.sqlite.
package firefox

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.BookmarkSource = (*Source)(nil)

// SourceName identifies Firefox bookmarks in logs.
const SourceName = "firefox"

// Bookmark row types in moz_bookmarks.
const (
	typeBookmark = 1
	typeFolder   = 2
)

// tagsGUID is the folder holding tag entries, which duplicate real bookmarks.
const tagsGUID = "tags________"

const bookmarksQuery = `
SELECT b.id, b.type, b.parent, COALESCE(b.title, ''), COALESCE(p.url, ''), COALESCE(b.guid, '')
FROM moz_bookmarks b
LEFT JOIN moz_places p ON b.fk = p.id
ORDER BY b.parent, b.position`

// Source is a places.sqlite database. Firefox keeps the file locked
// while running, so it is opened read-only and immutable on every read.
type Source struct {
	path string
}

// NewSource creates a source for the places.sqlite at path.
// An empty path uses DefaultPath.
func NewSource(path string) *Source {
	if path == "" {
		path = DefaultPath()
	}
	return &Source{path: path}
}

// DefaultPath returns places.sqlite of the first default profile found,
// or "" if there is none.
func DefaultPath() string {
	var profiles string
	switch runtime.GOOS {
	case "windows":
		profiles = filepath.Join(os.Getenv("APPDATA"), "Mozilla", "Firefox", "Profiles")
	case "darwin":
		home, _ := os.UserHomeDir()
		profiles = filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles")
	default:
		home, _ := os.UserHomeDir()
		profiles = filepath.Join(home, ".mozilla", "firefox")
	}
	return findPlaces(profiles)
}

// findPlaces looks for */places.sqlite under dir, preferring profiles
// whose name contains "default".
func findPlaces(dir string) string {
	for _, pattern := range []string{"*.default*", "*"} {
		matches, _ := filepath.Glob(filepath.Join(dir, pattern, "places.sqlite"))
		if len(matches) > 0 {
			sort.Strings(matches)
			return matches[0]
		}
	}
	return ""
}

// Name returns the source name.
func (s *Source) Name() string {
	return SourceName
}

// Path returns the database path.
func (s *Source) Path() string {
	return s.path
}

type row struct {
	id     int64
	kind   int
	parent int64
	title  string
	url    string
	guid   string
}

// BookmarkTree reads every bookmark and folder and rebuilds the tree.
// The returned roots are the children of the places root (menu,
// toolbar, unfiled, mobile). Separators and tags are skipped.
func (s *Source) BookmarkTree(ctx context.Context) ([]*domain.BookmarkNode, error) {
	if s.path == "" {
		return nil, fmt.Errorf("firefox places: %w", domain.ErrSourceUnavailable)
	}
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("firefox places: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+s.path+"?mode=ro&immutable=1")
	if err != nil {
		return nil, fmt.Errorf("opening places database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, bookmarksQuery)
	if err != nil {
		return nil, fmt.Errorf("querying bookmarks: %w", err)
	}
	defer rows.Close()

	var all []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.kind, &r.parent, &r.title, &r.url, &r.guid); err != nil {
			return nil, fmt.Errorf("scanning bookmark: %w", err)
		}
		all = append(all, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading bookmarks: %w", err)
	}

	roots := buildTree(all)
	logger.Debug("Firefox bookmarks: %d rows from %s", len(all), s.path)
	return roots, nil
}

// buildTree links rows by parent id. Rows must be ordered by parent,
// then position, so children keep their on-screen order.
func buildTree(rows []row) []*domain.BookmarkNode {
	nodes := make(map[int64]*domain.BookmarkNode, len(rows))
	skip := make(map[int64]bool)
	for _, r := range rows {
		switch {
		case r.guid == tagsGUID:
			skip[r.id] = true
		case r.kind == typeFolder:
			nodes[r.id] = &domain.BookmarkNode{ID: strconv.FormatInt(r.id, 10), Title: r.title}
		case r.kind == typeBookmark:
			nodes[r.id] = &domain.BookmarkNode{ID: strconv.FormatInt(r.id, 10), Title: r.title, URL: r.url}
		}
	}

	var top []*domain.BookmarkNode
	var placesRoot int64 = -1
	for _, r := range rows {
		if r.parent == 0 && r.kind == typeFolder {
			placesRoot = r.id
		}
	}

	for _, r := range rows {
		node, ok := nodes[r.id]
		if !ok || r.id == placesRoot || skip[r.parent] {
			continue
		}
		if r.parent == placesRoot {
			top = append(top, node)
			continue
		}
		if parent, ok := nodes[r.parent]; ok {
			parent.Children = append(parent.Children, node)
		}
	}
	return top
}
