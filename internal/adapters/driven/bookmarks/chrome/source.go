// Package chrome reads bookmarks from Chrome's Bookmarks JSON file.
package chrome

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.BookmarkSource = (*Source)(nil)

// SourceName identifies Chrome bookmarks in logs.
const SourceName = "chrome"

// rootKeys are the top-level folders in the order Chrome shows them.
var rootKeys = []string{"bookmark_bar", "other", "synced"}

// Source is a Chrome bookmark file. The parsed tree is cached until
// the file changes on disk.
type Source struct {
	path string

	mu      sync.RWMutex
	cached  []*domain.BookmarkNode
	valid   bool
	gen     uint64
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewSource creates a source for the Bookmarks file at path.
// An empty path uses DefaultPath.
func NewSource(path string) *Source {
	if path == "" {
		path = DefaultPath()
	}
	return &Source{path: path}
}

// DefaultPath returns the Bookmarks file of Chrome's default profile.
func DefaultPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "Google", "Chrome", "User Data", "Default", "Bookmarks")
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Default", "Bookmarks")
	default:
		dir, err := os.UserConfigDir()
		if err != nil {
			home, _ := os.UserHomeDir()
			dir = filepath.Join(home, ".config")
		}
		return filepath.Join(dir, "google-chrome", "Default", "Bookmarks")
	}
}

// Name returns the source name.
func (s *Source) Name() string {
	return SourceName
}

// Path returns the Bookmarks file path.
func (s *Source) Path() string {
	return s.path
}

// BookmarkTree returns the cached tree, reading the file on first use
// and after every change.
func (s *Source) BookmarkTree(_ context.Context) ([]*domain.BookmarkNode, error) {
	s.mu.RLock()
	if s.valid {
		roots := s.cached
		s.mu.RUnlock()
		return roots, nil
	}
	gen := s.gen
	s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read chrome bookmarks: %w", err)
	}
	roots, err := Parse(data)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	// A change seen while reading means roots may already be stale.
	if s.gen == gen {
		s.cached = roots
		s.valid = true
	}
	s.mu.Unlock()

	logger.Debug("Chrome bookmarks loaded from %s", s.path)
	return roots, nil
}

// Invalidate drops the cached tree.
func (s *Source) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valid = false
	s.cached = nil
	s.gen++
}

// Watch invalidates the cache whenever the file is written or replaced.
// Chrome saves by renaming a temporary file, so the parent directory
// is watched rather than the file itself.
func (s *Source) Watch() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher != nil {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(s.path), err)
	}

	s.watcher = w
	s.done = make(chan struct{})
	go s.watch(w, s.done)
	return nil
}

// Close stops watching.
func (s *Source) Close() error {
	s.mu.Lock()
	w, done := s.watcher, s.done
	s.watcher, s.done = nil, nil
	s.mu.Unlock()

	if w == nil {
		return nil
	}
	err := w.Close()
	<-done
	return err
}

func (s *Source) watch(w *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	name := filepath.Base(s.path)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove) {
				logger.Debug("Chrome bookmarks changed (%s)", ev.Op)
				s.Invalidate()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("Chrome bookmarks watcher: %v", err)
		}
	}
}

// bookmarkFile is the on-disk layout of Chrome's Bookmarks file.
type bookmarkFile struct {
	Roots map[string]*jsonNode `json:"roots"`
}

type jsonNode struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	URL      string      `json:"url"`
	Children []*jsonNode `json:"children"`
}

// Parse decodes a Bookmarks file into its root folders.
func Parse(data []byte) ([]*domain.BookmarkNode, error) {
	var f bookmarkFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse chrome bookmarks: %w", err)
	}

	roots := make([]*domain.BookmarkNode, 0, len(rootKeys))
	for _, key := range rootKeys {
		if n, ok := f.Roots[key]; ok && n != nil {
			roots = append(roots, convert(n))
		}
	}
	return roots, nil
}

func convert(n *jsonNode) *domain.BookmarkNode {
	node := &domain.BookmarkNode{
		ID:    n.ID,
		Title: n.Name,
	}
	if n.Type == "url" {
		node.URL = n.URL
	}
	for _, c := range n.Children {
		if c != nil {
			node.Children = append(node.Children, convert(c))
		}
	}
	return node
}
