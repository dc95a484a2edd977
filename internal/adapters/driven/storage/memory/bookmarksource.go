package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
)

// Ensure BookmarkSource implements the interface.
var _ driven.BookmarkSource = (*BookmarkSource)(nil)

// BookmarkSource is an in-memory implementation of driven.BookmarkSource.
type BookmarkSource struct {
	mu    sync.RWMutex
	name  string
	roots []*domain.BookmarkNode
	err   error
}

// NewBookmarkSource creates a named bookmark source holding roots.
func NewBookmarkSource(name string, roots ...*domain.BookmarkNode) *BookmarkSource {
	return &BookmarkSource{
		name:  name,
		roots: roots,
	}
}

// Name returns the source name.
func (s *BookmarkSource) Name() string {
	return s.name
}

// SetRoots replaces the bookmark tree.
func (s *BookmarkSource) SetRoots(roots ...*domain.BookmarkNode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roots = roots
}

// SetError makes BookmarkTree fail with err. Pass nil to clear it.
func (s *BookmarkSource) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// BookmarkTree returns the root nodes.
func (s *BookmarkSource) BookmarkTree(_ context.Context) ([]*domain.BookmarkNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.roots, nil
}
