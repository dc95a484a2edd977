package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
)

// Ensure TabSource implements the interface.
var _ driven.TabSource = (*TabSource)(nil)

// TabSource is an in-memory implementation of driven.TabSource.
// Tabs are listed in insertion order.
type TabSource struct {
	mu     sync.RWMutex
	tabs   []domain.Tab
	active string
	err    error
}

// NewTabSource creates a new in-memory tab source holding tabs.
func NewTabSource(tabs ...domain.Tab) *TabSource {
	return &TabSource{
		tabs: append([]domain.Tab(nil), tabs...),
	}
}

// Add appends a tab and returns its ID. A tab without an ID is given a
// fresh one.
func (s *TabSource) Add(tab domain.Tab) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tab.ID == "" {
		tab.ID = uuid.New().String()
	}
	s.tabs = append(s.tabs, tab)
	return tab.ID
}

// Remove deletes the tab with the given ID.
func (s *TabSource) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tab := range s.tabs {
		if tab.ID == id {
			s.tabs = append(s.tabs[:i], s.tabs[i+1:]...)
			return
		}
	}
}

// Activate marks the tab with the given ID as focused.
func (s *TabSource) Activate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tab := range s.tabs {
		if tab.ID == id {
			s.active = id
			return nil
		}
	}
	return domain.ErrNotFound
}

// ActiveID returns the ID of the focused tab.
func (s *TabSource) ActiveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetError makes ListTabs fail with err. Pass nil to clear it.
func (s *TabSource) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// ListTabs returns a copy of the tabs.
func (s *TabSource) ListTabs(_ context.Context) ([]domain.Tab, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	result := make([]domain.Tab, len(s.tabs))
	copy(result, s.tabs)
	return result, nil
}
