package memory

import (
	"sync"

	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
)

// Ensure Surface implements the interface.
var _ driven.Surface = (*Surface)(nil)

// Surface counts Close calls.
type Surface struct {
	mu     sync.Mutex
	closed int
}

// NewSurface creates an open surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Close records the close.
func (s *Surface) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed++
}

// Closed returns true if Close was called at least once.
func (s *Surface) Closed() bool {
	return s.CloseCount() > 0
}

// CloseCount returns the number of Close calls.
func (s *Surface) CloseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
