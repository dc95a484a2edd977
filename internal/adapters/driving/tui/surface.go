package tui

import (
	"sync"

	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
)

// Ensure Surface implements the interface.
var _ driven.Surface = (*Surface)(nil)

// Surface is the terminal window hosting the switcher. Closing it ends
// the program.
type Surface struct {
	once sync.Once
	done chan struct{}
}

// NewSurface creates an open surface.
func NewSurface() *Surface {
	return &Surface{done: make(chan struct{})}
}

// Close dismisses the surface. Calling it more than once is safe.
func (s *Surface) Close() {
	s.once.Do(func() { close(s.done) })
}

// Done is closed once the surface has been dismissed.
func (s *Surface) Done() <-chan struct{} {
	return s.done
}

// Closed reports whether the surface has been dismissed.
func (s *Surface) Closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}
