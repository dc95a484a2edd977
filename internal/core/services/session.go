package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
	"github.com/custodia-labs/quickswitch/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.Session = (*Session)(nil)

// Session holds the state of one switcher invocation: the raw term,
// the latest issued request and the selection over the applied results.
type Session struct {
	mu         sync.Mutex
	aggregator driving.Aggregator
	debouncer  *Debouncer
	selection  *domain.Selection
	terms      chan string
	term       string
	seq        uint64
}

// NewSession creates a session whose typed terms are debounced by delay.
func NewSession(aggregator driving.Aggregator, delay time.Duration) *Session {
	s := &Session{
		aggregator: aggregator,
		selection:  domain.NewSelection(),
		terms:      make(chan string, 1),
	}
	s.debouncer = NewDebouncer(delay, s.emit)
	return s
}

// SetTerm records the current input and schedules it for querying.
func (s *Session) SetTerm(term string) {
	s.mu.Lock()
	s.term = term
	s.mu.Unlock()

	s.debouncer.Push(term)
}

// Term returns the current raw input.
func (s *Session) Term() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.term
}

// Debounced delivers each term once typing has been quiet for the delay.
func (s *Session) Debounced() <-chan string {
	return s.terms
}

// emit hands term to the reader, replacing an unread older term.
func (s *Session) emit(term string) {
	for {
		select {
		case s.terms <- term:
			return
		default:
		}
		select {
		case old := <-s.terms:
			logger.Debug("Dropping unread term %q", old)
		default:
		}
	}
}

// Begin issues a new request for term. Any request issued earlier
// becomes stale.
func (s *Session) Begin(term string) domain.QueryRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return domain.QueryRequest{Seq: s.seq, Term: term}
}

// Run aggregates the results for req.
func (s *Session) Run(ctx context.Context, req domain.QueryRequest) []domain.SearchResult {
	return s.aggregator.Aggregate(ctx, req.Term)
}

// Complete applies results if req is still the latest request and
// reports whether it did. Stale results are discarded.
func (s *Session) Complete(req domain.QueryRequest, results []domain.SearchResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req.Seq != s.seq {
		logger.Debug("Discarding stale results for %q (seq %d, latest %d)", req.Term, req.Seq, s.seq)
		return false
	}
	s.selection.Replace(results)
	return true
}

// Selection returns the selection over the applied results.
func (s *Session) Selection() *domain.Selection {
	return s.selection
}

// Close cancels any pending debounced term.
func (s *Session) Close() {
	s.debouncer.Stop()
}
