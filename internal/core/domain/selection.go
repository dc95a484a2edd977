package domain

// Selection owns the active index over the current result list.
//
// It is either Empty (no results) or Active(index) with
// 0 <= index < len(results). Every list replacement resets the index
// to 0; navigation wraps around at both ends and is a no-op when empty.
type Selection struct {
	results  []SearchResult
	index    int
	onChange func(index int)
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// OnChange registers a callback run after every transition that leaves
// the selection active. Renderers use it to scroll the row into view.
func (s *Selection) OnChange(fn func(index int)) {
	s.onChange = fn
}

// Replace swaps in a new result list and resets the index to 0.
func (s *Selection) Replace(results []SearchResult) {
	s.results = results
	s.index = 0
	s.notify()
}

// Down moves the active index forward, wrapping to 0 after the last row.
func (s *Selection) Down() {
	n := len(s.results)
	if n == 0 {
		return
	}
	s.index = (s.index + 1) % n
	s.notify()
}

// Up moves the active index back, wrapping to the last row from 0.
func (s *Selection) Up() {
	n := len(s.results)
	if n == 0 {
		return
	}
	s.index = (s.index - 1 + n) % n
	s.notify()
}

// Select makes index active if it is in range.
// It returns false and leaves the selection unchanged otherwise.
func (s *Selection) Select(index int) bool {
	if index < 0 || index >= len(s.results) {
		return false
	}
	s.index = index
	s.notify()
	return true
}

// Index returns the active index and true, or 0 and false when empty.
func (s *Selection) Index() (int, bool) {
	if len(s.results) == 0 {
		return 0, false
	}
	return s.index, true
}

// Active returns the active result and true, or false when empty.
func (s *Selection) Active() (SearchResult, bool) {
	if len(s.results) == 0 {
		return SearchResult{}, false
	}
	return s.results[s.index], true
}

// Results returns the current result list.
func (s *Selection) Results() []SearchResult {
	return s.results
}

// Len returns the number of results.
func (s *Selection) Len() int {
	return len(s.results)
}

func (s *Selection) notify() {
	if s.onChange != nil && len(s.results) > 0 {
		s.onChange(s.index)
	}
}
