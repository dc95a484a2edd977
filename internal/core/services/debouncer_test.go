package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type termRecorder struct {
	mu    sync.Mutex
	terms []string
	fired chan struct{}
}

func newTermRecorder() *termRecorder {
	return &termRecorder{fired: make(chan struct{}, 16)}
}

func (r *termRecorder) record(term string) {
	r.mu.Lock()
	r.terms = append(r.terms, term)
	r.mu.Unlock()
	r.fired <- struct{}{}
}

func (r *termRecorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.terms...)
}

func (r *termRecorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.fired:
	case <-time.After(time.Second):
		t.Fatal("debounced callback never fired")
	}
}

func TestNewDebouncer_DefaultDelay(t *testing.T) {
	d := NewDebouncer(0, func(string) {})
	assert.Equal(t, DefaultDebounce, d.delay)
	assert.Equal(t, 150*time.Millisecond, DefaultDebounce)
}

// TestDebouncer_CoalescesBurst tests that keystrokes inside the window yield one call with the last value
func TestDebouncer_CoalescesBurst(t *testing.T) {
	rec := newTermRecorder()
	d := NewDebouncer(50*time.Millisecond, rec.record)

	d.Push("a")
	d.Push("ab")
	d.Push("abc")

	rec.wait(t)
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, []string{"abc"}, rec.got())
}

func TestDebouncer_FiresWithoutFurtherInput(t *testing.T) {
	rec := newTermRecorder()
	d := NewDebouncer(10*time.Millisecond, rec.record)

	d.Push("solo")

	rec.wait(t)
	assert.Equal(t, []string{"solo"}, rec.got())
	assert.False(t, d.isPending())
}

func TestDebouncer_NoLeadingEdge(t *testing.T) {
	rec := newTermRecorder()
	d := NewDebouncer(200*time.Millisecond, rec.record)

	d.Push("a")

	assert.True(t, d.isPending())
	assert.Empty(t, rec.got())
	d.Stop()
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	rec := newTermRecorder()
	d := NewDebouncer(10*time.Millisecond, rec.record)

	d.Push("first")
	rec.wait(t)
	d.Push("second")
	rec.wait(t)

	assert.Equal(t, []string{"first", "second"}, rec.got())
}

func TestDebouncer_FlushFiresNow(t *testing.T) {
	rec := newTermRecorder()
	d := NewDebouncer(time.Hour, rec.record)

	d.Push("now")
	d.flush()

	require.Equal(t, []string{"now"}, rec.got())
	assert.False(t, d.isPending())

	d.flush()
	assert.Len(t, rec.got(), 1)
}

func TestDebouncer_Stop(t *testing.T) {
	rec := newTermRecorder()
	d := NewDebouncer(10*time.Millisecond, rec.record)

	d.Push("cancelled")
	d.Stop()
	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, rec.got())
}

// TestDebouncer_StaleGenerationIgnored tests that a superseded timer callback does nothing
func TestDebouncer_StaleGenerationIgnored(t *testing.T) {
	rec := newTermRecorder()
	d := NewDebouncer(time.Hour, rec.record)

	d.Push("old")
	d.mu.Lock()
	stale := d.gen
	d.mu.Unlock()
	d.Push("new")

	d.fire(stale)
	assert.Empty(t, rec.got())

	d.flush()
	assert.Equal(t, []string{"new"}, rec.got())
}
