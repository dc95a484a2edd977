package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBar_Defaults(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, 80, bar.Width())
	assert.Contains(t, bar.View(), "Ready")
}

func TestBar_ViewShowsHints(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	view := bar.View()

	assert.Contains(t, view, "enter select item")
	assert.Contains(t, view, "Shift 0 open extension")
}

func TestBar_ResultCount(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	bar.SetResultCount(1)
	assert.Contains(t, bar.View(), "1 result")

	bar.SetResultCount(4)
	assert.Equal(t, StateResults, bar.State())
	assert.Contains(t, bar.View(), "4 results")
}

func TestBar_LoadingDoesNotHideMessage(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetLoading()
	assert.Equal(t, StateLoading, bar.State())

	bar.Flash(StateError, "browser unavailable")
	bar.SetLoading()
	bar.SetResultCount(2)

	assert.Equal(t, StateError, bar.State())
	assert.Equal(t, 2, bar.ResultCount())
}

func TestBar_FlashAndExpire(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	id := bar.Flash(StateError, "activate tab: boom")
	assert.Contains(t, bar.View(), "activate tab: boom")

	assert.True(t, bar.Expire(id))
	assert.Equal(t, StateResults, bar.State())
	assert.Empty(t, bar.Message())
	assert.False(t, bar.Expire(id))
}

// TestBar_ExpireIgnoresOlderMessage tests that an older timer cannot clear a newer message
func TestBar_ExpireIgnoresOlderMessage(t *testing.T) {
	bar := NewBar(nil, nil)

	first := bar.Flash(StateError, "first")
	second := bar.Flash(StateNotice, "Copied")

	assert.False(t, bar.Expire(first))
	assert.Equal(t, "Copied", bar.Message())
	assert.True(t, bar.Expire(second))
}
