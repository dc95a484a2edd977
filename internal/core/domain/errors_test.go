package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedKind", ErrUnsupportedKind},
		{"ErrNoTarget", ErrNoTarget},
		{"ErrBrowserUnavailable", ErrBrowserUnavailable},
		{"ErrSourceUnavailable", ErrSourceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}

// TestErrors_Wrapped tests that wrapped errors keep their identity
func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("focus tab %q: %w", "abc", ErrBrowserUnavailable)

	assert.True(t, errors.Is(wrapped, ErrBrowserUnavailable))
	assert.False(t, errors.Is(wrapped, ErrNoTarget))
	assert.Contains(t, wrapped.Error(), "browser unavailable")
}

// TestErrors_Distinct tests that no two sentinel errors compare equal
func TestErrors_Distinct(t *testing.T) {
	all := []error{
		ErrNotFound, ErrInvalidInput, ErrUnsupportedKind, ErrNoTarget,
		ErrBrowserUnavailable, ErrSourceUnavailable,
	}

	for i := range all {
		for j := range all {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(all[i], all[j]), "%v should not match %v", all[i], all[j])
		}
	}
}
