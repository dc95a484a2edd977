package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPorts_Validate(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		mutate func(p *Ports)
		want   error
	}{
		{"complete", func(*Ports) {}, nil},
		{"no result actions", func(p *Ports) { p.ResultAction = nil }, nil},
		{"no session", func(p *Ports) { p.Session = nil }, ErrMissingSession},
		{"no activator", func(p *Ports) { p.Activator = nil }, ErrMissingActivator},
		{"no surface", func(p *Ports) { p.Surface = nil }, ErrMissingSurface},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := *env.ports
			tt.mutate(&p)
			assert.Equal(t, tt.want, p.Validate())
		})
	}
}
