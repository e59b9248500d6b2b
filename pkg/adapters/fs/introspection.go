package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// DirectoryState exposes internal state for observability.
type DirectoryState struct {
	Path      string     `json:"path"`
	Phase     string     `json:"phase"`
	Stats     Stats      `json:"stats"`
	LastRun   *time.Time `json:"last_run,omitempty"`
	LastError string     `json:"last_error,omitempty"`
}

// State implements introspection.Introspectable.
func (d *Directory) State() any {
	d.mu.RLock()
	defer d.mu.RUnlock()

	state := DirectoryState{
		Path:    d.Path,
		Phase:   d.phase.String(),
		Stats:   d.stats,
		LastRun: d.lastRun,
	}
	if d.lastErr != nil {
		state.LastError = d.lastErr.Error()
	}
	return state
}

// ComponentType implements introspection.Component.
func (d *Directory) ComponentType() string {
	return "directory"
}

var _ introspection.Introspectable = (*Directory)(nil)
var _ introspection.Component = (*Directory)(nil)
