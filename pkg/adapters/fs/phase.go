package fs

import "fmt"

// Phase is the progress of a materialization run. Phases only move forward;
// a run that hits an error stops in PhaseFailed.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseScaffolded
	PhaseResourcesPlaced
	PhaseTreeWritten
	PhasePerContainerWritten
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseScaffolded:
		return "scaffolded"
	case PhaseResourcesPlaced:
		return "resources-placed"
	case PhaseTreeWritten:
		return "tree-written"
	case PhasePerContainerWritten:
		return "per-container-written"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// PhaseError reports the transition a run was attempting when it failed.
type PhaseError struct {
	From Phase
	To   Phase
	Err  error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s -> %s: %v", e.From, e.To, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
