package counter

// Phase is the lifecycle position of the current counter.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseActive
	PhaseErrored
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseActive:
		return "active"
	case PhaseErrored:
		return "errored"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase only allows a new start.
func (p Phase) Terminal() bool {
	return p == PhaseErrored || p == PhaseCompleted
}

// State is a read-only view of the current counter.
type State struct {
	Phase Phase
	Value int

	// Err is set when Phase is PhaseErrored.
	Err error
}

// Active reports whether the counter accepts Increment, RaiseError and Complete.
func (s State) Active() bool {
	return s.Phase == PhaseActive
}
