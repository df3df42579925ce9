package internal

type Kind int

const (
	KindNext Kind = iota
	KindError
	KindComplete
)

func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindError:
		return "error"
	case KindComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Notification is a single signal pushed by a subject: a value, or one of the
// two terminal signals.
type Notification struct {
	Kind  Kind
	Value any
	Err   error
}

func (n Notification) IsTerminal() bool {
	return n.Kind != KindNext
}
