package counter

// Display is the write-only sink the controller renders to.
type Display interface {
	SetStatus(text string)
	SetCurrentCount(text string)
	SetEvenCount(text string)
}

// Slot names one of the three text slots of a Display.
type Slot string

const (
	SlotStatus       Slot = "status"
	SlotCurrentCount Slot = "currentCount"
	SlotEvenCount    Slot = "evenCount"
)

// DisplayState is what a Display shows after its last writes.
type DisplayState struct {
	Status       string
	CurrentCount string
	EvenCount    string
}

// Set applies a write to the slot.
func (s *DisplayState) Set(slot Slot, text string) {
	switch slot {
	case SlotStatus:
		s.Status = text
	case SlotCurrentCount:
		s.CurrentCount = text
	case SlotEvenCount:
		s.EvenCount = text
	}
}
