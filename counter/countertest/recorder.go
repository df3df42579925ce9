// Package countertest provides a recording counter.Display for tests and diagnostics.
package countertest

import (
	"sync"

	"github.com/AnatoleLucet/rxcounter/counter"
)

// Write is one text written to a display slot.
type Write struct {
	Slot counter.Slot
	Text string
}

// Recorder is a counter.Display that records every write.
//
// Recorder is safe for concurrent use.
type Recorder struct {
	writes []Write
	state  counter.DisplayState
	mu     sync.Mutex
}

// NewRecorder constructs an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SetStatus(text string) { r.record(counter.SlotStatus, text) }

func (r *Recorder) SetCurrentCount(text string) { r.record(counter.SlotCurrentCount, text) }

func (r *Recorder) SetEvenCount(text string) { r.record(counter.SlotEvenCount, text) }

func (r *Recorder) record(slot counter.Slot, text string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.writes = append(r.writes, Write{Slot: slot, Text: text})
	r.state.Set(slot, text)
	r.mu.Unlock()
}

// State returns what the display shows after the last writes.
func (r *Recorder) State() counter.DisplayState {
	if r == nil {
		return counter.DisplayState{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Writes returns a snapshot copy of recorded writes, in order.
func (r *Recorder) Writes() []Write {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]Write, len(r.writes))
	copy(cp, r.writes)
	return cp
}

// WritesTo returns the texts written to slot, in order.
func (r *Recorder) WritesTo(slot counter.Slot) []string {
	out := make([]string, 0)
	for _, w := range r.Writes() {
		if w.Slot == slot {
			out = append(out, w.Text)
		}
	}
	return out
}

// Len returns the number of recorded writes.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.writes)
}
