package counter_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnatoleLucet/rxcounter/counter"
	"github.com/AnatoleLucet/rxcounter/counter/countertest"
)

func newController(t *testing.T, opts ...counter.Option) (*counter.Controller, *countertest.Recorder) {
	t.Helper()

	display := countertest.NewRecorder()
	return counter.New(display, opts...), display
}

func TestController(t *testing.T) {
	t.Run("start writes status then emits zero to both views", func(t *testing.T) {
		c, display := newController(t)

		c.StartNewCounter()

		assert.Equal(t, []countertest.Write{
			{Slot: counter.SlotStatus, Text: "counting started"},
			{Slot: counter.SlotCurrentCount, Text: "0"},
			{Slot: counter.SlotEvenCount, Text: "0"},
		}, display.Writes())
		assert.Equal(t, counter.State{Phase: counter.PhaseActive}, c.State())
	})

	t.Run("increments count", func(t *testing.T) {
		c, display := newController(t)
		c.StartNewCounter()

		for n := 1; n <= 25; n++ {
			c.Increment()
			require.Equal(t, strconv.Itoa(n), display.State().CurrentCount)
		}

		assert.Equal(t, 25, c.State().Value)
	})

	t.Run("even view updates only on even values", func(t *testing.T) {
		c, display := newController(t)
		c.StartNewCounter()

		for n := 1; n <= 6; n++ {
			before := display.Len()
			c.Increment()

			writes := display.Writes()[before:]
			if n%2 == 0 {
				assert.Equal(t, []countertest.Write{
					{Slot: counter.SlotCurrentCount, Text: strconv.Itoa(n)},
					{Slot: counter.SlotEvenCount, Text: strconv.Itoa(n)},
				}, writes)
			} else {
				assert.Equal(t, []countertest.Write{
					{Slot: counter.SlotCurrentCount, Text: strconv.Itoa(n)},
				}, writes)
				assert.Equal(t, strconv.Itoa(n-1), display.State().EvenCount)
			}
		}

		assert.Equal(t, []string{"0", "2", "4", "6"}, display.WritesTo(counter.SlotEvenCount))
	})

	t.Run("scenario: increment three times", func(t *testing.T) {
		c, display := newController(t)

		c.StartNewCounter()
		c.Increment()
		c.Increment()
		c.Increment()

		assert.Equal(t, counter.DisplayState{
			Status:       "counting started",
			CurrentCount: "3",
			EvenCount:    "2",
		}, display.State())
	})

	t.Run("scenario: raise error", func(t *testing.T) {
		c, display := newController(t)

		c.StartNewCounter()
		c.Increment()
		c.RaiseError("boom")

		want := counter.DisplayState{
			Status:       "boom",
			CurrentCount: "1",
			EvenCount:    "0",
		}
		assert.Equal(t, want, display.State())

		c.Increment()
		assert.Equal(t, want, display.State())

		state := c.State()
		assert.Equal(t, counter.PhaseErrored, state.Phase)
		assert.Equal(t, 1, state.Value)

		var raised *counter.RaisedError
		require.True(t, errors.As(state.Err, &raised))
		assert.Equal(t, "boom", raised.Message)
	})

	t.Run("scenario: raise error without message", func(t *testing.T) {
		c, display := newController(t)

		c.StartNewCounter()
		c.RaiseError("")

		assert.Equal(t, "error", display.State().Status)
		assert.EqualError(t, c.State().Err, "error")
	})

	t.Run("scenario: complete", func(t *testing.T) {
		c, display := newController(t)

		c.StartNewCounter()
		c.Increment()
		c.Increment()
		c.Complete()

		want := counter.DisplayState{
			Status:       "completed",
			CurrentCount: "2",
			EvenCount:    "2",
		}
		assert.Equal(t, want, display.State())

		before := display.Len()
		c.Increment()
		assert.Equal(t, before, display.Len())
		assert.Equal(t, counter.PhaseCompleted, c.State().Phase)
		assert.NoError(t, c.State().Err)
	})

	t.Run("terminated counter ignores every action but start", func(t *testing.T) {
		for name, terminate := range map[string]func(*counter.Controller){
			"error":    func(c *counter.Controller) { c.RaiseError("boom") },
			"complete": func(c *counter.Controller) { c.Complete() },
		} {
			t.Run(name, func(t *testing.T) {
				c, display := newController(t)

				c.StartNewCounter()
				c.Increment()
				terminate(c)

				before := display.Len()
				c.Increment()
				c.RaiseError("again")
				c.Complete()
				c.Increment()

				assert.Equal(t, before, display.Len())
			})
		}
	})

	t.Run("actions before the first start are ignored", func(t *testing.T) {
		c, display := newController(t)

		c.Increment()
		c.RaiseError("boom")
		c.Complete()

		assert.Zero(t, display.Len())
		assert.Equal(t, counter.PhaseUninitialized, c.State().Phase)
	})

	t.Run("start resets from any phase", func(t *testing.T) {
		for name, prepare := range map[string]func(*counter.Controller){
			"uninitialized": func(c *counter.Controller) {},
			"active": func(c *counter.Controller) {
				c.StartNewCounter()
				c.Increment()
				c.Increment()
				c.Increment()
			},
			"errored": func(c *counter.Controller) {
				c.StartNewCounter()
				c.Increment()
				c.RaiseError("boom")
			},
			"completed": func(c *counter.Controller) {
				c.StartNewCounter()
				c.Complete()
			},
		} {
			t.Run(name, func(t *testing.T) {
				c, display := newController(t)
				prepare(c)

				c.StartNewCounter()

				assert.Equal(t, counter.DisplayState{
					Status:       "counting started",
					CurrentCount: "0",
					EvenCount:    "0",
				}, display.State())
				assert.Equal(t, counter.State{Phase: counter.PhaseActive}, c.State())
			})
		}
	})

	t.Run("abandoned counter no longer renders", func(t *testing.T) {
		c, display := newController(t)

		c.StartNewCounter()
		c.Increment()
		c.StartNewCounter()

		before := display.Len()
		c.Increment()

		assert.Equal(t, []countertest.Write{
			{Slot: counter.SlotCurrentCount, Text: "1"},
		}, display.Writes()[before:])
	})

	t.Run("dispatch routes actions", func(t *testing.T) {
		c, display := newController(t)

		for _, a := range []counter.Action{
			counter.Start,
			counter.Increment,
			counter.Increment,
			counter.RaiseError("oops"),
			counter.Increment,
		} {
			c.Dispatch(a)
		}

		assert.Equal(t, counter.DisplayState{
			Status:       "oops",
			CurrentCount: "2",
			EvenCount:    "2",
		}, display.State())

		c.Dispatch(counter.Start)
		c.Dispatch(counter.Complete)
		assert.Equal(t, "completed", display.State().Status)
	})

	t.Run("custom labels", func(t *testing.T) {
		c, display := newController(t, counter.WithLabels(counter.TraditionalChinese))

		c.StartNewCounter()
		assert.Equal(t, "開始計數", display.State().Status)

		c.Complete()
		assert.Equal(t, "完成", display.State().Status)

		c.StartNewCounter()
		c.RaiseError("")
		assert.Equal(t, "error", display.State().Status)
	})

	t.Run("exposes the resolved labels", func(t *testing.T) {
		c, _ := newController(t, counter.WithLabels(counter.Labels{Prompt: "why?"}))

		labels := c.Labels()
		assert.Equal(t, "why?", labels.Prompt)
		assert.Equal(t, counter.English.Started, labels.Started)
	})

	t.Run("partial labels keep defaults", func(t *testing.T) {
		c, display := newController(t, counter.WithLabels(counter.Labels{Completed: "done"}))

		c.StartNewCounter()
		assert.Equal(t, "counting started", display.State().Status)

		c.Complete()
		assert.Equal(t, "done", display.State().Status)
	})

	t.Run("display panics are logged, not propagated", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		display := &panickyDisplay{Recorder: countertest.NewRecorder()}
		c := counter.New(display, counter.WithLogger(logger))

		assert.NotPanics(t, func() {
			c.StartNewCounter()
			c.Increment()
		})

		assert.Equal(t, "1", display.State().CurrentCount)
		assert.Contains(t, buf.String(), "display panicked while rendering")
	})

	t.Run("logs lifecycle at debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		c, _ := newController(t, counter.WithLogger(logger))
		c.Increment()
		c.StartNewCounter()
		c.Complete()

		out := buf.String()
		assert.Contains(t, out, "no active counter, ignoring action")
		assert.Contains(t, out, "counter started")
		assert.Contains(t, out, "phase=completed")
	})
}

type panickyDisplay struct {
	*countertest.Recorder
}

func (d *panickyDisplay) SetEvenCount(string) {
	panic("even slot unavailable")
}
