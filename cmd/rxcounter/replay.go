package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnatoleLucet/rxcounter/counter"
)

func newReplayCommand(opts *globalOptions) *cobra.Command {
	var scriptFile string
	var trace bool

	cmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "Run a script of actions and print the resulting display",
		Long: `Runs a comma or newline separated script of actions against a new
controller and prints the three display slots once the script is done.

Actions: start, inc, error[:message], complete.`,
		Example: `  rxcounter replay "start,inc,inc,inc"
  rxcounter replay --trace "start,inc,error:boom,inc"
  rxcounter replay --file session.txt --locale zh-TW`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := readScript(cmd.InOrStdin(), args, scriptFile)
			if err != nil {
				return err
			}

			actions, err := counter.ParseScript(script)
			if err != nil {
				return err
			}

			labels, err := opts.labels()
			if err != nil {
				return err
			}

			logger, closeLog, err := opts.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			return runReplay(cmd.OutOrStdout(), actions, labels, logger, trace)
		},
	}

	cmd.Flags().StringVarP(&scriptFile, "file", "f", "", "read the script from a file (- for stdin)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every display write as it happens")

	return cmd
}

func readScript(stdin io.Reader, args []string, scriptFile string) (string, error) {
	switch {
	case len(args) == 1 && scriptFile != "":
		return "", fmt.Errorf("pass the script as an argument or with --file, not both")
	case len(args) == 1:
		return args[0], nil
	case scriptFile == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading script: %w", err)
		}
		return string(data), nil
	case scriptFile != "":
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return "", fmt.Errorf("reading script: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("no script given")
	}
}

// traceDisplay keeps the last text of each slot and optionally prints every write.
type traceDisplay struct {
	counter.DisplayState

	out   io.Writer
	trace bool
}

func (d *traceDisplay) SetStatus(text string) { d.write(counter.SlotStatus, text) }
func (d *traceDisplay) SetCurrentCount(text string) { d.write(counter.SlotCurrentCount, text) }
func (d *traceDisplay) SetEvenCount(text string) { d.write(counter.SlotEvenCount, text) }

func (d *traceDisplay) write(slot counter.Slot, text string) {
	d.Set(slot, text)
	if d.trace {
		fmt.Fprintf(d.out, "  %s = %q\n", slot, text)
	}
}

func runReplay(out io.Writer, actions []counter.Action, labels counter.Labels, logger *slog.Logger, trace bool) error {
	display := &traceDisplay{out: out, trace: trace}
	controller := counter.New(display, counter.WithLabels(labels), counter.WithLogger(logger))

	for i, action := range actions {
		if trace {
			fmt.Fprintf(out, "%d: %s\n", i+1, action)
		}
		controller.Dispatch(action)
	}

	if trace {
		fmt.Fprintln(out)
	}

	state := controller.State()
	fmt.Fprintf(out, "status:       %s\n", display.Status)
	fmt.Fprintf(out, "currentCount: %s\n", display.CurrentCount)
	fmt.Fprintf(out, "evenCount:    %s\n", display.EvenCount)
	fmt.Fprintf(out, "phase:        %s\n", state.Phase)

	return nil
}
