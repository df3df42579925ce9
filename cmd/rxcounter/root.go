package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/AnatoleLucet/rxcounter/counter"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	locale     string
	configPath string
	logLevel   string
	logFile    string
}

func (o *globalOptions) addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&o.locale, "locale", "", fmt.Sprintf("label locale, one of %s (default from config, else %s)", strings.Join(counter.Locales(), ", "), counter.DefaultLocale))
	flagSet.StringVar(&o.configPath, "config", "", "path to a YAML config file")
	flagSet.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flagSet.StringVar(&o.logFile, "log-file", "", "append JSON log records to this file")
}

// labels loads the config file, if any, and resolves the labels for the selected locale.
func (o *globalOptions) labels() (counter.Labels, error) {
	var cfg counter.Config
	if o.configPath != "" {
		var err error
		cfg, err = counter.LoadConfig(o.configPath)
		if err != nil {
			return counter.Labels{}, err
		}
	}

	return cfg.Resolve(o.locale)
}

// logger builds the logger described by the flags. Records go to the log
// file when one is set, else to fallback; a nil fallback discards them.
// The returned function closes the log file.
func (o *globalOptions) logger(fallback io.Writer) (*slog.Logger, func() error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}
	handlerOptions := &slog.HandlerOptions{Level: level}

	if o.logFile != "" {
		file, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		return slog.New(slog.NewJSONHandler(file, handlerOptions)), file.Close, nil
	}

	if fallback == nil {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	return slog.New(slog.NewTextHandler(fallback, handlerOptions)), func() error { return nil }, nil
}

func newRootCommand() *cobra.Command {
	var opts globalOptions

	tui := newTUICommand(&opts)

	root := &cobra.Command{
		Use:          "rxcounter",
		Short:        "Counter stream demo with raw and even views",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         tui.RunE,
	}

	opts.addFlags(root.PersistentFlags())

	root.AddCommand(tui, newReplayCommand(&opts))
	return root
}
