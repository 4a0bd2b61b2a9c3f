package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logFile    string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "loopscroll",
		Short: "An endlessly looping list for the terminal.",
		Long: `loopscroll shows a list whose items repeat in both directions. It can be
dragged with the mouse, flicked with the wheel, and always comes to rest with
an item at the configured fix place.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", defaultConfigPath, "settings file")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	cmd.AddCommand(newRunCommand(opts), newTraceCommand(opts))
	return cmd
}

// logger opens the log file and returns a logger writing to it. The
// terminal belongs to the list, so without a log file nothing is logged.
func (o *rootOptions) logger() (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	if o.logFile == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

// listSettings loads the settings file and applies the list flags of cmd.
func (o *rootOptions) listSettings(cmd *cobra.Command, flags *listFlags) (settings, error) {
	s, err := loadSettings(o.configPath)
	if err != nil {
		return settings{}, err
	}
	if err := flags.apply(cmd.Flags(), &s); err != nil {
		return settings{}, err
	}
	if err := s.validate(); err != nil {
		return settings{}, err
	}
	return s, nil
}
