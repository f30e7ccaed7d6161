package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/stigoleg/time-picker/internal/config"
	"github.com/stigoleg/time-picker/internal/logger"
	"github.com/stigoleg/time-picker/internal/ui"
)

// errNoSelection ends the command with a non-zero status and no message.
var errNoSelection = errors.New("no time selected")

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var configPath string

	cmd := &cobra.Command{
		Use:   "timepicker",
		Short: "Pick a 12-hour time in the terminal and print it",
		Long: "timepicker opens an hour/minute/AM-PM dropdown. The confirmed time is\n" +
			"printed to stdout in --format; the interface itself is drawn on stderr.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := config.Resolve(cmd.Flags(), cfg, configPath)
			if err != nil {
				return err
			}
			return runPicker(cmd, resolved)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file with picker settings")
	config.BindFlags(cmd.Flags(), &cfg)

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runPicker(cmd *cobra.Command, cfg config.Config) error {
	log, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	model := ui.InitialModel(cfg.Options(), log)
	model.SetVersion(version)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithoutSignalHandler(),
		tea.WithOutput(cmd.ErrOrStderr()),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case sig := <-sigChan:
			log.WithFields(map[string]any{"signal": sig.String()}).Info("received signal")
			p.Kill()
		case <-done:
		}
	}()

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error(err, "program failed")
		return fmt.Errorf("run picker: %w", err)
	}

	return writeResult(cmd.OutOrStdout(), final, cfg.Format)
}

// writeResult prints the confirmed time of final in layout. Anything else
// ends with errNoSelection.
func writeResult(w io.Writer, final tea.Model, layout string) error {
	m, ok := final.(ui.Model)
	if !ok || !m.Confirmed() {
		return errNoSelection
	}

	_, err := fmt.Fprintln(w, m.Result.Format(layout))
	return err
}

func openLogger(cfg config.Config) (*logger.Logger, func(), error) {
	opts := logger.Options{Level: cfg.LogLevel, HumanReadable: true}
	if cfg.LogFile == "" {
		opts.Writer = io.Discard
		log, err := logger.New(opts)
		return log, func() {}, err
	}

	log, f, err := logger.OpenFile(cfg.LogFile, opts)
	if err != nil {
		return nil, nil, err
	}
	return log, func() { _ = f.Close() }, nil
}
