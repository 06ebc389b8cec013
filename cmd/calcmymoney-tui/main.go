package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mkhegde/calcmymoney/internal/calculation"
	"github.com/mkhegde/calcmymoney/internal/logging"
	"github.com/mkhegde/calcmymoney/internal/tui"
)

func newRootCmd() *cobra.Command {
	var rulesPath, logFile string
	cmd := &cobra.Command{
		Use:          "calcmymoney-tui",
		Short:        "Interactive UK personal finance calculators",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rulesPath != "" {
				if _, err := os.Stat(rulesPath); os.IsNotExist(err) {
					return fmt.Errorf("rules file not found: %s", rulesPath)
				}
			}

			engine := calculation.NewCalculationEngine()

			// The terminal belongs to the UI, so logs only go to a file when asked.
			if logFile != "" {
				logger, err := logging.New(logging.Config{Level: "debug", Format: "json", Output: logFile})
				if err != nil {
					return err
				}
				defer logging.Sync(logger)
				engine.SetLogger(logging.EngineLogger(logger, "tui"))
			}

			p := tea.NewProgram(
				tui.NewModel(rulesPath, engine),
				tea.WithAltScreen(),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "Rule set file (.yaml or .hcl); defaults to the built-in UK rules")
	cmd.Flags().StringVar(&logFile, "log", "", "Write debug logs to this file")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
