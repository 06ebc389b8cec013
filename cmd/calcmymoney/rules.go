package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkhegde/calcmymoney/internal/config"
	"github.com/mkhegde/calcmymoney/internal/output"
)

func rulesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and validate tax rule sets",
	}

	validate := &cobra.Command{
		Use:   "validate [rules-file]",
		Short: "Validate a rule set file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// setup has already loaded --rules; a positional file is checked on its own
			name := a.rulesName()
			if len(args) == 1 {
				if _, err := config.NewRuleSetParser().LoadFromFile(args[0]); err != nil {
					return err
				}
				name = args[0]
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rule set %s is valid\n", name)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the bands and allowances of the active rule set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(cmd, output.RulesReport(a.rulesName(), a.rules))
		},
	}

	dump := &cobra.Command{
		Use:   "default",
		Short: "Print the built-in rule set as YAML, ready to edit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(config.DefaultRulesYAML())
			return err
		},
	}

	cmd.AddCommand(validate, show, dump)
	return cmd
}
