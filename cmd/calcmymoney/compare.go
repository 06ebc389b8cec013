package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkhegde/calcmymoney/internal/compare"
	"github.com/mkhegde/calcmymoney/internal/output"
)

func compareCmd(a *app) *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "compare [deals-file]",
		Short: "Compare mortgage or loan deals against a base deal",
		Long: `Compare loan deals listed in a YAML file against a base deal.

Examples:
  calcmymoney compare deals.yaml
  calcmymoney compare deals.yaml --base current --format csv
  calcmymoney compare deals.yaml --output comparison.html
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deals, err := compare.LoadDeals(args[0])
			if err != nil {
				return err
			}
			if base != "" {
				deals.Base = base
				if err := deals.Validate(); err != nil {
					return err
				}
			}

			engine := compare.NewCompareEngine(a.engine)
			set, err := engine.CompareFile(cmd.Context(), deals)
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}
			a.logger.Info("deals compared",
				zap.String("file", args[0]),
				zap.String("base", set.BaseDealName),
				zap.Int("alternatives", len(set.AlternativeResults)))

			if a.outputPath != "" {
				return a.emit(cmd, output.ComparisonReport(set))
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(a.format) {
			case "csv":
				formatter := &compare.CSVFormatter{}
				text, err := formatter.Format(set)
				if err != nil {
					return fmt.Errorf("failed to format CSV: %w", err)
				}
				fmt.Fprint(out, text)
			case "json":
				formatter := &compare.JSONFormatter{Pretty: true}
				text, err := formatter.Format(set)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprint(out, text)
			case "table", "console", "":
				formatter := &compare.TableFormatter{}
				fmt.Fprint(out, formatter.Format(set))
			case "compact":
				formatter := &compare.TableFormatter{}
				fmt.Fprint(out, formatter.FormatCompact(set))
			default:
				return a.emit(cmd, output.ComparisonReport(set))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "Base deal name (defaults to the file's base, then its first deal)")
	return cmd
}
