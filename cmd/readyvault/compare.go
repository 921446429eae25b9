package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/readyvault/internal/compare"
	"github.com/rgehrsitz/readyvault/internal/domain"
)

func (a *app) compareCmd() *cobra.Command {
	var (
		base    string
		methods string
		format  string
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "compare [profile-file]",
		Short: "Compare readiness methods side by side",
		Long: `Run several readiness methods concurrently and compare them against a base method.

Examples:
  readyvault compare profile.yaml
  readyvault compare profile.yaml --base intermediate --format csv
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseMethod, err := domain.ParseMethod(base)
			if err != nil {
				return err
			}
			selected, err := parseMethods(methods)
			if err != nil {
				return err
			}
			profile, err := loadProfile(args[0])
			if err != nil {
				return err
			}

			engine := a.newEngine()
			engine.MonteCarlo.Seed = seed

			compSet, err := compare.NewCompareEngine(engine).Compare(cmd.Context(), profile, compare.CompareOptions{
				BaseMethod: baseMethod,
				Methods:    selected,
			})
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}
			compSet.ProfilePath = args[0]

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "csv":
				s, err := (&compare.CSVFormatter{}).Format(compSet)
				if err != nil {
					return fmt.Errorf("failed to format CSV: %w", err)
				}
				fmt.Fprint(out, s)
			case "json":
				s, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprintln(out, s)
			case "compact":
				fmt.Fprintln(out, (&compare.TableFormatter{}).FormatCompact(compSet))
			case "table", "console", "":
				fmt.Fprint(out, (&compare.TableFormatter{}).Format(compSet))
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "basic", "Base method to compare against")
	cmd.Flags().StringVar(&methods, "methods", "all", "Comma-separated methods to include")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, compact, csv, json)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Monte Carlo seed (0 picks a time-based seed)")
	return cmd
}
