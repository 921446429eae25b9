package main

import (
	"fmt"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/rgehrsitz/readyvault/internal/output"
)

// openInBrowser is replaced in tests
var openInBrowser = browser.OpenFile

func (a *app) exportCmd() *cobra.Command {
	var (
		method string
		format string
		dir    string
		open   bool
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "export [profile-file]",
		Short: "Write a readiness report to a file",
		Long: `Analyse a profile and write the report as retirement_report_<timestamp>.<ext>.

Examples:
  readyvault export profile.yaml --format html --open
  readyvault export profile.yaml --format csv --output-dir reports
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.GetFormatterByName(strings.ToLower(format))
			if f == nil {
				return fmt.Errorf("unknown output format %q (valid: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
			}
			methods, err := parseMethods(method)
			if err != nil {
				return err
			}
			profile, err := loadProfile(args[0])
			if err != nil {
				return err
			}

			engine := a.newEngine()
			engine.MonteCarlo.Seed = seed
			analyses := make([]domain.RetirementAnalysis, 0, len(methods))
			for _, m := range methods {
				an, err := engine.Analyze(profile, m)
				if err != nil {
					return err
				}
				analyses = append(analyses, *an)
			}

			path, err := output.WriteFormatted(f, output.NewReport(profile, analyses...), dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)

			if open {
				if f.Name() != "html" {
					a.log.Warn().Str("format", f.Name()).Msg("--open only applies to HTML reports")
					return nil
				}
				if err := openInBrowser(path); err != nil {
					return fmt.Errorf("failed to open browser: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "all", "Methods to include")
	cmd.Flags().StringVarP(&format, "format", "f", "html", "Output format (html, csv, json, console)")
	cmd.Flags().StringVarP(&dir, "output-dir", "o", ".", "Directory for the report file")
	cmd.Flags().BoolVar(&open, "open", false, "Open an HTML report in the default browser")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Monte Carlo seed (0 picks a time-based seed)")
	return cmd
}
