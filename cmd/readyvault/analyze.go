package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/rgehrsitz/readyvault/internal/output"
)

func (a *app) analyzeCmd() *cobra.Command {
	var (
		method     string
		format     string
		seed       int64
		iterations int
		save       bool
		user       string
	)

	cmd := &cobra.Command{
		Use:   "analyze [profile-file]",
		Short: "Calculate retirement readiness for a profile",
		Long: `Run one or more readiness methods against a YAML or JSON profile.

Examples:
  readyvault analyze profile.yaml
  readyvault analyze profile.yaml --method advanced --seed 42
  readyvault analyze profile.yaml --format json --save --user alex
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			methods, err := parseMethods(method)
			if err != nil {
				return err
			}
			f := output.GetFormatterByName(strings.ToLower(format))
			if f == nil {
				return fmt.Errorf("unknown output format %q (valid: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			profile, err := loadProfile(args[0])
			if err != nil {
				return err
			}

			engine := a.newEngine()
			engine.MonteCarlo.Seed = seed
			if iterations > 0 {
				engine.MonteCarlo.Iterations = iterations
			}

			analyses := make([]domain.RetirementAnalysis, 0, len(methods))
			for _, m := range methods {
				an, err := engine.Analyze(profile, m)
				if err != nil {
					return err
				}
				analyses = append(analyses, *an)
			}

			if save {
				if err := a.saveResults(cmd, user, profile, analyses); err != nil {
					return err
				}
			}

			data, err := f.Format(output.NewReport(profile, analyses...))
			if err != nil {
				return fmt.Errorf("failed to format report: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "all", "Methods to run: basic, intermediate, advanced, all or a comma-separated list")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console, json, csv, html)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Monte Carlo seed (0 picks a time-based seed)")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "Monte Carlo trials (default 1000)")
	cmd.Flags().BoolVar(&save, "save", false, "Store the profile and results in the local history")
	cmd.Flags().StringVar(&user, "user", "local", "History user ID for --save")
	return cmd
}

// saveResults stores the profile and appends the analyses to the history
func (a *app) saveResults(cmd *cobra.Command, user string, profile *domain.FinancialProfile, analyses []domain.RetirementAnalysis) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	if err := st.SaveProfile(ctx, user, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	for i := range analyses {
		if _, err := st.SaveAnalysis(ctx, user, &analyses[i]); err != nil {
			return fmt.Errorf("failed to save %s analysis: %w", analyses[i].Method, err)
		}
	}
	a.log.Info().Str("user", user).Int("analyses", len(analyses)).Msg("Saved analysis history")
	return nil
}

func (a *app) simulateCmd() *cobra.Command {
	var (
		seed       int64
		iterations int
		years      int
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "simulate [profile-file]",
		Short: "Run the Monte Carlo portfolio survival simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := loadProfile(args[0])
			if err != nil {
				return err
			}

			engine := a.newEngine()
			engine.MonteCarlo.Seed = seed
			if iterations > 0 {
				engine.MonteCarlo.Iterations = iterations
			}
			if years > 0 {
				engine.MonteCarlo.Years = years
			}
			if workers > 0 {
				engine.MonteCarlo.Workers = workers
			}

			an, err := engine.Analyze(profile, domain.MethodAdvanced)
			if err != nil {
				return err
			}
			writeSimulation(cmd, an)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 picks a time-based seed)")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "Number of trials (default 1000)")
	cmd.Flags().IntVarP(&years, "years", "y", 0, "Years in retirement (default 30)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel workers (default GOMAXPROCS)")
	return cmd
}

func writeSimulation(cmd *cobra.Command, an *domain.RetirementAnalysis) {
	out := cmd.OutOrStdout()
	s := an.Simulation

	fmt.Fprintln(out, "MONTE CARLO SIMULATION")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintf(out, "Trials:                %d (seed %d)\n", s.Iterations, s.Seed)
	fmt.Fprintf(out, "Horizon:               %d years\n", s.Years)
	fmt.Fprintf(out, "Success Rate:          %s (%d survived)\n", output.FormatPercentage(an.ReadinessScore), s.SuccessfulTrials)
	fmt.Fprintf(out, "Required Income:       %s/mo\n", output.FormatCurrency(an.RequiredMonthlyIncome))
	fmt.Fprintf(out, "Projected Income:      %s/mo\n", output.FormatCurrency(an.ProjectedMonthlyIncome))
	fmt.Fprintf(out, "Mean Return:           %s%% (sd %s%%)\n",
		s.MeanReturnRate.Shift(2).StringFixed(2), s.ReturnRateStdDev.Shift(2).StringFixed(2))
	fmt.Fprintf(out, "Mean Inflation:        %s%% (sd %s%%)\n",
		s.MeanInflationRate.Shift(2).StringFixed(2), s.InflationRateStdDev.Shift(2).StringFixed(2))

	if s.SuccessfulTrials > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Ending balance of surviving trials:")
		p := s.EndingBalances
		for _, row := range []struct {
			label string
			value string
		}{
			{"P10", output.FormatCurrency(p.P10)},
			{"P25", output.FormatCurrency(p.P25)},
			{"P50", output.FormatCurrency(p.P50)},
			{"P75", output.FormatCurrency(p.P75)},
			{"P90", output.FormatCurrency(p.P90)},
		} {
			fmt.Fprintf(out, "  %s  %s\n", row.label, row.value)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recommendations:")
	for i, rec := range an.Recommendations {
		fmt.Fprintf(out, "  %d. %s\n", i+1, rec)
	}
}
