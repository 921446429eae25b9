package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/rgehrsitz/readyvault/internal/output"
)

func (a *app) historyCmd() *cobra.Command {
	var (
		user     string
		method   string
		limit    int
		clearAll bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored analyses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var m domain.Method
			if method != "" {
				parsed, err := domain.ParseMethod(method)
				if err != nil {
					return err
				}
				m = parsed
			}

			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			if clearAll {
				if err := st.DeleteUser(cmd.Context(), user); err != nil {
					return fmt.Errorf("failed to clear history: %w", err)
				}
				fmt.Fprintf(out, "History cleared for %s\n", user)
				return nil
			}

			analyses, err := st.ListAnalyses(cmd.Context(), user, m)
			if err != nil {
				return fmt.Errorf("failed to list analyses: %w", err)
			}
			if len(analyses) == 0 {
				fmt.Fprintf(out, "No stored analyses for %s\n", user)
				return nil
			}
			if limit > 0 && len(analyses) > limit {
				analyses = analyses[:limit]
			}

			fmt.Fprintf(out, "%-20s %-13s %8s %14s %14s %14s\n", "Calculated", "Method", "Score", "Projected", "Required", "Gap")
			fmt.Fprintln(out, strings.Repeat("-", 88))
			for _, an := range analyses {
				fmt.Fprintf(out, "%-20s %-13s %8s %14s %14s %14s\n",
					an.CalculatedAt.Local().Format("2006-01-02 15:04"),
					an.Method,
					output.FormatPercentage(an.ReadinessScore),
					output.FormatCurrency(an.ProjectedMonthlyIncome),
					output.FormatCurrency(an.RequiredMonthlyIncome),
					output.FormatGap(an.Gap))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "local", "History user ID")
	cmd.Flags().StringVarP(&method, "method", "m", "", "Only show one method")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum rows to show (0 for all)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete the stored profile and history for the user")
	return cmd
}
