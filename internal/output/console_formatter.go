package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/readyvault/internal/domain"
)

// ConsoleFormatter renders a plain-text report for the terminal
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Profile

	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintln(&buf, "RETIREMENT READINESS REPORT")
	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintf(&buf, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04"))

	if p != nil {
		writeProfileSummary(&buf, p)
	}

	for i := range report.Analyses {
		writeAnalysis(&buf, &report.Analyses[i])
	}

	if len(report.Assumptions) > 0 {
		fmt.Fprintln(&buf, "KEY ASSUMPTIONS")
		fmt.Fprintln(&buf, strings.Repeat("-", 15))
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
	}
	return buf.Bytes(), nil
}

func writeProfileSummary(buf *bytes.Buffer, p *domain.FinancialProfile) {
	fmt.Fprintln(buf, "PROFILE")
	fmt.Fprintln(buf, strings.Repeat("-", 7))
	if p.PersonalInfo.Name != "" {
		fmt.Fprintf(buf, "Name:                   %s\n", p.PersonalInfo.Name)
	}
	fmt.Fprintf(buf, "Current Age:            %d\n", p.PersonalInfo.Age)
	if p.PersonalInfo.SpouseAge != nil {
		fmt.Fprintf(buf, "Spouse Age:             %d\n", *p.PersonalInfo.SpouseAge)
	}
	fmt.Fprintf(buf, "Target Retirement Age:  %d\n", p.PersonalInfo.TargetRetirementAge)
	fmt.Fprintf(buf, "Risk Tolerance:         %d/10\n", p.PersonalInfo.RiskTolerance)
	fmt.Fprintln(buf)

	essential := p.Expenses.Essential.Total()
	discretionary := p.Expenses.Discretionary.Total()
	fmt.Fprintf(buf, "Essential Expenses:     %s\n", FormatCurrency(essential))
	fmt.Fprintf(buf, "Discretionary Expenses: %s\n", FormatCurrency(discretionary))
	fmt.Fprintf(buf, "Total Monthly:          %s\n", FormatCurrency(essential.Add(discretionary)))
	fmt.Fprintf(buf, "Total Assets:           %s\n", FormatCurrency(p.Assets.Total()))
	fmt.Fprintf(buf, "Guaranteed Income:      %s/mo\n", FormatCurrency(p.IncomeSources.GuaranteedMonthly()))
	fmt.Fprintln(buf)
}

func writeAnalysis(buf *bytes.Buffer, a *domain.RetirementAnalysis) {
	title := strings.ToUpper(a.Method.Title())
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("-", len(title)))
	fmt.Fprintf(buf, "Readiness Score:          %s (%s)\n", FormatPercentage(a.ReadinessScore), readinessLabel(a.ReadinessScore))
	fmt.Fprintf(buf, "Projected Monthly Income: %s\n", FormatCurrency(a.ProjectedMonthlyIncome))
	fmt.Fprintf(buf, "Required Monthly Income:  %s\n", FormatCurrency(a.RequiredMonthlyIncome))
	fmt.Fprintf(buf, "Gap:                      %s\n", FormatGap(a.Gap))

	if s := a.Simulation; s != nil {
		fmt.Fprintf(buf, "Simulation:               %d of %d trials survived %d years (seed %d)\n",
			s.SuccessfulTrials, s.Iterations, s.Years, s.Seed)
		if s.SuccessfulTrials > 0 {
			fmt.Fprintf(buf, "Ending Balance P10/P50/P90: %s / %s / %s\n",
				FormatCurrency(s.EndingBalances.P10), FormatCurrency(s.EndingBalances.P50), FormatCurrency(s.EndingBalances.P90))
		}
	}

	fmt.Fprintln(buf, "Recommendations:")
	for i, rec := range a.Recommendations {
		fmt.Fprintf(buf, "  %d. %s\n", i+1, rec)
	}
	fmt.Fprintln(buf)
}
