package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing methods
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("RETIREMENT READINESS COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	if compSet.BaseResult != nil {
		sb.WriteString(fmt.Sprintf("Base Method: %s\n", compSet.BaseResult.Title))
	}
	if compSet.ProfilePath != "" {
		sb.WriteString(fmt.Sprintf("Profile: %s\n", compSet.ProfilePath))
	}
	sb.WriteString("\n")

	nameWidth := 26
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Method",
		numWidth, "Score",
		numWidth, "Projected",
		numWidth, "Required",
		numWidth, "Gap"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.Title))
			sb.WriteString(fmt.Sprintf("  Readiness Score:  %s%s points\n",
				tf.deltaSymbol(alt.ScoreDiffFromBase), alt.ScoreDiffFromBase.StringFixed(1)))
			sb.WriteString(fmt.Sprintf("  Projected Income: %s$%s/mo\n",
				tf.deltaSymbol(alt.ProjectedDiffFromBase), alt.ProjectedDiffFromBase.StringFixed(0)))
		}
		sb.WriteString(fmt.Sprintf("\nScore spread: %s points (highest %s, lowest %s)\n",
			compSet.ScoreSpread.StringFixed(1), compSet.HighestMethod, compSet.LowestMethod))
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single method row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.Title
	if isBase {
		name += " *"
	}

	gap := "$" + tf.formatDecimal(result.Gap.Abs())
	if result.Gap.IsPositive() {
		gap = "-" + gap
	} else {
		gap = "+" + gap
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, result.ReadinessScore.StringFixed(1)+"%",
		numWidth, "$"+tf.formatDecimal(result.ProjectedMonthlyIncome),
		numWidth, "$"+tf.formatDecimal(result.RequiredMonthlyIncome),
		numWidth, gap)
}

// formatDecimal abbreviates large amounts
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		return d.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(100000)) {
		return d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol prefixes positive deltas with +; negatives already carry -
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a single-line summary of every method's score
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	parts := []string{}
	for _, r := range compSet.All() {
		parts = append(parts, fmt.Sprintf("%s: %s%%", r.Method, r.ReadinessScore.StringFixed(1)))
	}
	return strings.Join(parts, " | ")
}
