package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Method",
		"Type",
		"Readiness Score",
		"Projected Monthly Income",
		"Required Monthly Income",
		"Gap",
		"Score Diff from Base",
		"Projected Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, kind string) []string {
	return []string{
		string(result.Method),
		kind,
		result.ReadinessScore.StringFixed(2),
		result.ProjectedMonthlyIncome.StringFixed(2),
		result.RequiredMonthlyIncome.StringFixed(2),
		result.Gap.StringFixed(2),
		result.ScoreDiffFromBase.StringFixed(2),
		result.ProjectedDiffFromBase.StringFixed(2),
	}
}
