package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/shopspring/decimal"
)

// Report is a profile with the analyses run against it
type Report struct {
	Profile     *domain.FinancialProfile    `json:"profile"`
	Analyses    []domain.RetirementAnalysis `json:"analyses"`
	GeneratedAt time.Time                   `json:"generatedAt"`
	Assumptions []string                    `json:"assumptions,omitempty"`
}

// NewReport stamps the report with the current time
func NewReport(profile *domain.FinancialProfile, analyses ...domain.RetirementAnalysis) *Report {
	return &Report{
		Profile:     profile,
		Analyses:    analyses,
		GeneratedAt: time.Now(),
		Assumptions: DefaultAssumptions,
	}
}

// Formatter renders a report into bytes
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(*Report) ([]byte, error)
}

func (f FormatterFunc) Name() string                     { return f.ID }
func (f FormatterFunc) Format(r *Report) ([]byte, error) { return f.F(r) }

var formatters = map[string]Formatter{}

// aliases map alternate names onto registered formatters
var aliases = map[string]string{
	"text":  "console",
	"table": "console",
	"htm":   "html",
}

func register(f Formatter) { formatters[f.Name()] = f }

func init() {
	register(ConsoleFormatter{})
	register(JSONFormatter{})
	register(CSVFormatter{})
	register(HTMLFormatter{})
}

// GetFormatterByName returns nil for unknown names
func GetFormatterByName(name string) Formatter {
	if target, ok := aliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// AvailableFormatterNames returns the registered names in sorted order
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the accepted alias names in sorted order
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for n := range aliases {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Extension returns the file extension used for a formatter's output
func Extension(f Formatter) string {
	if f.Name() == "console" {
		return "txt"
	}
	return f.Name()
}

// WriteFormatted renders the report and writes it to dir as
// retirement_report_<timestamp>.<ext>, returning the file path
func WriteFormatted(f Formatter, report *Report, dir string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	name := fmt.Sprintf("retirement_report_%s.%s", report.GeneratedAt.Format("20060102_150405"), Extension(f))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Abs().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a score as a percentage with one decimal place
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(1) + "%"
}

// readinessLabel buckets a score for display
func readinessLabel(score decimal.Decimal) string {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(85)):
		return "Excellent"
	case score.GreaterThanOrEqual(decimal.NewFromInt(70)):
		return "Good"
	case score.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return "Fair"
	default:
		return "Needs Attention"
	}
}

// FormatGap renders a shortfall as -$X/mo and a surplus as +$X/mo
func FormatGap(gap decimal.Decimal) string {
	sign := "+"
	if gap.IsPositive() {
		sign = "-"
	}
	return sign + "$" + gap.Abs().StringFixed(0) + "/mo"
}
