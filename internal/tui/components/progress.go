package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/readyvault/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// ReadinessBar draws a 0-100 readiness score as a filled gauge
type ReadinessBar struct {
	Score decimal.Decimal
	Width int
	Label string
}

// NewReadinessBar creates a new gauge for score
func NewReadinessBar(score decimal.Decimal) *ReadinessBar {
	return &ReadinessBar{
		Score: score,
		Width: 40,
	}
}

// WithLabel sets the gauge label
func (p *ReadinessBar) WithLabel(label string) *ReadinessBar {
	p.Label = label
	return p
}

// WithWidth sets the bar width
func (p *ReadinessBar) WithWidth(width int) *ReadinessBar {
	p.Width = width
	return p
}

// Filled returns the number of filled cells, clamped to the bar width
func (p *ReadinessBar) Filled() int {
	pct := p.Score.InexactFloat64()
	if pct < 0 {
		pct = 0
	}
	filled := int(float64(p.Width) * pct / 100)
	if filled > p.Width {
		filled = p.Width
	}
	return filled
}

// Render returns the styled gauge
func (p *ReadinessBar) Render() string {
	var content strings.Builder

	if p.Label != "" {
		labelStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorForeground).
			Bold(true)
		content.WriteString(labelStyle.Render(p.Label))
		content.WriteString("\n")
	}

	filled := p.Filled()
	empty := p.Width - filled
	color := tuistyles.ScoreColor(p.Score)

	barStyle := lipgloss.NewStyle().Foreground(color)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	content.WriteString("[")
	if filled > 0 {
		content.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	}
	if empty > 0 {
		content.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	}
	content.WriteString("] ")

	percentStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	content.WriteString(percentStyle.Render(fmt.Sprintf("%s%%", p.Score.StringFixed(1))))

	return content.String()
}
