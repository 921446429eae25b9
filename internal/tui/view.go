package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/rgehrsitz/readyvault/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch {
	case m.err != nil:
		content = m.renderError()
	case m.loading:
		content = m.renderLoading()
	default:
		content = m.renderAnalysis()
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, tabs and status bar
func (m Model) renderApp(content string) string {
	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		m.renderTabs(),
		content,
		m.renderStatusBar(),
	))
}

// renderTitleBar renders the application title and profile name
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("ReadyVault - Retirement Readiness")

	subtitle := m.profilePath
	if m.profile != nil && m.profile.PersonalInfo.Name != "" {
		subtitle = fmt.Sprintf("%s (%s)", m.profile.PersonalInfo.Name, m.profilePath)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(subtitle))
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(tabMethods))
	for i := range tabMethods {
		t := Tab(i)
		label := fmt.Sprintf("%d %s", i+1, t)
		if t == m.activeTab {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(label))
		}
	}
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("tab/←→", "switch method"),
		formatShortcut("1-3", "jump"),
		formatShortcut("r", "re-run simulation"),
		formatShortcut("q", "quit"),
	}
	return StatusBarStyle.Render(strings.Join(shortcuts, " • "))
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

func (m Model) renderLoading() string {
	return BorderStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), m.loadingMessage))
}

func (m Model) renderError() string {
	return ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err))
}

// renderAnalysis renders the active tab's result
func (m Model) renderAnalysis() string {
	method := m.activeTab.Method()
	a, ok := m.analyses[method]
	if !ok {
		return BorderStyle.Render("No analysis available")
	}

	var sb strings.Builder
	sb.WriteString(SubtitleStyle.Render(method.Title()))
	sb.WriteString("\n\n")
	sb.WriteString(components.NewReadinessBar(a.ReadinessScore).WithLabel("Readiness Score").Render())
	sb.WriteString("\n\n")

	gapTone := components.TonePositive
	gapLabel := "Surplus"
	if a.HasShortfall() {
		gapTone = components.ToneNegative
		gapLabel = "Shortfall"
	}
	cards := []*components.MetricCard{
		components.NewMetricCard("Required / month", FormatCurrency(a.RequiredMonthlyIncome)),
		components.NewMetricCard("Projected / month", FormatCurrency(a.ProjectedMonthlyIncome)),
		components.NewMetricCard(gapLabel+" / month", FormatCurrency(a.Gap.Abs())).WithTone(gapTone),
	}
	sb.WriteString(components.MetricGrid(cards, 3))
	sb.WriteString("\n")

	if s := a.Simulation; s != nil {
		sb.WriteString("\n")
		sb.WriteString(InfoStyle.Render(fmt.Sprintf("%d of %d trials survived %d years (seed %d)",
			s.SuccessfulTrials, s.Iterations, s.Years, s.Seed)))
		if s.SuccessfulTrials > 0 {
			sb.WriteString("\n")
			sb.WriteString(SubtitleStyle.Render(fmt.Sprintf("Ending balance P10 %s • P50 %s • P90 %s",
				FormatCurrency(s.EndingBalances.P10), FormatCurrency(s.EndingBalances.P50), FormatCurrency(s.EndingBalances.P90))))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nRecommendations\n")
	for _, rec := range a.Recommendations {
		sb.WriteString("  • " + rec + "\n")
	}

	return BorderStyle.Render(sb.String())
}

// Analysis returns the current result for method
func (m Model) Analysis(method domain.Method) (*domain.RetirementAnalysis, bool) {
	a, ok := m.analyses[method]
	return a, ok
}
