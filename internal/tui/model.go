// Package tui implements the readiness dashboard.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/readyvault/internal/calculation"
	"github.com/rgehrsitz/readyvault/internal/config"
	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/rgehrsitz/readyvault/internal/tui/tuistyles"
)

// Model represents the entire application state
type Model struct {
	activeTab Tab

	// Terminal dimensions
	width  int
	height int

	profilePath string
	profile     *domain.FinancialProfile

	engine   *calculation.Engine
	analyses map[domain.Method]*domain.RetirementAnalysis
	runs     int // completed Monte Carlo runs

	spinner        spinner.Model
	loading        bool
	loadingMessage string

	err error
}

// NewModel creates a dashboard for the profile at profilePath
func NewModel(profilePath string) Model {
	return NewModelWithEngine(profilePath, calculation.NewEngine())
}

// NewModelWithEngine creates a dashboard using a caller-configured engine
func NewModelWithEngine(profilePath string, engine *calculation.Engine) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = s.Style.Foreground(tuistyles.ColorPrimary)

	return Model{
		activeTab:      TabBasic,
		profilePath:    profilePath,
		engine:         engine,
		analyses:       make(map[domain.Method]*domain.RetirementAnalysis),
		spinner:        s,
		loading:        true,
		loadingMessage: "Loading profile...",
		width:          80,
		height:         24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadProfileCmd(m.profilePath))
}

// loadProfileCmd returns a command that loads and validates the profile file
func loadProfileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		profile, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		if err := parser.ValidateProfile(profile); err != nil {
			return ErrorMsg{Err: err}
		}
		return ProfileLoadedMsg{Profile: profile}
	}
}

// analyzeCmd runs every method
func analyzeCmd(engine *calculation.Engine, profile *domain.FinancialProfile) tea.Cmd {
	return func() tea.Msg {
		analyses, err := engine.AnalyzeAll(profile)
		return AnalysisCompleteMsg{Analyses: analyses, Err: err}
	}
}

// simulateCmd re-runs only the Monte Carlo method
func simulateCmd(engine *calculation.Engine, profile *domain.FinancialProfile) tea.Cmd {
	return func() tea.Msg {
		a, err := engine.Analyze(profile, domain.MethodAdvanced)
		return SimulationCompleteMsg{Analysis: a, Err: err}
	}
}

// String returns the tab label
func (t Tab) String() string {
	switch t {
	case TabBasic:
		return "Basic"
	case TabIntermediate:
		return "Intermediate"
	case TabAdvanced:
		return "Advanced"
	default:
		return "Unknown"
	}
}
