package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/readyvault/internal/calculation"
	"github.com/rgehrsitz/readyvault/internal/config"
	"github.com/rgehrsitz/readyvault/internal/domain"
)

func writeProfile(t *testing.T) string {
	t.Helper()
	parser := config.NewInputParser()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, parser.SaveProfile(parser.CreateExampleProfile(), path))
	return path
}

func seededEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	engine.MonteCarlo.Seed = 3
	engine.MonteCarlo.Iterations = 100
	return engine
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// loaded drives the model through profile loading and the first analysis
func loaded(t *testing.T) Model {
	t.Helper()
	m := NewModelWithEngine(writeProfile(t), seededEngine())

	msg := loadProfileCmd(m.profilePath)()
	require.IsType(t, ProfileLoadedMsg{}, msg)

	m, cmd := update(t, m, msg)
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	m, _ = update(t, m, cmd())
	require.False(t, m.loading)
	require.NoError(t, m.err)
	return m
}

func TestModel_LoadsAndAnalyzes(t *testing.T) {
	m := loaded(t)

	for _, method := range domain.AllMethods() {
		a, ok := m.Analysis(method)
		require.True(t, ok, method)
		assert.Equal(t, method, a.Method)
	}
	assert.Equal(t, 1, m.runs)

	view := m.View()
	assert.Contains(t, view, "ReadyVault - Retirement Readiness")
	assert.Contains(t, view, "Alex Example")
	assert.Contains(t, view, "Basic (70-80% Rule)")
	assert.Contains(t, view, "Readiness Score")
	assert.Contains(t, view, "Required / month")
}

func TestModel_TabNavigation(t *testing.T) {
	m := loaded(t)
	assert.Equal(t, TabBasic, m.activeTab)

	m, _ = update(t, m, key("tab"))
	assert.Equal(t, TabIntermediate, m.activeTab)
	assert.Contains(t, m.View(), "Intermediate (4% Rule)")

	m, _ = update(t, m, key("3"))
	assert.Equal(t, TabAdvanced, m.activeTab)
	assert.Contains(t, m.View(), "trials survived 30 years (seed 3)")

	m, _ = update(t, m, key("tab"))
	assert.Equal(t, TabBasic, m.activeTab, "wraps forward")

	m, _ = update(t, m, key("left"))
	assert.Equal(t, TabAdvanced, m.activeTab, "wraps backward")
}

func TestModel_RerunSimulation(t *testing.T) {
	m := loaded(t)
	before, _ := m.Analysis(domain.MethodAdvanced)

	m, cmd := update(t, m, key("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Equal(t, TabAdvanced, m.activeTab)
	assert.Contains(t, m.View(), "Running Monte Carlo simulation...")

	// r is ignored while a run is in flight
	_, again := update(t, m, key("r"))
	assert.Nil(t, again)

	msg := simulateCmd(m.engine, m.profile)()
	m, _ = update(t, m, msg)
	assert.False(t, m.loading)
	assert.Equal(t, 2, m.runs)

	after, _ := m.Analysis(domain.MethodAdvanced)
	assert.True(t, after.ReadinessScore.Equal(before.ReadinessScore), "fixed seed reproduces the run")
}

func TestModel_Errors(t *testing.T) {
	m := NewModelWithEngine(filepath.Join(t.TempDir(), "missing.yaml"), seededEngine())

	msg := loadProfileCmd(m.profilePath)()
	require.IsType(t, ErrorMsg{}, msg)

	m, _ = update(t, m, msg)
	assert.False(t, m.loading)
	assert.Contains(t, m.View(), "Error:")

	m, _ = update(t, m, key("x"))
	assert.NoError(t, m.err)

	m, _ = update(t, m, AnalysisCompleteMsg{Err: errors.New("boom")})
	assert.Contains(t, m.View(), "boom")

	// r without a profile does nothing
	m.err = nil
	_, cmd := update(t, m, key("r"))
	assert.Nil(t, cmd)
}

func TestModel_Quit(t *testing.T) {
	m := NewModel("unused.yaml")
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTab_Method(t *testing.T) {
	assert.Equal(t, domain.MethodBasic, TabBasic.Method())
	assert.Equal(t, domain.MethodAdvanced, TabAdvanced.Method())
	assert.Equal(t, "Intermediate", TabIntermediate.String())
}
