package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ProfileLoadedMsg:
		m.profile = msg.Profile
		m.loadingMessage = "Calculating readiness..."
		return m, analyzeCmd(m.engine, m.profile)

	case AnalysisCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		for i := range msg.Analyses {
			a := msg.Analyses[i]
			m.analyses[a.Method] = &a
		}
		m.runs++
		return m, nil

	case SimulationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.analyses[msg.Analysis.Method] = msg.Analysis
		m.runs++
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if m.err != nil {
		// any other key dismisses the error
		m.err = nil
		return m, nil
	}

	switch msg.String() {
	case "tab", "right", "l":
		m.activeTab = (m.activeTab + 1) % Tab(len(tabMethods))
	case "shift+tab", "left", "h":
		m.activeTab = (m.activeTab + Tab(len(tabMethods)) - 1) % Tab(len(tabMethods))
	case "1":
		m.activeTab = TabBasic
	case "2":
		m.activeTab = TabIntermediate
	case "3":
		m.activeTab = TabAdvanced
	case "r":
		if m.profile == nil || m.loading {
			return m, nil
		}
		m.activeTab = TabAdvanced
		m.loading = true
		m.loadingMessage = "Running Monte Carlo simulation..."
		return m, tea.Batch(m.spinner.Tick, simulateCmd(m.engine, m.profile))
	}

	return m, nil
}
