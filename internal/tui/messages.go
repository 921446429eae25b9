package tui

import (
	"github.com/rgehrsitz/readyvault/internal/domain"
)

// Tab identifies one of the dashboard's method tabs
type Tab int

const (
	TabBasic Tab = iota
	TabIntermediate
	TabAdvanced
)

var tabMethods = []domain.Method{domain.MethodBasic, domain.MethodIntermediate, domain.MethodAdvanced}

// Method returns the readiness method shown on the tab
func (t Tab) Method() domain.Method {
	return tabMethods[t]
}

// Message types for the Bubble Tea update cycle

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ProfileLoadedMsg signals the profile file has been read and validated
type ProfileLoadedMsg struct {
	Profile *domain.FinancialProfile
}

// AnalysisCompleteMsg carries the results of every method
type AnalysisCompleteMsg struct {
	Analyses []domain.RetirementAnalysis
	Err      error
}

// SimulationCompleteMsg carries a fresh Monte Carlo run
type SimulationCompleteMsg struct {
	Analysis *domain.RetirementAnalysis
	Err      error
}
