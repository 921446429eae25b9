package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ValidationError collects every problem found in a profile
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid profile: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) addf(format string, args ...interface{}) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// InputParser handles parsing of profile files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile from a YAML or JSON file. Callers validate
// with ValidateProfile.
func (ip *InputParser) LoadFromFile(filename string) (*domain.FinancialProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	profile, err := ip.Parse(data, formatForFile(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return profile, nil
}

// Parse decodes a profile. format is "json" or "yaml".
func (ip *InputParser) Parse(data []byte, format string) (*domain.FinancialProfile, error) {
	var profile domain.FinancialProfile
	switch format {
	case "json":
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	return &profile, nil
}

// MaxAmount bounds every money field. Larger values are rejected before
// they reach the simulation.
var MaxAmount = decimal.New(1, 12)

// ValidateProfile checks ranges and signs of every input field. All
// problems are reported together.
func (ip *InputParser) ValidateProfile(profile *domain.FinancialProfile) error {
	verr := &ValidationError{}

	ip.validatePersonalInfo(&profile.PersonalInfo, verr)
	ip.validateExpenses(&profile.Expenses, verr)
	ip.validateAssets(&profile.Assets, verr)
	ip.validateIncome(&profile.IncomeSources, verr)

	if len(verr.Problems) > 0 {
		return verr
	}
	return nil
}

func (ip *InputParser) validatePersonalInfo(info *domain.PersonalInfo, verr *ValidationError) {
	if info.Age < 18 || info.Age > 100 {
		verr.addf("age must be between 18 and 100, got %d", info.Age)
	}
	if info.SpouseAge != nil && (*info.SpouseAge < 18 || *info.SpouseAge > 100) {
		verr.addf("spouse age must be between 18 and 100, got %d", *info.SpouseAge)
	}
	if info.TargetRetirementAge <= info.Age {
		verr.addf("target retirement age (%d) must be greater than current age (%d)", info.TargetRetirementAge, info.Age)
	}
	if info.RiskTolerance < 1 || info.RiskTolerance > 10 {
		verr.addf("risk tolerance must be between 1 and 10, got %d", info.RiskTolerance)
	}
}

func (ip *InputParser) validateExpenses(e *domain.MonthlyExpenses, verr *ValidationError) {
	checkAmounts(verr, map[string]decimal.Decimal{
		"expenses.essential.housing":           e.Essential.Housing,
		"expenses.essential.utilities":         e.Essential.Utilities,
		"expenses.essential.food":              e.Essential.Food,
		"expenses.essential.healthcare":        e.Essential.Healthcare,
		"expenses.essential.insurance":         e.Essential.Insurance,
		"expenses.essential.debt_payments":     e.Essential.DebtPayments,
		"expenses.discretionary.entertainment": e.Discretionary.Entertainment,
		"expenses.discretionary.travel":        e.Discretionary.Travel,
		"expenses.discretionary.dining":        e.Discretionary.Dining,
		"expenses.discretionary.hobbies":       e.Discretionary.Hobbies,
		"expenses.discretionary.other":         e.Discretionary.Other,
	})
}

func (ip *InputParser) validateAssets(a *domain.Assets, verr *ValidationError) {
	checkAmounts(verr, map[string]decimal.Decimal{
		"assets.retirement_401k": a.Retirement401k,
		"assets.ira_traditional": a.IRATraditional,
		"assets.ira_roth":        a.IRARoth,
		"assets.brokerage":       a.Brokerage,
		"assets.savings":         a.Savings,
		"assets.real_estate":     a.RealEstate,
		"assets.other":           a.Other,
	})
}

func (ip *InputParser) validateIncome(inc *domain.IncomeSources, verr *ValidationError) {
	fields := map[string]decimal.Decimal{
		"income_sources.current_salary":                       inc.CurrentSalary,
		"income_sources.social_security_self.monthly_benefit": inc.SocialSecuritySelf.MonthlyBenefit,
	}
	optional := map[string]*decimal.Decimal{
		"income_sources.spouse_salary": inc.SpouseSalary,
		"income_sources.pension":       inc.Pension,
		"income_sources.rental_income": inc.RentalIncome,
		"income_sources.other_income":  inc.OtherIncome,
	}
	for name, v := range optional {
		if v != nil {
			fields[name] = *v
		}
	}

	validateClaimAge(verr, "social_security_self", inc.SocialSecuritySelf.ClaimAge)
	if inc.SocialSecuritySpouse != nil {
		validateClaimAge(verr, "social_security_spouse", inc.SocialSecuritySpouse.ClaimAge)
		fields["income_sources.social_security_spouse.monthly_benefit"] = inc.SocialSecuritySpouse.MonthlyBenefit
	}
	checkAmounts(verr, fields)
}

func validateClaimAge(verr *ValidationError, field string, age int) {
	if age < 62 || age > 70 {
		verr.addf("%s claim age must be between 62 and 70, got %d", field, age)
	}
}

// checkAmounts reports negative or oversized fields in a stable order
func checkAmounts(verr *ValidationError, fields map[string]decimal.Decimal) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		switch v := fields[name]; {
		case v.IsNegative():
			verr.addf("%s cannot be negative", name)
		case v.GreaterThan(MaxAmount):
			verr.addf("%s cannot exceed %s", name, MaxAmount.String())
		}
	}
}

// SaveProfile writes a profile as YAML or JSON depending on the extension
func (ip *InputParser) SaveProfile(profile *domain.FinancialProfile, filename string) error {
	var (
		data []byte
		err  error
	)
	if formatForFile(filename) == "json" {
		data, err = json.MarshalIndent(profile, "", "  ")
	} else {
		data, err = yaml.Marshal(profile)
	}
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleProfile returns a complete, valid profile for a couple in
// their mid-forties
func (ip *InputParser) CreateExampleProfile() *domain.FinancialProfile {
	spouseAge := 43
	spouseSalary := decimal.NewFromInt(65000)
	pension := decimal.NewFromInt(800)
	rental := decimal.NewFromInt(600)

	return &domain.FinancialProfile{
		PersonalInfo: domain.PersonalInfo{
			Name:                "Alex Example",
			Age:                 45,
			SpouseAge:           &spouseAge,
			TargetRetirementAge: 65,
			RiskTolerance:       6,
		},
		Expenses: domain.MonthlyExpenses{
			Essential: domain.EssentialExpenses{
				Housing:      decimal.NewFromInt(2200),
				Utilities:    decimal.NewFromInt(350),
				Food:         decimal.NewFromInt(900),
				Healthcare:   decimal.NewFromInt(500),
				Insurance:    decimal.NewFromInt(300),
				DebtPayments: decimal.NewFromInt(400),
			},
			Discretionary: domain.DiscretionaryExpenses{
				Entertainment: decimal.NewFromInt(250),
				Travel:        decimal.NewFromInt(500),
				Dining:        decimal.NewFromInt(350),
				Hobbies:       decimal.NewFromInt(150),
				Other:         decimal.NewFromInt(200),
			},
		},
		Assets: domain.Assets{
			Retirement401k: decimal.NewFromInt(420000),
			IRATraditional: decimal.NewFromInt(85000),
			IRARoth:        decimal.NewFromInt(60000),
			Brokerage:      decimal.NewFromInt(75000),
			Savings:        decimal.NewFromInt(40000),
			RealEstate:     decimal.NewFromInt(150000),
			Other:          decimal.Zero,
		},
		IncomeSources: domain.IncomeSources{
			CurrentSalary: decimal.NewFromInt(110000),
			SpouseSalary:  &spouseSalary,
			SocialSecuritySelf: domain.SocialSecurityClaim{
				ClaimAge:       67,
				MonthlyBenefit: decimal.NewFromInt(2600),
			},
			SocialSecuritySpouse: &domain.SocialSecurityClaim{
				ClaimAge:       67,
				MonthlyBenefit: decimal.NewFromInt(1800),
			},
			Pension:      &pension,
			RentalIncome: &rental,
		},
	}
}

func formatForFile(filename string) string {
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		return "json"
	}
	return "yaml"
}
