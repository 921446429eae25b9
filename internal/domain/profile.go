package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PersonalInfo holds the household's demographic inputs
type PersonalInfo struct {
	Name                string `yaml:"name,omitempty" json:"name,omitempty"`
	Age                 int    `yaml:"age" json:"age"`
	SpouseAge           *int   `yaml:"spouse_age,omitempty" json:"spouseAge,omitempty"`
	TargetRetirementAge int    `yaml:"target_retirement_age" json:"targetRetirementAge"`
	RiskTolerance       int    `yaml:"risk_tolerance" json:"riskTolerance"` // 1-10, informational only
}

// EssentialExpenses are the non-negotiable monthly outflows
type EssentialExpenses struct {
	Housing      decimal.Decimal `yaml:"housing" json:"housing"`
	Utilities    decimal.Decimal `yaml:"utilities" json:"utilities"`
	Food         decimal.Decimal `yaml:"food" json:"food"`
	Healthcare   decimal.Decimal `yaml:"healthcare" json:"healthcare"`
	Insurance    decimal.Decimal `yaml:"insurance" json:"insurance"`
	DebtPayments decimal.Decimal `yaml:"debt_payments" json:"debtPayments"`
}

// DiscretionaryExpenses are lifestyle monthly outflows
type DiscretionaryExpenses struct {
	Entertainment decimal.Decimal `yaml:"entertainment" json:"entertainment"`
	Travel        decimal.Decimal `yaml:"travel" json:"travel"`
	Dining        decimal.Decimal `yaml:"dining" json:"dining"`
	Hobbies       decimal.Decimal `yaml:"hobbies" json:"hobbies"`
	Other         decimal.Decimal `yaml:"other" json:"other"`
}

// MonthlyExpenses groups essential and discretionary spending
type MonthlyExpenses struct {
	Essential     EssentialExpenses     `yaml:"essential" json:"essential"`
	Discretionary DiscretionaryExpenses `yaml:"discretionary" json:"discretionary"`
}

// Assets holds account balances by category
type Assets struct {
	Retirement401k decimal.Decimal `yaml:"retirement_401k" json:"retirement401k"`
	IRATraditional decimal.Decimal `yaml:"ira_traditional" json:"iraTraditional"`
	IRARoth        decimal.Decimal `yaml:"ira_roth" json:"iraRoth"`
	Brokerage      decimal.Decimal `yaml:"brokerage" json:"brokerage"`
	Savings        decimal.Decimal `yaml:"savings" json:"savings"`
	RealEstate     decimal.Decimal `yaml:"real_estate" json:"realEstate"`
	Other          decimal.Decimal `yaml:"other" json:"other"`
}

// SocialSecurityClaim is a claiming age with its monthly benefit
type SocialSecurityClaim struct {
	ClaimAge       int             `yaml:"claim_age" json:"claimAge"`
	MonthlyBenefit decimal.Decimal `yaml:"monthly_benefit" json:"monthlyBenefit"`
}

// IncomeSources captures salaries and guaranteed retirement income.
// Pension, rental and other income are monthly amounts.
type IncomeSources struct {
	CurrentSalary        decimal.Decimal      `yaml:"current_salary" json:"currentSalary"`
	SpouseSalary         *decimal.Decimal     `yaml:"spouse_salary,omitempty" json:"spouseSalary,omitempty"`
	SocialSecuritySelf   SocialSecurityClaim  `yaml:"social_security_self" json:"socialSecuritySelf"`
	SocialSecuritySpouse *SocialSecurityClaim `yaml:"social_security_spouse,omitempty" json:"socialSecuritySpouse,omitempty"`
	Pension              *decimal.Decimal     `yaml:"pension,omitempty" json:"pension,omitempty"`
	RentalIncome         *decimal.Decimal     `yaml:"rental_income,omitempty" json:"rentalIncome,omitempty"`
	OtherIncome          *decimal.Decimal     `yaml:"other_income,omitempty" json:"otherIncome,omitempty"`
}

// FinancialProfile is the complete snapshot consumed by the readiness methods
type FinancialProfile struct {
	PersonalInfo  PersonalInfo    `yaml:"personal_info" json:"personalInfo"`
	Expenses      MonthlyExpenses `yaml:"expenses" json:"expenses"`
	Assets        Assets          `yaml:"assets" json:"assets"`
	IncomeSources IncomeSources   `yaml:"income_sources" json:"incomeSources"`
	CompletedAt   *time.Time      `yaml:"completed_at,omitempty" json:"completedAt,omitempty"`
}

// Total sums all essential categories
func (e EssentialExpenses) Total() decimal.Decimal {
	return decimal.Sum(e.Housing, e.Utilities, e.Food, e.Healthcare, e.Insurance, e.DebtPayments)
}

// Total sums all discretionary categories
func (d DiscretionaryExpenses) Total() decimal.Decimal {
	return decimal.Sum(d.Entertainment, d.Travel, d.Dining, d.Hobbies, d.Other)
}

// Total returns essential plus discretionary spending
func (m MonthlyExpenses) Total() decimal.Decimal {
	return m.Essential.Total().Add(m.Discretionary.Total())
}

// Total sums every asset category
func (a Assets) Total() decimal.Decimal {
	return decimal.Sum(a.Retirement401k, a.IRATraditional, a.IRARoth, a.Brokerage, a.Savings, a.RealEstate, a.Other)
}

// GuaranteedMonthly returns income not drawn from the portfolio:
// Social Security for both spouses plus pension, rental and other income.
func (i IncomeSources) GuaranteedMonthly() decimal.Decimal {
	total := i.SocialSecuritySelf.MonthlyBenefit
	if i.SocialSecuritySpouse != nil {
		total = total.Add(i.SocialSecuritySpouse.MonthlyBenefit)
	}
	return total.
		Add(valueOrZero(i.Pension)).
		Add(valueOrZero(i.RentalIncome)).
		Add(valueOrZero(i.OtherIncome))
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
