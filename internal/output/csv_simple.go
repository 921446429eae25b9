package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/shopspring/decimal"
)

// CSVFormatter writes the Section/Field/Value export. Absent optional
// inputs print as N/A.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

const notApplicable = "N/A"

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	var rows [][]string
	blank := []string{"", "", ""}
	add := func(section, field, value string) {
		rows = append(rows, []string{section, field, value})
	}

	add("Section", "Field", "Value")

	if p := report.Profile; p != nil {
		pi := p.PersonalInfo
		add("Personal Info", "Age", strconv.Itoa(pi.Age))
		add("Personal Info", "Spouse Age", optionalInt(pi.SpouseAge))
		add("Personal Info", "Target Retirement Age", strconv.Itoa(pi.TargetRetirementAge))
		add("Personal Info", "Risk Tolerance", strconv.Itoa(pi.RiskTolerance))
		rows = append(rows, blank)

		e := p.Expenses.Essential
		add("Essential Expenses", "Housing", e.Housing.String())
		add("Essential Expenses", "Utilities", e.Utilities.String())
		add("Essential Expenses", "Food", e.Food.String())
		add("Essential Expenses", "Healthcare", e.Healthcare.String())
		add("Essential Expenses", "Insurance", e.Insurance.String())
		add("Essential Expenses", "Debt Payments", e.DebtPayments.String())
		rows = append(rows, blank)

		d := p.Expenses.Discretionary
		add("Discretionary Expenses", "Entertainment", d.Entertainment.String())
		add("Discretionary Expenses", "Travel", d.Travel.String())
		add("Discretionary Expenses", "Dining", d.Dining.String())
		add("Discretionary Expenses", "Hobbies", d.Hobbies.String())
		add("Discretionary Expenses", "Other", d.Other.String())
		rows = append(rows, blank)

		a := p.Assets
		add("Assets", "401(k)", a.Retirement401k.String())
		add("Assets", "Traditional IRA", a.IRATraditional.String())
		add("Assets", "Roth IRA", a.IRARoth.String())
		add("Assets", "Brokerage", a.Brokerage.String())
		add("Assets", "Savings", a.Savings.String())
		add("Assets", "Real Estate", a.RealEstate.String())
		add("Assets", "Other", a.Other.String())
		rows = append(rows, blank)

		inc := p.IncomeSources
		add("Income Sources", "Current Salary", inc.CurrentSalary.String())
		add("Income Sources", "Spouse Salary", optionalDecimal(inc.SpouseSalary))
		add("Income Sources", "Social Security (Self) Age", strconv.Itoa(inc.SocialSecuritySelf.ClaimAge))
		add("Income Sources", "Social Security (Self) Benefit", inc.SocialSecuritySelf.MonthlyBenefit.String())
		if ss := inc.SocialSecuritySpouse; ss != nil {
			add("Income Sources", "Social Security (Spouse) Age", strconv.Itoa(ss.ClaimAge))
			add("Income Sources", "Social Security (Spouse) Benefit", ss.MonthlyBenefit.String())
		} else {
			add("Income Sources", "Social Security (Spouse) Age", notApplicable)
			add("Income Sources", "Social Security (Spouse) Benefit", notApplicable)
		}
		add("Income Sources", "Pension", optionalDecimal(inc.Pension))
		add("Income Sources", "Rental Income", optionalDecimal(inc.RentalIncome))
		add("Income Sources", "Other Income", optionalDecimal(inc.OtherIncome))
	}

	for _, an := range report.Analyses {
		rows = append(rows, blank)
		add("Analysis", "Method", string(an.Method))
		add("Analysis", "Readiness Score", FormatPercentage(an.ReadinessScore))
		add("Analysis", "Projected Monthly Income", FormatCurrency(an.ProjectedMonthlyIncome))
		add("Analysis", "Required Monthly Income", FormatCurrency(an.RequiredMonthlyIncome))
		add("Analysis", "Gap", FormatCurrency(an.Gap))
		rows = append(rows, blank)
		add("Recommendations", "", "")
		for i, rec := range an.Recommendations {
			add("Recommendation", strconv.Itoa(i+1), rec)
		}
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func optionalInt(v *int) string {
	if v == nil {
		return notApplicable
	}
	return strconv.Itoa(*v)
}

func optionalDecimal(v *decimal.Decimal) string {
	if v == nil {
		return notApplicable
	}
	return v.String()
}
