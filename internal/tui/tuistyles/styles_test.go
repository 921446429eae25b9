package tuistyles

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0", FormatCurrency(decimal.Zero))
	assert.Equal(t, "$999", FormatCurrency(decimal.NewFromInt(999)))
	assert.Equal(t, "$1,000", FormatCurrency(decimal.NewFromInt(1000)))
	assert.Equal(t, "$1,234,568", FormatCurrency(decimal.RequireFromString("1234567.6")))
	assert.Equal(t, "-$4,350", FormatCurrency(decimal.NewFromInt(-4350)))
}

func TestScoreColor(t *testing.T) {
	assert.Equal(t, ColorSuccess, ScoreColor(decimal.NewFromInt(80)))
	assert.Equal(t, ColorWarning, ScoreColor(decimal.NewFromInt(50)))
	assert.Equal(t, ColorDanger, ScoreColor(decimal.NewFromInt(10)))
}
