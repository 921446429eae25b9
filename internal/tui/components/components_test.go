package components

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReadinessBar_Filled(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0, 0},
		{50, 20},
		{100, 40},
		{130, 40},
		{-5, 0},
	}
	for _, tt := range tests {
		bar := NewReadinessBar(decimal.NewFromFloat(tt.score))
		assert.Equal(t, tt.want, bar.Filled(), "score %v", tt.score)
	}
}

func TestReadinessBar_Render(t *testing.T) {
	out := NewReadinessBar(decimal.NewFromFloat(62.25)).WithWidth(10).WithLabel("Readiness").Render()
	assert.Contains(t, out, "Readiness")
	assert.Contains(t, out, "62.3%")
}

func TestMetricCard(t *testing.T) {
	card := NewMetricCard("Gap", "$1,200").WithTone(ToneNegative).WithDescription("per month")
	assert.Contains(t, card.Render(), "$1,200")
	assert.Contains(t, card.Render(), "per month")
	assert.Contains(t, card.RenderCompact(), "Gap:")

	assert.Empty(t, MetricGrid(nil, 3))
	grid := MetricGrid([]*MetricCard{NewMetricCard("A", "1"), NewMetricCard("B", "2")}, 2)
	assert.Contains(t, grid, "A")
	assert.Contains(t, grid, "B")
}
