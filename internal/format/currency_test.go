package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		amount float64
	}{
		{name: "zero", amount: 0, want: "$0"},
		{name: "small", amount: 605, want: "$605"},
		{name: "grouped thousands", amount: 16_000, want: "$16,000"},
		{name: "rounds to whole dollars", amount: 2_499.6, want: "$2,500"},
		{name: "negative", amount: -2_750, want: "-$2,750"},
		{name: "large", amount: 1_234_567, want: "$1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "30%", Percent(0.30))
	assert.Equal(t, "13%", Percent(0.13))
	assert.Equal(t, "14.98%", Percent(0.14975))
}
