//go:build unit
// +build unit

package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale(t *testing.T) {
	assert.Equal(t, 2, Scale("USD"))
	assert.Equal(t, 2, Scale("AED"))
	assert.Equal(t, 0, Scale("JPY"))
	assert.Equal(t, 2, Scale("???"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "USD 1,234.50", Format(123450, "USD"))
	assert.Equal(t, "AED 0.99", Format(99, "AED"))
	assert.Equal(t, "JPY 5,000", Format(5000, "JPY"))
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		pct      float64
		expected int64
	}{
		{"zero", 10000, 0, 0},
		{"whole", 10000, 5, 500},
		{"half up", 1999, 5, 100},
		{"fractional percent", 25000, 12.5, 3125},
		{"full", 4200, 100, 4200},
		{"half up where float64 falls short", 3000, 1.15, 35},
		{"small percent half up", 11000, 0.35, 39},
		{"platform fee", 30000, 2.5, 750},
		{"negative amount rounds away from zero", -1999, 5, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percent(tt.amount, tt.pct))
		})
	}
}

func TestPercent_HalfUpSweep(t *testing.T) {
	// every amount whose exact share ends in .5 must round up
	for amount := int64(0); amount < 200000; amount += 200 {
		exact := amount * 115
		if exact%10000 != 5000 {
			continue
		}
		assert.Equal(t, exact/10000+1, Percent(amount, 1.15), "amount %d", amount)
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(5, 0))
	assert.Equal(t, 33.33, Ratio(1, 3))
	assert.Equal(t, 100.0, Ratio(7, 7))
}

func TestMustPositive(t *testing.T) {
	assert.NoError(t, MustPositive(1))
	assert.Error(t, MustPositive(0))
	assert.Error(t, MustPositive(-5))
}
