package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"Food", CategoryFood, true},
		{"food", CategoryFood, true},
		{"  TRANSPORT  ", CategoryTransport, true},
		{"Entertainment", CategoryEntertainment, true},
		{"Groceries", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseCategory(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, CategoryInvestment, NormalizeCategory("investment"))
	assert.Equal(t, CategoryOther, NormalizeCategory("Groceries"))
	assert.Equal(t, CategoryOther, NormalizeCategory(""))
}

func TestValidCurrency(t *testing.T) {
	for _, symbol := range CurrencySymbols {
		assert.True(t, ValidCurrency(symbol))
	}
	assert.False(t, ValidCurrency("¥"))
	assert.False(t, ValidCurrency(""))
}
