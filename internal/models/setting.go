package models

// Settings are a generic key/value map with two well-known keys.
const (
	SettingBudget   = "budget"
	SettingCurrency = "currency"

	DefaultBudget   = "25000"
	DefaultCurrency = "₹"
)

// CurrencySymbols is the set of symbols the currency setting may take.
var CurrencySymbols = []string{"₹", "$", "€", "£"}

// ValidCurrency reports whether symbol is one of the supported symbols.
func ValidCurrency(symbol string) bool {
	for _, s := range CurrencySymbols {
		if s == symbol {
			return true
		}
	}
	return false
}

type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}
