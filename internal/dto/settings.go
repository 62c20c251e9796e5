package dto

type SettingsResponse struct {
	Budget   float64 `json:"budget"`
	Currency string  `json:"currency"`
}

type UpdateBudgetRequest struct {
	Budget float64 `json:"budget"`
}

type UpdateCurrencyRequest struct {
	Currency string `json:"currency"`
}
