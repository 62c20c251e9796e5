package dto

type CategorySummary struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
	// Share is this category's percentage of total spend.
	Share float64 `json:"share"`
}

type ReportSummary struct {
	Currency          string            `json:"currency"`
	Budget            float64           `json:"budget"`
	TotalSpend        float64           `json:"total_spend"`
	Remaining         float64           `json:"remaining"`
	BudgetUtilization float64           `json:"budget_utilization"`
	ExpenseCount      int               `json:"expense_count"`
	Categories        []CategorySummary `json:"categories"`
}
