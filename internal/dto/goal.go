package dto

type CreateGoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
}

type FundGoalRequest struct {
	Amount float64 `json:"amount"`
}

type GoalResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	// Progress is the display fraction, clamped to 1 even when the stored
	// amount overshoots the target.
	Progress float64 `json:"progress"`
}
