package models

// Goal is a savings target. CurrentAmount only ever grows; contributions
// past the target are allowed and shown as >100% utilization capped by
// the presentation layer.
type Goal struct {
	ID            int64   `db:"id"`
	Name          string  `db:"name"`
	TargetAmount  float64 `db:"target_amount"`
	CurrentAmount float64 `db:"current_amount"`
}
