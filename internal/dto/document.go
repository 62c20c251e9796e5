package dto

type DocumentResponse struct {
	ID         string `json:"id"`
	FileName   string `json:"file_name"`
	Size       int64  `json:"size"`
	State      string `json:"state"`
	UploadedAt string `json:"uploaded_at"`
}

type DraftResponse struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Warning     string  `json:"warning,omitempty"`
	Degraded    bool    `json:"degraded"`
}

type ReviewResponse struct {
	Document DocumentResponse `json:"document"`
	Draft    DraftResponse    `json:"draft"`
}

// ApproveReviewRequest carries the draft fields as the user left them
// after editing.
type ApproveReviewRequest struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}
