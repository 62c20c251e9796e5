package models

import (
	"time"

	"github.com/google/uuid"
)

type DocumentState string

const (
	// DocumentQueued means uploaded but not yet analyzed.
	DocumentQueued DocumentState = "queued"
	// DocumentUnderReview means extraction ran and a draft is held for the
	// user to edit. At most one document per session is in this state.
	DocumentUnderReview DocumentState = "under_review"
	// DocumentApproved is terminal: the draft was committed to the ledger
	// and the document left the queue.
	DocumentApproved DocumentState = "approved"
)

// PendingDocument is an uploaded file awaiting extraction and human
// confirmation. It lives only in session memory and is never persisted.
type PendingDocument struct {
	ID         uuid.UUID
	FileName   string
	Size       int64
	Data       []byte
	State      DocumentState
	UploadedAt time.Time
}

// Draft is the transient expense record produced by receipt extraction,
// held only until the user approves or cancels the review.
//
// Degraded distinguishes a real extraction from the manual-entry fallback
// the adapter returns when the remote call or JSON recovery fails.
type Draft struct {
	Date        string   `json:"date"`
	Amount      float64  `json:"amount"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Warning     string   `json:"warning,omitempty"`
	Degraded    bool     `json:"degraded,omitempty"`
}
