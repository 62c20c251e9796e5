package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"onyx/internal/models"

	"go.uber.org/zap"
)

// extractionPrompt is the fixed instruction sent with every receipt image.
const extractionPrompt = `Extract receipt data. Return ONLY JSON.
Format: {"date": "YYYY-MM-DD", "amount": 0.00, "category": "Food", "description": "Brief desc"}`

// degradedDescription marks the draft returned when extraction fails and
// the user has to fill the fields in by hand.
const degradedDescription = "Manual Entry (AI Failed)"

var draftObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

type visionClient interface {
	DescribeImage(ctx context.Context, data []byte, fileName, prompt string) (string, error)
}

// ExtractionService turns receipt images into expense drafts via the remote
// vision model. It never fails outward: every remote or parse error
// degrades to a manual-entry draft carrying a warning, so callers have no
// adapter-level failure to handle.
type ExtractionService struct {
	vision visionClient
	logger *zap.Logger
}

func NewExtractionService(vision visionClient, logger *zap.Logger) *ExtractionService {
	return &ExtractionService{
		vision: vision,
		logger: logger,
	}
}

func (s *ExtractionService) Extract(ctx context.Context, data []byte, fileName string) *models.Draft {
	text, err := s.vision.DescribeImage(ctx, data, fileName, extractionPrompt)
	if err != nil {
		s.logger.Warn("Receipt extraction failed", zap.String("file", fileName), zap.Error(err))
		return degradedDraft(err)
	}

	draft, err := decodeDraft(text)
	if err != nil {
		s.logger.Warn("No JSON recoverable from model response",
			zap.String("file", fileName),
			zap.Error(err),
		)
		return degradedDraft(err)
	}

	return draft
}

type draftWire struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// decodeDraft recovers a JSON object from free-form model output with three
// decreasing levels of leniency: the raw text, the text with markdown code
// fences stripped, and the first {...} span found anywhere in it.
func decodeDraft(text string) (*models.Draft, error) {
	candidates := []string{strings.TrimSpace(text)}

	stripped := strings.ReplaceAll(text, "```json", "")
	stripped = strings.TrimSpace(strings.ReplaceAll(stripped, "```", ""))
	candidates = append(candidates, stripped)

	if span := draftObjectPattern.FindString(stripped); span != "" {
		candidates = append(candidates, span)
	}

	var lastErr error
	for _, candidate := range candidates {
		var wire draftWire
		if err := json.Unmarshal([]byte(candidate), &wire); err != nil {
			lastErr = err
			continue
		}

		draft := &models.Draft{
			Date:        wire.Date,
			Amount:      wire.Amount,
			Category:    models.NormalizeCategory(wire.Category),
			Description: sanitizeUTF8(wire.Description),
		}
		if draft.Date == "" {
			draft.Date = time.Now().Format("2006-01-02")
		}
		return draft, nil
	}

	if lastErr == nil {
		lastErr = errors.New("empty model response")
	}
	return nil, lastErr
}

func degradedDraft(cause error) *models.Draft {
	return &models.Draft{
		Date:        time.Now().Format("2006-01-02"),
		Amount:      0,
		Category:    models.CategoryOther,
		Description: degradedDescription,
		Warning:     "AI Error: " + truncate(cause.Error(), 50) + "...",
		Degraded:    true,
	}
}
