package handlers

import (
	"errors"
	"io"
	"time"

	"onyx/internal/dto"
	"onyx/internal/models"
	"onyx/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	reviewService *service.ReviewService
	logger        *zap.Logger
}

func NewDocumentHandler(reviewService *service.ReviewService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// Upload godoc
// @Summary Upload a receipt image
// @Description Queue a receipt for extraction and review
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt image"
// @Security Bearer
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	username := currentUsername(c)

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}

	doc := h.reviewService.Upload(username, file.Filename, data)

	return c.Status(fiber.StatusCreated).JSON(documentResponse(doc))
}

// List godoc
// @Summary List queued documents
// @Tags documents
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.DocumentResponse
// @Router /api/v1/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	docs := h.reviewService.Queue(currentUsername(c))

	responses := make([]dto.DocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = documentResponse(doc)
	}

	return c.JSON(responses)
}

// StartReview godoc
// @Summary Review a queued document
// @Description Run extraction over the document and hold the draft for editing
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Security Bearer
// @Success 200 {object} dto.ReviewResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/documents/{id}/review [post]
func (h *DocumentHandler) StartReview(c *fiber.Ctx) error {
	username := currentUsername(c)

	docID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID",
		})
	}

	doc, draft, err := h.reviewService.StartReview(c.Context(), username, docID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDocumentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Document not found",
			})
		case errors.Is(err, service.ErrReviewInProgress):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Another document is already under review",
			})
		}
		h.logger.Error("Failed to start review", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to start review",
		})
	}

	return c.JSON(reviewResponse(doc, draft))
}

// CurrentReview godoc
// @Summary Get the active review
// @Tags documents
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ReviewResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/documents/review [get]
func (h *DocumentHandler) CurrentReview(c *fiber.Ctx) error {
	doc, draft, ok := h.reviewService.CurrentReview(currentUsername(c))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No document is under review",
		})
	}

	return c.JSON(reviewResponse(doc, draft))
}

// Approve godoc
// @Summary Approve the active review
// @Description Commit the edited draft to the ledger and dequeue the document
// @Tags documents
// @Accept json
// @Produce json
// @Param request body dto.ApproveReviewRequest true "Edited draft"
// @Security Bearer
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/documents/review/approve [post]
func (h *DocumentHandler) Approve(c *fiber.Ctx) error {
	username := currentUsername(c)

	var req dto.ApproveReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	edited := models.Draft{
		Date:        req.Date,
		Amount:      req.Amount,
		Category:    models.Category(req.Category),
		Description: req.Description,
	}

	expense, err := h.reviewService.Approve(c.Context(), username, edited)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveReview):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No document is under review",
			})
		case isValidationError(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to approve review", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to approve review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(expenseResponse(expense))
}

// Cancel godoc
// @Summary Cancel the active review
// @Description Discard the draft; the document stays in the queue
// @Tags documents
// @Produce json
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/documents/review/cancel [post]
func (h *DocumentHandler) Cancel(c *fiber.Ctx) error {
	if err := h.reviewService.Cancel(currentUsername(c)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No document is under review",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func documentResponse(doc *models.PendingDocument) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:         doc.ID.String(),
		FileName:   doc.FileName,
		Size:       doc.Size,
		State:      string(doc.State),
		UploadedAt: doc.UploadedAt.Format(time.RFC3339),
	}
}

func reviewResponse(doc *models.PendingDocument, draft *models.Draft) dto.ReviewResponse {
	resp := dto.ReviewResponse{
		Document: documentResponse(doc),
	}
	if draft != nil {
		resp.Draft = dto.DraftResponse{
			Date:        draft.Date,
			Amount:      draft.Amount,
			Category:    string(draft.Category),
			Description: draft.Description,
			Warning:     draft.Warning,
			Degraded:    draft.Degraded,
		}
	}
	return resp
}
