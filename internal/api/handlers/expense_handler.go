package handlers

import (
	"bytes"
	"errors"
	"time"

	"onyx/internal/dto"
	"onyx/internal/models"
	"onyx/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
	reportService  *service.ReportService
	logger         *zap.Logger
}

func NewExpenseHandler(expenseService *service.ExpenseService, reportService *service.ReportService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		reportService:  reportService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Record an expense
// @Description Append one expense to the ledger
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Expense"
// @Security Bearer
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	expense, err := h.expenseService.Add(c.Context(), req.Date, req.Category, req.Amount, req.Description)
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to record expense", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record expense",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(expenseResponse(expense))
}

// List godoc
// @Summary List expenses
// @Description Return the full ledger, most recent date first
// @Tags expenses
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ExpenseResponse
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	expenses, err := h.expenseService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list expenses", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list expenses",
		})
	}

	responses := make([]dto.ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = expenseResponse(e)
	}

	return c.JSON(responses)
}

// Export godoc
// @Summary Export the ledger
// @Description Download the ledger as a CSV file
// @Tags expenses
// @Produce text/csv
// @Security Bearer
// @Success 200 {string} string
// @Router /api/v1/expenses/export [get]
func (h *ExpenseHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.reportService.ExportCSV(c.Context(), &buf); err != nil {
		h.logger.Error("Failed to export ledger", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export ledger",
		})
	}

	fileName := "expenses-" + time.Now().Format("2006-01-02") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)

	return c.Send(buf.Bytes())
}

func expenseResponse(e *models.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date,
		Category:    string(e.Category),
		Amount:      e.Amount,
		Description: e.Description,
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrInvalidDate) ||
		errors.Is(err, service.ErrInvalidCategory) ||
		errors.Is(err, service.ErrNegativeAmount)
}
