package handlers

import (
	"errors"

	"onyx/internal/dto"
	"onyx/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
	logger          *zap.Logger
}

func NewSettingsHandler(settingsService *service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// Get godoc
// @Summary Get settings
// @Description Return the monthly budget and currency symbol
// @Tags settings
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SettingsResponse
// @Router /api/v1/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	budget, err := h.settingsService.Budget(c.Context())
	if err != nil {
		h.logger.Error("Failed to read budget", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read settings",
		})
	}

	currency, err := h.settingsService.Currency(c.Context())
	if err != nil {
		h.logger.Error("Failed to read currency", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read settings",
		})
	}

	return c.JSON(dto.SettingsResponse{
		Budget:   budget.InexactFloat64(),
		Currency: currency,
	})
}

// UpdateBudget godoc
// @Summary Set the monthly budget
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateBudgetRequest true "Budget"
// @Security Bearer
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /api/v1/settings/budget [put]
func (h *SettingsHandler) UpdateBudget(c *fiber.Ctx) error {
	var req dto.UpdateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.settingsService.SetBudget(c.Context(), decimal.NewFromFloat(req.Budget)); err != nil {
		h.logger.Error("Failed to set budget", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to set budget",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateCurrency godoc
// @Summary Set the currency symbol
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateCurrencyRequest true "Currency"
// @Security Bearer
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /api/v1/settings/currency [put]
func (h *SettingsHandler) UpdateCurrency(c *fiber.Ctx) error {
	var req dto.UpdateCurrencyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.settingsService.SetCurrency(c.Context(), req.Currency); err != nil {
		if errors.Is(err, service.ErrUnsupportedCurrency) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to set currency", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to set currency",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
