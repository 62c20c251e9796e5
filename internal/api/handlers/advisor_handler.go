package handlers

import (
	"strings"

	"onyx/internal/dto"
	"onyx/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdvisorHandler struct {
	advisorService *service.AdvisorService
	logger         *zap.Logger
}

func NewAdvisorHandler(advisorService *service.AdvisorService, logger *zap.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		advisorService: advisorService,
		logger:         logger,
	}
}

// Chat godoc
// @Summary Ask the advisor
// @Description Send a message to the AI advisor persona; failures come back as a system-error reply, never a 5xx
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Security Bearer
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/advisor/chat [post]
func (h *AdvisorHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message must not be empty",
		})
	}

	personaEnabled := true
	if req.PersonaEnabled != nil {
		personaEnabled = *req.PersonaEnabled
	}

	reply := h.advisorService.Respond(c.Context(), req.Message, req.Persona, personaEnabled)

	return c.JSON(dto.ChatResponse{Reply: reply})
}
