package service

import (
	"context"
	"fmt"

	"onyx/pkg/config"

	"go.uber.org/zap"
)

type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// AdvisorService is the chat adapter: it prefixes the user query with a
// persona instruction and sends it as a fresh conversation. Failures become
// a literal system-error string so the transcript always gets an assistant
// entry.
type AdvisorService struct {
	llm            completer
	defaultPersona string
	logger         *zap.Logger
}

func NewAdvisorService(llm completer, cfg *config.AdvisorConfig, logger *zap.Logger) *AdvisorService {
	return &AdvisorService{
		llm:            llm,
		defaultPersona: cfg.Persona,
		logger:         logger,
	}
}

func (s *AdvisorService) Respond(ctx context.Context, query, persona string, personaEnabled bool) string {
	if persona == "" {
		persona = s.defaultPersona
	}

	sysMsg := "You are a helpful assistant."
	if personaEnabled {
		sysMsg = fmt.Sprintf("You are %s. Keep it short.", persona)
	}

	reply, err := s.llm.Complete(ctx, fmt.Sprintf("%s\nUser: %s", sysMsg, query))
	if err != nil {
		s.logger.Warn("Advisor completion failed", zap.Error(err))
		return "System Error: " + truncate(err.Error(), 100) + ". Please try again later."
	}

	return sanitizeUTF8(reply)
}
