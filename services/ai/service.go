// Package ai formats the storefront's domain prompts and forwards them
// to the generative backend.
package ai

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ErrEmptyMessage marks a request with nothing usable to answer: no
// free-text message and no recognized quick action.
var ErrEmptyMessage = errors.New("message is required")

// Service is the AI proxy: it resolves quick actions locally and
// builds the contextual prompts for everything else.
type Service struct {
	gen    Generator
	logger *zap.Logger
}

func NewService(gen Generator, logger *zap.Logger) *Service {
	return &Service{gen: gen, logger: logger}
}

// CustomerChat answers a customer message. A recognized quick-action
// key short-circuits to its canned response without touching the
// backend; otherwise the free-text message is wrapped in the support
// context and forwarded. Message takes priority when the quick action
// is not recognized.
func (s *Service) CustomerChat(ctx context.Context, message, quickAction string) (string, error) {
	if quickAction != "" {
		if reply, ok := QuickActionResponse(quickAction); ok {
			return reply, nil
		}
	}

	if message == "" {
		return "", ErrEmptyMessage
	}

	prompt := fmt.Sprintf("%s\n\nCliente: %s\n\nAssistente:", CustomerContext, message)

	reply, err := s.generate(ctx, prompt, CustomerChatConfig)
	if err != nil {
		s.logger.Error("customer chat generation failed", zap.Error(err))
		return "", fmt.Errorf("customer chat: %w", err)
	}
	return reply, nil
}

// AdminAssistant answers an admin question, optionally grounded on a
// serialized analytics snapshot.
func (s *Service) AdminAssistant(ctx context.Context, message string, data *AnalyticsData) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}

	prompt := AdminContext
	if data != nil {
		prompt = fmt.Sprintf("%s\n\n%s", AdminContext, FormatAnalytics(*data))
	}
	prompt = fmt.Sprintf("%s\n\nPergunta do admin: %s\n\nResposta:", prompt, message)

	reply, err := s.generate(ctx, prompt, AdminAssistantConfig)
	if err != nil {
		s.logger.Error("admin assistant generation failed", zap.Error(err))
		return "", fmt.Errorf("admin assistant: %w", err)
	}
	return reply, nil
}

func (s *Service) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	if s.gen == nil {
		return "", errors.New("generative backend is not configured")
	}
	return s.gen.Generate(ctx, prompt, cfg)
}
