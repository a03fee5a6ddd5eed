package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/subrelay/internal/models"
	"github.com/InQaaaaGit/subrelay/internal/prompt"
)

// Generator отправляет готовый промпт во внешний сервис генерации текста
type Generator interface {
	Generate(ctx context.Context, apiKey, prompt string) (string, error)
}

// TranslationService определяет интерфейс сервиса перевода субтитров
type TranslationService interface {
	Translate(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error)
}

// TranslationServiceImpl реализует TranslationService.
// Не хранит состояния между запросами.
type TranslationServiceImpl struct {
	generator Generator
	logger    *zap.Logger
}

// NewTranslationService создает новый экземпляр TranslationService
func NewTranslationService(generator Generator, logger *zap.Logger) (*TranslationServiceImpl, error) {
	if generator == nil {
		return nil, fmt.Errorf("generator is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranslationServiceImpl{
		generator: generator,
		logger:    logger,
	}, nil
}

// Validate проверяет обязательные поля запроса
func Validate(req models.TranslationRequest) error {
	if req.InputContent == "" {
		return ErrInputRequired
	}
	return nil
}

// Translate проверяет запрос, собирает промпт и выполняет один вызов генератора.
// Повторных попыток нет: ошибка генератора возвращается как есть.
func (s *TranslationServiceImpl) Translate(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	text := prompt.Build(req.InputContent, req.CustomPrompt)
	s.logger.Debug("Sending translation prompt",
		zap.Int("input_length", len(req.InputContent)),
		zap.Int("prompt_length", len(text)),
		zap.Bool("custom_prompt", req.CustomPrompt != ""),
	)

	translated, err := s.generator.Generate(ctx, req.APIKey, text)
	if err != nil {
		return nil, fmt.Errorf("error generating translation: %w", err)
	}

	return &models.TranslationResponse{TranslatedContent: translated}, nil
}
