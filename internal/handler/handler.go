package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/subrelay/internal/middleware"
	"github.com/InQaaaaGit/subrelay/internal/models"
	"github.com/InQaaaaGit/subrelay/internal/respond"
	"github.com/InQaaaaGit/subrelay/internal/service"
)

// Handler содержит HTTP обработчики ретранслятора перевода
type Handler struct {
	service service.TranslationService
	logger  *zap.Logger
}

func NewHandler(service service.TranslationService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleTranslate обрабатывает POST запрос на перевод субтитров.
// Клиент получает только фиксированные сообщения об ошибках, детали пишутся в лог.
func (h *Handler) HandleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, respond.MsgMethodNotAllowed)
		return
	}

	requestID := middleware.RequestIDFromContext(r.Context())

	req, err := decodeRequest(r.Body)
	if err != nil {
		h.logger.Error("Error decoding translation request",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, respond.MsgInternal)
		return
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			h.logger.Error("Error closing request body", zap.Error(err))
		}
	}()

	// Исходящий вызов не отменяется при обрыве соединения клиентом
	ctx := context.WithoutCancel(r.Context())

	resp, err := h.service.Translate(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrInputRequired) {
			h.writeError(w, http.StatusBadRequest, respond.MsgInputRequired)
			return
		}
		h.logger.Error("Error translating subtitles",
			zap.String("request_id", requestID),
			zap.Int("input_length", len(req.InputContent)),
			zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, respond.MsgInternal)
		return
	}

	if err := respond.JSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("Error writing JSON response", zap.Error(err))
	}
}

// decodeRequest читает ровно одно JSON значение, данные после него считаются ошибкой
func decodeRequest(body io.Reader) (models.TranslationRequest, error) {
	var req models.TranslationRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("error decoding request: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return req, errors.New("unexpected data after JSON body")
	}
	return req, nil
}

// writeError пишет JSON-тело ошибки и логирует сбой записи
func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	if err := respond.Error(w, status, msg); err != nil {
		h.logger.Error("Error writing error response", zap.Int("status", status), zap.Error(err))
	}
}

// WithLogging добавляет логирование запросов
func (h *Handler) WithLogging(next http.Handler) http.Handler {
	return middleware.LoggerMiddleware(h.logger)(next)
}

// WithGzip добавляет поддержку gzip сжатия
func (h *Handler) WithGzip(next http.Handler) http.Handler {
	return middleware.GzipMiddleware(next)
}

// WithRecovery превращает панику обработчика в ответ 500
func (h *Handler) WithRecovery(next http.Handler) http.Handler {
	return middleware.RecoverMiddleware(h.logger)(next)
}

// WithRequestID присваивает запросу идентификатор
func (h *Handler) WithRequestID(next http.Handler) http.Handler {
	return middleware.WithRequestID(next)
}
