// Package respond пишет JSON-ответы с фиксированными сообщениями об ошибках.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/InQaaaaGit/subrelay/internal/models"
)

const contentTypeJSON = "application/json"

// Сообщения, которые видит клиент. Подробности ошибок клиенту не передаются.
const (
	MsgMethodNotAllowed = "Only POST requests allowed"
	MsgInputRequired    = "Input content is required"
	MsgInternal         = "Internal server error"
	MsgInvalidGzip      = "Invalid gzip body"
)

// JSON сериализует v и пишет его с указанным статусом
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// Error пишет тело {"error": msg} с указанным статусом
func Error(w http.ResponseWriter, status int, msg string) error {
	return JSON(w, status, models.ErrorResponse{Error: msg})
}
