package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey используется как ключ для значений в контексте
type contextKey string

const (
	// RequestIDKey используется как ключ для хранения ID запроса в контексте
	RequestIDKey contextKey = "request_id"
	// RequestIDHeader - заголовок, в котором передаётся ID запроса
	RequestIDHeader = "X-Request-ID"
)

// WithRequestID присваивает запросу ID: берёт валидный UUID из заголовка
// X-Request-ID или генерирует новый, и возвращает его в ответе.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext возвращает ID запроса или пустую строку
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
