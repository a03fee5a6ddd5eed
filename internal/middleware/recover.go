package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/subrelay/internal/respond"
)

// RecoverMiddleware перехватывает панику обработчика, логирует её
// и отвечает клиенту общим сообщением об ошибке.
func RecoverMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("Panic recovered",
					zap.String("request_id", RequestIDFromContext(r.Context())),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)
				_ = respond.Error(w, http.StatusInternalServerError, respond.MsgInternal)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
