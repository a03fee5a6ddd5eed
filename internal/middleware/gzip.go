package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/InQaaaaGit/subrelay/internal/respond"
)

// GzipMiddleware обрабатывает сжатие и распаковку gzip
func GzipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		supportsGzip := strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
		isGzipped := strings.Contains(r.Header.Get("Content-Encoding"), "gzip")

		// Сжатое тело запроса распаковываем до передачи обработчику.
		// Остальные запросы сразу уходят обработчику, ответ на них решает он.
		if isGzipped && !hasBody(r) {
			r.Header.Del("Content-Encoding")
		} else if isGzipped {
			gz, err := gzip.NewReader(r.Body)
			if err != nil {
				_ = respond.Error(w, http.StatusBadRequest, respond.MsgInvalidGzip)
				return
			}
			defer gz.Close()
			r.Body = gz
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !supportsGzip {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		gz := gzip.NewWriter(w)
		defer func() {
			// Заголовки уже отправлены, остаётся только закрыть поток
			_ = gz.Close()
		}()

		next.ServeHTTP(gzipResponseWriter{
			Writer:         gz,
			ResponseWriter: w,
		}, r)
	})
}

// hasBody сообщает, есть ли у запроса тело для распаковки.
// Тело принимает только POST.
func hasBody(r *http.Request) bool {
	return r.Method == http.MethodPost &&
		r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}

// gzipResponseWriter оборачивает http.ResponseWriter для сжатия ответа
type gzipResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

// Write записывает данные в сжатый поток
func (w gzipResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

// WriteHeader записывает код состояния HTTP ответа
func (w gzipResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

// Header возвращает HTTP заголовки ответа
func (w gzipResponseWriter) Header() http.Header {
	return w.ResponseWriter.Header()
}
