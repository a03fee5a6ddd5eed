package gemini

import (
	"errors"
	"fmt"
)

// ErrTranslationFailed возвращается, когда ответ модели не содержит ни одного пригодного кандидата
var ErrTranslationFailed = errors.New("translation failed")

// ErrMissingAPIKey возвращается, когда вызывающая сторона не передала ключ API
var ErrMissingAPIKey = errors.New("api key is required")

// UpstreamError описывает ответ Gemini API с кодом, отличным от 2xx
type UpstreamError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream HTTP error: status %d %s: %s", e.StatusCode, e.Status, e.Message)
}
