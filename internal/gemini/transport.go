package gemini

import "net/http"

// apiKeyHeader - заголовок, в котором genai передаёт ключ по умолчанию
const apiKeyHeader = "x-goog-api-key"

// queryKeyTransport переносит ключ API из заголовка в параметр запроса key
type queryKeyTransport struct {
	key  string
	base http.RoundTripper
}

// RoundTrip выполняет запрос с ключом в query-строке
func (t *queryKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	q := out.URL.Query()
	q.Set("key", t.key)
	out.URL.RawQuery = q.Encode()
	out.Header.Del(apiKeyHeader)
	return t.base.RoundTrip(out)
}
