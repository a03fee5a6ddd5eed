// Package gemini выполняет единственный вызов generateContent к Gemini API
// и извлекает текст первого кандидата.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// Значения по умолчанию для подключения к Gemini API
const (
	DefaultBaseURL    = "https://generativelanguage.googleapis.com"
	DefaultAPIVersion = "v1beta"
	DefaultModel      = "gemini-2.0-flash-exp"
)

// Фиксированные параметры генерации
const (
	temperature      float32 = 0.7
	topK             float32 = 50
	topP             float32 = 0.9
	maxOutputTokens  int32   = 8192
	responseMIMEType         = "text/plain"
)

// Options задаёт адрес, версию API и модель
type Options struct {
	BaseURL    string
	APIVersion string
	Model      string
	// Transport используется для исходящих запросов; nil означает http.DefaultTransport
	Transport http.RoundTripper
}

// Client вызывает Gemini API с ключом, переданным вызывающей стороной.
// Клиент не хранит ключей и безопасен для конкурентного использования.
type Client struct {
	baseURL    string
	apiVersion string
	model      string
	transport  http.RoundTripper
}

// NewClient создает клиента, подставляя значения по умолчанию для пустых полей
func NewClient(opts Options) *Client {
	c := &Client{
		baseURL:    opts.BaseURL,
		apiVersion: opts.APIVersion,
		model:      opts.Model,
		transport:  opts.Transport,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.apiVersion == "" {
		c.apiVersion = DefaultAPIVersion
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.transport == nil {
		c.transport = http.DefaultTransport
	}
	return c
}

// Model возвращает имя используемой модели
func (c *Client) Model() string {
	return c.model
}

// Generate отправляет prompt одним сообщением роли user и возвращает текст
// первой части первого кандидата.
func (c *Client) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	if apiKey == "" {
		return "", ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Transport: &queryKeyTransport{key: apiKey, base: c.transport},
		},
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    c.baseURL,
			APIVersion: c.apiVersion,
		},
	})
	if err != nil {
		return "", fmt.Errorf("error creating genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, GenerationConfig())
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{
				StatusCode: apiErr.Code,
				Status:     apiErr.Status,
				Message:    apiErr.Message,
			}
		}
		return "", fmt.Errorf("error calling generateContent: %w", err)
	}

	return FirstCandidateText(resp)
}

// GenerationConfig возвращает фиксированные параметры генерации
func GenerationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(temperature),
		TopK:             genai.Ptr(topK),
		TopP:             genai.Ptr(topP),
		MaxOutputTokens:  maxOutputTokens,
		ResponseMIMEType: responseMIMEType,
	}
}

// FirstCandidateText извлекает candidates[0].content.parts[0].text.
// Используется только первый кандидат, остальные игнорируются.
func FirstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrTranslationFailed
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 || candidate.Content.Parts[0] == nil {
		return "", fmt.Errorf("%w: first candidate has no content parts", ErrTranslationFailed)
	}

	return candidate.Content.Parts[0].Text, nil
}
