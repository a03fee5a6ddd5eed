package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/InQaaaaGit/subrelay/internal/gemini"
	"github.com/InQaaaaGit/subrelay/internal/models"
	"github.com/InQaaaaGit/subrelay/internal/service"
)

// mockTranslationService реализует интерфейс service.TranslationService для тестов
type mockTranslationService struct {
	calls         int
	translateFunc func(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error)
}

func (m *mockTranslationService) Translate(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error) {
	m.calls++
	if m.translateFunc != nil {
		return m.translateFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func TestHandleTranslateMethodNotAllowed(t *testing.T) {
	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}

	for _, method := range methods {
		t.Run(method, func(t *testing.T) {
			svc := &mockTranslationService{}
			h := NewHandler(svc, zap.NewNop())

			req := httptest.NewRequest(method, "/api/translate", strings.NewReader(`{"inputContent":"x","apiKey":"k"}`))
			w := httptest.NewRecorder()
			h.HandleTranslate(w, req)

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if method != http.MethodHead {
				assert.JSONEq(t, `{"error":"Only POST requests allowed"}`, w.Body.String())
			}
			assert.Equal(t, 0, svc.calls)
		})
	}
}

func TestHandleTranslate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		translate      func(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error)
		expectedStatus int
		expectedBody   string
		wantLoggedErr  bool
	}{
		{
			name: "Successful translation",
			body: `{"inputContent":"1\nHello\n","apiKey":"k"}`,
			translate: func(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error) {
				return &models.TranslationResponse{TranslatedContent: "Xin chào"}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"translatedContent":"Xin chào"}`,
		},
		{
			name: "Missing input content",
			body: `{"apiKey":"k","customPrompt":"c"}`,
			translate: func(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error) {
				return nil, service.ErrInputRequired
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Input content is required"}`,
		},
		{
			name:           "Malformed JSON",
			body:           `{"inputContent":`,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
			wantLoggedErr:  true,
		},
		{
			name:           "Empty body",
			body:           ``,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
			wantLoggedErr:  true,
		},
		{
			name:           "Trailing data after JSON",
			body:           `{"inputContent":"a","apiKey":"k"} trailing`,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
			wantLoggedErr:  true,
		},
		{
			name:           "Second JSON value",
			body:           `{"inputContent":"a","apiKey":"k"}{"inputContent":"b"}`,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
			wantLoggedErr:  true,
		},
		{
			name: "Trailing whitespace is accepted",
			body: "{\"inputContent\":\"a\",\"apiKey\":\"k\"}\n  ",
			translate: func(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error) {
				return &models.TranslationResponse{TranslatedContent: "b"}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"translatedContent":"b"}`,
		},
		{
			name: "Upstream error detail is not leaked",
			body: `{"inputContent":"x","apiKey":"k"}`,
			translate: func(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error) {
				return nil, &gemini.UpstreamError{StatusCode: 403, Status: "PERMISSION_DENIED", Message: "API key not valid"}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
			wantLoggedErr:  true,
		},
		{
			name: "Translation failed",
			body: `{"inputContent":"x","apiKey":"k"}`,
			translate: func(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error) {
				return nil, gemini.ErrTranslationFailed
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
			wantLoggedErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)
			svc := &mockTranslationService{translateFunc: tt.translate}
			h := NewHandler(svc, zap.New(core))

			req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.HandleTranslate(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, tt.wantLoggedErr, logs.Len() > 0)
			assert.NotContains(t, w.Body.String(), "API key not valid")
		})
	}
}

func TestHandleTranslateDetachesCancellation(t *testing.T) {
	var outboundCtx context.Context
	svc := &mockTranslationService{
		translateFunc: func(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error) {
			outboundCtx = ctx
			return &models.TranslationResponse{TranslatedContent: "ok"}, nil
		},
	}
	h := NewHandler(svc, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(`{"inputContent":"x","apiKey":"k"}`)).WithContext(ctx)
	w := httptest.NewRecorder()
	h.HandleTranslate(w, req)

	require.NotNil(t, outboundCtx)
	assert.NoError(t, outboundCtx.Err())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleTranslatePassesRequestFields(t *testing.T) {
	var got models.TranslationRequest
	svc := &mockTranslationService{
		translateFunc: func(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error) {
			got = req
			return &models.TranslationResponse{}, nil
		},
	}
	h := NewHandler(svc, zap.NewNop())

	body := `{"inputContent":"1\n00:00:01,000 --> 00:00:02,000\n你好\n","apiKey":"key-1","customPrompt":"Formal.","extra":true}`
	w := httptest.NewRecorder()
	h.HandleTranslate(w, httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1\n00:00:01,000 --> 00:00:02,000\n你好\n", got.InputContent)
	assert.Equal(t, "key-1", got.APIKey)
	assert.Equal(t, "Formal.", got.CustomPrompt)
}

func TestHandlePing(t *testing.T) {
	h := NewHandler(&mockTranslationService{}, zap.NewNop())

	w := httptest.NewRecorder()
	h.HandlePing(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.HandlePing(w, httptest.NewRequest(http.MethodPost, "/ping", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
