package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Conceptual-Machines/retort-api/internal/config"
	"github.com/Conceptual-Machines/retort-api/internal/models"
	"github.com/Conceptual-Machines/retort-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator records requests and returns a canned result
type stubGenerator struct {
	calls   int
	lastReq models.GenerationRequest
	result  *models.GenerationResult
	err     error
}

func (s *stubGenerator) Generate(_ context.Context, req models.GenerationRequest) (*models.GenerationResult, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestRouter(gen RebuttalGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/generate", NewGenerationHandler(gen).Generate)
	router.GET("/api/intensities", Intensities)
	return router
}

func postGenerate(t *testing.T, router *gin.Engine, body string) (int, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload), w.Body.String())
	return w.Code, payload
}

func TestGenerate_Success(t *testing.T) {
	gen := &stubGenerator{result: &models.GenerationResult{Responses: []string{"A", "B", "C"}}}
	router := newTestRouter(gen)

	code, payload := postGenerate(t, router, `{"input":"你说得不对","intensity":7}`)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []interface{}{"A", "B", "C"}, payload["responses"])
	assert.Equal(t, models.GenerationRequest{Input: "你说得不对", Intensity: 7}, gen.lastReq)
}

func TestGenerate_IntegralFloatIntensity(t *testing.T) {
	gen := &stubGenerator{result: &models.GenerationResult{Responses: []string{"A"}}}
	router := newTestRouter(gen)

	code, _ := postGenerate(t, router, `{"input":"hi","intensity":3.0}`)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, gen.lastReq.Intensity)
}

func TestGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "missing input", body: `{"intensity":5}`, message: services.MsgInputRequired},
		{name: "empty input", body: `{"input":"","intensity":5}`, message: services.MsgInputRequired},
		{name: "whitespace input", body: `{"input":"   \n\t","intensity":5}`, message: services.MsgInputRequired},
		{name: "input not a string", body: `{"input":42,"intensity":5}`, message: services.MsgInputRequired},
		{name: "null input", body: `{"input":null,"intensity":5}`, message: services.MsgInputRequired},
		{name: "blank input wins over bad intensity", body: `{"input":" ","intensity":"loud"}`, message: services.MsgInputRequired},
		{name: "missing input and intensity", body: `{}`, message: services.MsgInputRequired},
		{name: "missing intensity", body: `{"input":"hi"}`, message: services.MsgIntensityRange},
		{name: "intensity zero", body: `{"input":"hi","intensity":0}`, message: services.MsgIntensityRange},
		{name: "intensity eleven", body: `{"input":"hi","intensity":11}`, message: services.MsgIntensityRange},
		{name: "intensity string", body: `{"input":"hi","intensity":"5"}`, message: services.MsgIntensityRange},
		{name: "intensity fractional", body: `{"input":"hi","intensity":5.5}`, message: services.MsgIntensityRange},
		{name: "intensity huge", body: `{"input":"hi","intensity":1e300}`, message: services.MsgIntensityRange},
		{name: "array body", body: `["hi",5]`, message: services.MsgInputRequired},
		{name: "string body", body: `"hi"`, message: services.MsgInputRequired},
		{name: "number body", body: `42`, message: services.MsgInputRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{}
			router := newTestRouter(gen)

			code, payload := postGenerate(t, router, tt.body)

			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tt.message, payload["error"])
			assert.Zero(t, gen.calls, "generator must not be called")
		})
	}
}

func TestGenerate_UnparseableBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "truncated json", body: `{"input":`},
		{name: "not json", body: `input=hi&intensity=5`},
		{name: "empty body", body: ``},
		{name: "null body", body: `null`},
		{name: "null body with whitespace", body: " null\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{}
			router := newTestRouter(gen)

			code, payload := postGenerate(t, router, tt.body)

			assert.Equal(t, http.StatusInternalServerError, code)
			assert.Equal(t, services.MsgServerError, payload["error"])
			assert.Zero(t, gen.calls, "generator must not be called")
		})
	}
}

func TestGenerate_AttachesServerErrorsToContext(t *testing.T) {
	tests := []struct {
		name     string
		gen      *stubGenerator
		body     string
		attached bool
	}{
		{
			name:     "upstream failure",
			gen:      &stubGenerator{err: &services.GenerationError{StatusCode: http.StatusBadGateway, Message: services.MsgUpstreamFailed}},
			body:     `{"input":"hi","intensity":5}`,
			attached: true,
		},
		{
			name:     "unparseable body",
			gen:      &stubGenerator{},
			body:     `{"input":`,
			attached: true,
		},
		{
			name:     "validation failure",
			gen:      &stubGenerator{},
			body:     `{"input":"","intensity":5}`,
			attached: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			var errs []*gin.Error
			router := gin.New()
			router.Use(func(c *gin.Context) {
				c.Next()
				errs = c.Errors
			})
			router.POST("/api/generate", NewGenerationHandler(tt.gen).Generate)

			postGenerate(t, router, tt.body)

			if tt.attached {
				assert.Len(t, errs, 1)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestGenerate_ServiceErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "upstream status passthrough",
			err:     &services.GenerationError{StatusCode: http.StatusServiceUnavailable, Message: services.MsgUpstreamFailed},
			code:    http.StatusServiceUnavailable,
			message: services.MsgUpstreamFailed,
		},
		{
			name:    "configuration",
			err:     &services.GenerationError{StatusCode: http.StatusInternalServerError, Message: services.MsgConfiguration},
			code:    http.StatusInternalServerError,
			message: services.MsgConfiguration,
		},
		{
			name:    "untyped error",
			err:     errors.New("boom"),
			code:    http.StatusInternalServerError,
			message: services.MsgServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubGenerator{err: tt.err})

			code, payload := postGenerate(t, router, `{"input":"hi","intensity":5}`)

			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.message, payload["error"])
			assert.NotContains(t, payload, "responses")
		})
	}
}

func TestIntensities(t *testing.T) {
	router := newTestRouter(&stubGenerator{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/intensities", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Default int                      `json:"default"`
		Levels  []models.IntensityOption `json:"levels"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, 5, payload.Default)
	require.Len(t, payload.Levels, 10)
	assert.Equal(t, models.IntensityOption{Level: 1, Label: "温和委婉"}, payload.Levels[0])
	assert.Equal(t, models.IntensityOption{Level: 10, Label: "绝对碾压"}, payload.Levels[9])
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		cfg        *config.Config
		configured bool
	}{
		{
			name:       "configured",
			cfg:        &config.Config{Provider: config.ProviderOpenRouter, OpenRouterAPIKey: "sk-or-secret"},
			configured: true,
		},
		{
			name:       "missing key",
			cfg:        &config.Config{Provider: config.ProviderOpenRouter},
			configured: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", NewHealthHandler(tt.cfg).HealthCheck)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotContains(t, w.Body.String(), "sk-or-secret")

			var payload struct {
				Status   string `json:"status"`
				Provider struct {
					Configured bool `json:"configured"`
				} `json:"provider"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
			assert.Equal(t, "healthy", payload.Status)
			assert.Equal(t, tt.configured, payload.Provider.Configured)
		})
	}
}
