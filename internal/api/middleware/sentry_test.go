package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Conceptual-Machines/retort-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiRequest struct {
	endpoint   string
	statusCode int
}

type requestRecorder struct {
	requests []apiRequest
}

func (r *requestRecorder) RecordAPIRequest(_ context.Context, endpoint string, statusCode int, _ time.Duration) {
	r.requests = append(r.requests, apiRequest{endpoint: endpoint, statusCode: statusCode})
}

func (r *requestRecorder) RecordGeneration(context.Context, string, time.Duration, int) {}

func (r *requestRecorder) RecordTokenUsage(context.Context, string, int64, int64, int64) {}

func TestRequestTracking(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := &requestRecorder{}
	router := gin.New()
	router.Use(RequestTracking(recorder))
	router.GET("/items/:id", func(c *gin.Context) {
		assert.NotEmpty(t, c.GetString("request_id"))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))

	_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, []apiRequest{
		{endpoint: "/items/:id", statusCode: http.StatusNoContent},
		{endpoint: "unmatched", statusCode: http.StatusNotFound},
	}, recorder.requests)
}

func TestRequestTrackingLogsAttachedError(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestTracking(&requestRecorder{}))
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("upstream exploded"))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed"})
	})
	router.GET("/bare", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "[ERROR]"))
	assert.Contains(t, out, "Request failed with server error: upstream exploded")

	buf.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bare", nil))

	out = buf.String()
	assert.Equal(t, 1, strings.Count(out, "[ERROR]"))
	assert.NotContains(t, out, "<nil>")
}

func TestRecoverWithSentry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RecoverWithSentry())
	router.Use(SentryMiddleware())
	router.GET("/panic", func(*gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, services.MsgServerError, payload["error"])
}
