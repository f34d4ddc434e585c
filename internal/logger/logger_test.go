package logger

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestFormatFields(t *testing.T) {
	assert.Equal(t, "", formatFields(nil))
	assert.Equal(t,
		"{duration_ms=12, path=/api/generate, ratio=0.50, status_code=200}",
		formatFields(Fields{
			"status_code": 200,
			"path":        "/api/generate",
			"duration_ms": int64(12),
			"ratio":       0.5,
		}),
	)
}

func TestFieldsMerge(t *testing.T) {
	base := Fields{"request_id": "abc", "model": "old"}

	merged := base.Merge(Fields{"model": "new", "intensity": 5})

	assert.Equal(t, "abc", merged["request_id"])
	assert.Equal(t, "new", merged["model"])
	assert.Equal(t, 5, merged["intensity"])
	assert.Equal(t, "old", base["model"], "merge must not mutate the receiver")
}

func TestFieldsMergeNilReceiver(t *testing.T) {
	var fields Fields
	merged := fields.Merge(Fields{"a": 1})
	assert.Equal(t, Fields{"a": 1}, merged)
}

func TestWithContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	c.Set("request_id", "req-1")

	fields := WithContext(c)

	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, http.MethodPost, fields["method"])
	assert.Equal(t, "/api/generate", fields["path"])
}

func TestLoggingWithoutSentryClient(t *testing.T) {
	// No Sentry client is bound in tests; logging must not panic
	assert.NotPanics(t, func() {
		Info("info", Fields{"k": "v"})
		Warn("warn", nil)
		Debug("debug", Fields{})
		Error("error", errors.New("boom"), Fields{"request_id": "r"})
		Error("error without cause", nil, nil)
	})
}

func TestErrorOutput(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	Error("upstream call failed", errors.New("connection reset"), Fields{"request_id": "r1"})
	Error("request failed", nil, Fields{"request_id": "r2"})

	out := buf.String()
	assert.Contains(t, out, "[ERROR] upstream call failed: connection reset {request_id=r1}")
	assert.Contains(t, out, "[ERROR] request failed {request_id=r2}")
	assert.NotContains(t, out, "<nil>")
}
