package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/Conceptual-Machines/retort-api/internal/models"
	"github.com/Conceptual-Machines/retort-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RebuttalGenerator produces rebuttal lines for a validated request
type RebuttalGenerator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error)
}

type GenerationHandler struct {
	service RebuttalGenerator
}

func NewGenerationHandler(service RebuttalGenerator) *GenerationHandler {
	return &GenerationHandler{
		service: service,
	}
}

// GenerateResponse is the success body of POST /api/generate
type GenerateResponse struct {
	Responses []string `json:"responses"`
}

// Generate handles POST /api/generate
func (h *GenerationHandler) Generate(c *gin.Context) {
	req, err := decodeGenerationRequest(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	// Validate before touching the upstream so bad input never costs a call
	if err := services.ValidateRequest(req); err != nil {
		h.writeError(c, err)
		return
	}

	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{Responses: result.Responses})
}

// writeError answers with the error's status and message and attaches the error to the
// context, where the request tracking middleware logs it once
func (h *GenerationHandler) writeError(c *gin.Context, err error) {
	genErr := services.AsGenerationError(err)
	if genErr.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(genErr.StatusCode, gin.H{"error": genErr.Message})
}

var (
	errInvalidJSON = errors.New("request body is not valid JSON")
	errNullBody    = errors.New("request body is null")
)

// decodeGenerationRequest reads the JSON body field by field so a wrongly typed
// field maps to its own validation message instead of a generic decode error.
// A body that is not JSON at all, or is JSON null, is a server error like any
// other unexpected failure; any other non-object value simply has no fields.
func decodeGenerationRequest(c *gin.Context) (models.GenerationRequest, error) {
	var req models.GenerationRequest

	body, err := c.GetRawData()
	if err != nil {
		return req, services.NewInternalError(fmt.Errorf("failed to read request body: %w", err))
	}

	if !json.Valid(body) {
		return req, services.NewInternalError(errInvalidJSON)
	}
	if string(bytes.TrimSpace(body)) == "null" {
		return req, services.NewInternalError(errNullBody)
	}

	// Arrays, strings and numbers carry no fields
	var fields map[string]json.RawMessage
	_ = json.Unmarshal(body, &fields)

	input, ok := decodeString(fields["input"])
	if !ok {
		return req, services.NewValidationError(services.MsgInputRequired)
	}
	req.Input = input

	intensity, ok := decodeIntensity(fields["intensity"])
	if !ok {
		// Blank input still wins over a bad intensity
		if err := services.ValidateRequest(req); err != nil {
			return req, err
		}
		return req, services.NewValidationError(services.MsgIntensityRange)
	}
	req.Intensity = intensity

	return req, nil
}

func decodeString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// decodeIntensity accepts JSON numbers with an integral value in range
func decodeIntensity(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	if n != math.Trunc(n) || n < models.MinIntensity || n > models.MaxIntensity {
		return 0, false
	}
	return int(n), true
}

// Intensities handles GET /api/intensities
func Intensities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default": models.DefaultIntensity,
		"levels":  models.IntensityLevels(),
	})
}
