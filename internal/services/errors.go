package services

import (
	"errors"
	"fmt"
	"net/http"
)

// User-facing error messages
const (
	MsgInputRequired   = "请输入对方说的话"
	MsgIntensityRange  = "语气强度必须在1-10之间"
	MsgConfiguration   = "服务配置错误"
	MsgUpstreamFailed  = "生成失败，请稍后重试"
	MsgEmptyContent    = "生成内容为空"
	MsgNoValidResponse = "未能生成有效回应"
	MsgServerError     = "服务器错误，请稍后重试"
)

// GenerationError is a terminal failure of a rebuttal request, carrying the HTTP status to answer with
type GenerationError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (status %d): %v", e.Message, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewValidationError returns a 400 error with the given message
func NewValidationError(message string) *GenerationError {
	return &GenerationError{StatusCode: http.StatusBadRequest, Message: message}
}

// NewInternalError returns the generic 500 for failures outside the generation flow, such as an unreadable body
func NewInternalError(err error) *GenerationError {
	return newServerError(MsgServerError, err)
}

func newServerError(message string, err error) *GenerationError {
	return &GenerationError{StatusCode: http.StatusInternalServerError, Message: message, Err: err}
}

// AsGenerationError converts any error into a GenerationError, defaulting to a generic 500
func AsGenerationError(err error) *GenerationError {
	if err == nil {
		return nil
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr
	}
	return newServerError(MsgServerError, err)
}
