package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ErrBadRequest indicates a body that is not valid JSON for the endpoint.
type ErrBadRequest struct {
	Message string
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("invalid request body: %s", e.Message)
}

// ErrPayloadTooLarge indicates a body over MaxBodyBytes.
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Wrapped errors are unwrapped with errors.As.
func HTTPStatus(err error) int {
	var (
		badRequest *ErrBadRequest
		invalid    *types.ValidationError
		tooLarge   *ErrPayloadTooLarge
	)
	switch {
	case errors.As(err, &badRequest), errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage is the text sent to clients. Engine failures are not echoed.
func publicMessage(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "analysis failed"
	}
	return err.Error()
}
