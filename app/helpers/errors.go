package helpers

import (
	"errors"
	"net/http"

	"github.com/unrolled/render"
	"go.uber.org/zap"
)

// APIError is a domain error that already knows its HTTP status. Handlers
// pass every service/repository error through WriteError; anything that is
// not an APIError is treated as an unexpected store failure.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

var (
	ErrUnauthorized       = &APIError{Status: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrInvalidToken       = &APIError{Status: http.StatusUnauthorized, Message: "Invalid token"}
	ErrInvalidCredentials = &APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"}
	ErrForbidden          = &APIError{Status: http.StatusForbidden, Message: "Forbidden"}
	ErrNotFound           = &APIError{Status: http.StatusNotFound, Message: "Not found"}
)

// ValidationError covers bad input and propagated constraint violations.
func ValidationError(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: msg}
}

// WriteError renders a domain error as {"error": msg}. Unexpected errors are
// logged and answered with a generic 500 so internals never leak to clients.
func WriteError(rnd *render.Render, w http.ResponseWriter, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		_ = rnd.JSON(w, apiErr.Status, map[string]string{"error": apiErr.Message})
		return
	}
	zap.S().Errorf("unexpected error: %v", err)
	_ = rnd.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}
