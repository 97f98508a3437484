// Package handler provides shared helpers for the storefront's JSON handlers:
// response encoding, request decoding, and domain-error-to-status mapping.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/fitgirl/storefront/internal/domain"
	"github.com/fitgirl/storefront/internal/middleware"
)

// RespondJSON writes data as a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out, so the best we can do is log it.
		slog.Default().Error("failed to encode response", "error", err)
	}
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// RespondError maps a domain error to an HTTP status and writes the JSON body.
// Internal errors are logged with the request-scoped logger and masked with a
// generic message so internals never leak to shoppers.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsValidationError(err) {
		RespondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  err.Error(),
			Fields: domain.GetValidationFields(err),
		})
		return
	}

	code := domain.ErrorCode(err)
	status := statusFromCode(code)

	if status == http.StatusInternalServerError {
		middleware.GetLogger(r.Context()).Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		RespondJSON(w, status, ErrorResponse{Error: "internal error"})
		return
	}

	RespondJSON(w, status, ErrorResponse{Error: domain.ErrorMessage(err)})
}

func statusFromCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.ENOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON decodes a request body into dst, rejecting malformed or
// oversized payloads with an EINVALID error suitable for RespondError.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return domain.Invalid("handler.DecodeJSON", "request body too large")
		case errors.Is(err, io.EOF):
			return domain.Invalid("handler.DecodeJSON", "request body is required")
		default:
			return domain.Invalid("handler.DecodeJSON", "invalid request body")
		}
	}
	return nil
}
