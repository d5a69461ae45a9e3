// Package httpjson provides the JSON request/response plumbing shared by
// all BeanLedger features: encoding helpers, error mapping, a body
// decoder with a size limit, and router-level 404/panic handlers.
package httpjson

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/beanledger/beanledger/internal/app/system/apperrors"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies; loyalty payloads are tiny.
const maxBodyBytes = 1 << 20

// Respond writes v as a JSON response with the given status.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the uniform error payload: {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}

// Error maps err through the apperrors taxonomy and writes the JSON
// error payload. Storage-kind (and unclassified) errors are logged with
// their cause; the caller only sees a generic message.
func Error(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := apperrors.Status(err)
	if status == http.StatusInternalServerError && logger != nil {
		logger.Error("request failed", zap.Error(err))
	}
	Respond(w, status, errorBody{Error: apperrors.Message(err)})
}

// DecodeBody decodes the request body into dst, enforcing the size
// limit. A syntactically invalid or empty body yields a Validation
// error; handlers that treat body fields as optional should use
// pointer-typed request structs and check for nil after decoding.
func DecodeBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return apperrors.Validation("Unable to read request body.")
	}
	if len(body) == 0 {
		return apperrors.Validation("Request body is required.")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.Validation("Request body is not valid JSON.")
	}
	return nil
}

// NotFoundHandler serves unmatched routes with the fixed payload the
// API promises for unknown endpoints.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	Respond(w, http.StatusNotFound, errorBody{Error: "Endpoint not found."})
}

// Recoverer converts handler panics into a JSON 500 so no error escapes
// unhandled. It is installed once on the root router.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if logger != nil {
						logger.Error("handler panic",
							zap.Any("panic", rec),
							zap.String("path", r.URL.Path))
					}
					Respond(w, http.StatusInternalServerError,
						errorBody{Error: "Internal server error."})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
