package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/dmitrymomot/mailop/middlewares"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

type errorBody struct {
	Error *HTTPError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// writeError renders err as a JSON error body. Server errors are logged
// with their cause.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	httpErr := AsHTTPError(err)
	out := *httpErr
	out.RequestID = middlewares.GetRequestID(r.Context())

	if out.Code >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed", slog.Any("error", err))
	}
	writeJSON(w, out.Code, errorBody{Error: &out})
}

// decodeJSON decodes the request body into v. An empty body leaves v
// untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil || mt != "application/json" {
			return ErrUnsupportedMediaType("content type must be application/json")
		}
	}

	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return NewHTTPError(http.StatusRequestEntityTooLarge, "request body too large", WithError(err))
		}
		return ErrBadRequest(fmt.Sprintf("invalid JSON body: %v", err), WithError(err), WithErrorCode("invalid_json"))
	}
	return nil
}
