package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/worktracker/internal/handler/gen"
)

// Error codes.
const (
	codeBadRequest = "bad_request"
	codeValidation = "validation_error"
	codeNotFound   = "not_found"
	codeConflict   = "conflict"
	codeInternal   = "internal_error"
	codeTooLarge   = "request_too_large"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "record not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody(codeNotFound, message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return errorBody(codeValidation, unwrapMessage(err))
}

// badRequestBody returns an ErrorResponse for input rejected before reaching
// the service layer (unparseable query parameter or unknown format).
func badRequestBody(err error) gen.ErrorResponse {
	return errorBody(codeBadRequest, err.Error())
}

// writeError writes the envelope outside the generated response types:
// binding failures, body-decoding failures and 500s.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the envelope always encodes; the client may have gone away
	json.NewEncoder(w).Encode(errorBody(code, message))
}

// paramError answers 400 for a path or query parameter the generated router
// could not bind (e.g. /api/records/abc or ?limit=ten).
func paramError(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
}

// requestError answers a body the strict handler could not decode:
// 413 when the body-size limit was hit, 400 otherwise.
func requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, tooLarge.Error())
		return
	}
	writeError(w, http.StatusBadRequest, codeBadRequest, "malformed request body: "+err.Error())
}

// responseError logs an unexpected handler or encoding error and hides it
// behind a 500. Anything already written to a buffered response is dropped.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", chimiddleware.GetReqID(r.Context()),
		"error", err,
	)
	if bw, ok := w.(*bufferedResponse); ok {
		bw.reset()
	}
	writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
}

// unwrapMessage extracts the human-readable part that follows the
// "validation error: " sentinel in a wrapped error chain.
// e.g. "service.RecordService.Create: validation error: duration must be >= 0" gives "duration must be >= 0"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// bufferedResponse holds the status, headers and body until the handler
// returns, so nothing reaches the client before encoding has succeeded.
type bufferedResponse struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedResponse) reset() {
	b.header = http.Header{}
	b.status = 0
	b.body.Reset()
}

func (b *bufferedResponse) flush(w http.ResponseWriter) {
	for k, v := range b.header {
		w.Header()[k] = v
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	w.WriteHeader(b.status)
	_, _ = w.Write(b.body.Bytes())
}

// bufferResponses runs next against a bufferedResponse and copies the result
// to w once next has returned.
func bufferResponses(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := &bufferedResponse{header: http.Header{}}
		next.ServeHTTP(bw, r)
		bw.flush(w)
	})
}

// requireSingleJSONValue rejects a request body carrying anything after its
// first JSON value, e.g. {"name":"a"} garbage. The generated strict handler
// decodes only the first value and would silently ignore the rest.
// An empty body passes through so the strict handler reports it.
func requireSingleJSONValue(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			requestError(w, r, err)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(raw))
		if len(bytes.TrimSpace(raw)) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		dec := json.NewDecoder(bytes.NewReader(raw))
		var first json.RawMessage
		if err := dec.Decode(&first); err != nil {
			requestError(w, r, err)
			return
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, codeBadRequest, "malformed request body: unexpected data after JSON value")
			return
		}
		next.ServeHTTP(w, r)
	})
}
