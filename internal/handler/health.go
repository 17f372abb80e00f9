package handler

import (
	"context"
	"net/http"

	"github.com/pkordes/worktracker/internal/handler/gen"
	"github.com/pkordes/worktracker/openapi"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

// GetOpenAPI serves the embedded API document at GET /openapi.yaml. It is
// mounted beside the generated router because the document does not
// describe itself.
func GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openapi.Document)
}
