package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/vvsql/vvsql/pkg/vizql"
	"github.com/vvsql/vvsql/pkg/vzerr"
)

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, apiSuccess{Status: "success", Data: map[string]string{
		"name":    "vvsql",
		"version": s.version,
	}})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Version: s.version})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, versionResponse{
		Version:  s.version,
		Features: []string{"duckdb", "postgres", "fileset", "vegalite"},
	})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BadRequest", "invalid request body: "+err.Error())
		return
	}

	parsed, err := vizql.Parse(req.Query)
	if err != nil {
		writeVzErr(w, err)
		return
	}

	specs := make([]any, len(parsed.Specs))
	vizTypes := make([]string, len(parsed.Specs))
	for i, spec := range parsed.Specs {
		specs[i] = spec
		vizTypes[i] = string(spec.VizType)
	}

	writeJSON(w, http.StatusOK, apiSuccess{Status: "success", Data: parseResult{
		SQLPortion: parsed.SQLPortion,
		VizPortion: parsed.VizPortion,
		Specs:      specs,
		VizTypes:   vizTypes,
	}})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BadRequest", "invalid request body: "+err.Error())
		return
	}

	reader := req.Reader
	if reader == "" {
		reader = s.reader
	}

	out, err := vizql.Run(r.Context(), s.registry, req.Query, reader)
	if err != nil {
		writeVzErr(w, err)
		return
	}

	spec := out.Specs[0]
	writeJSON(w, http.StatusOK, apiSuccess{Status: "success", Data: queryResult{
		Spec: out.Result.Document,
		Metadata: queryMetadata{
			Rows:     out.Result.Metadata.Rows,
			Columns:  out.Result.Metadata.Columns,
			VizType:  string(spec.VizType),
			Layers:   len(spec.Layers),
			Warnings: out.Result.Metadata.Warnings,
		},
	}})
}

// writeVzErr maps a *vzerr.Error to an HTTP status the way
// original_source/src/rest.rs's From<VizqlError> for ApiErrorResponse does:
// split/parse/model/backend errors are 400s, emit/io
// failures are 500s.
func writeVzErr(w http.ResponseWriter, err error) {
	ve, ok := vzerr.As(err, vzerr.KindSplit)
	if !ok {
		ve, ok = vzerr.As(err, vzerr.KindParse)
	}
	if !ok {
		ve, ok = vzerr.As(err, vzerr.KindModel)
	}
	if ok {
		writeError(w, http.StatusBadRequest, ve.Kind.String(), ve.Error())
		return
	}

	if ve, ok := vzerr.As(err, vzerr.KindBackend); ok {
		writeError(w, http.StatusBadRequest, ve.Kind.String(), ve.Error())
		return
	}

	if ve, ok := vzerr.As(err, vzerr.KindEmit); ok {
		writeError(w, http.StatusInternalServerError, ve.Kind.String(), ve.Error())
		return
	}
	if ve, ok := vzerr.As(err, vzerr.KindIO); ok {
		writeError(w, http.StatusInternalServerError, ve.Kind.String(), ve.Error())
		return
	}

	writeError(w, http.StatusInternalServerError, "InternalError", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, errType, message string) {
	writeJSON(w, status, apiError{Status: "error", Error: errorDetails{Message: message, Type: errType}})
}
