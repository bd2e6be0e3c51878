package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/rshade/footprint/internal/export"
	"github.com/rshade/footprint/internal/footprint"
)

// ExportFilename is the attachment name of POST /api/v1/export.
const ExportFilename = "emissions.csv"

// maxBodyBytes caps request bodies.
const maxBodyBytes = 64 << 10

// Handler serves the calculator endpoints.
type Handler struct {
	benchmarks footprint.Benchmarks
	version    string
}

// NewHandler creates a handler that compares totals against benchmarks.
func NewHandler(benchmarks footprint.Benchmarks, version string) *Handler {
	return &Handler{benchmarks: benchmarks, version: version}
}

// Health handles GET /health
func (h *Handler) Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}

// ListPresets handles GET /api/v1/presets
func (h *Handler) ListPresets(c *gin.Context) {
	writeJSON(c, http.StatusOK, PresetsResponse{Presets: footprint.Presets()})
}

// Calculate handles POST /api/v1/calculate
func (h *Handler) Calculate(c *gin.Context) {
	assessment, ok := h.assess(c)
	if !ok {
		return
	}
	writeJSON(c, http.StatusOK, assessment)
}

// Export handles POST /api/v1/export
func (h *Handler) Export(c *gin.Context) {
	assessment, ok := h.assess(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, assessment.Result); err != nil {
		abortWithError(c, http.StatusInternalServerError, CodeInternal, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFilename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// assess decodes the request body and runs the assessment, writing an error
// response and returning false on failure.
func (h *Handler) assess(c *gin.Context) (footprint.Assessment, bool) {
	log := zerolog.Ctx(c.Request.Context())

	req := CalculateRequest{Consumption: footprint.DefaultConsumption()}
	dec := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, CodeInvalidRequest, fmt.Errorf("decoding request body: %w", err))
		return footprint.Assessment{}, false
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, CodeInvalidRequest,
			errors.New("decoding request body: unexpected data after the JSON object"))
		return footprint.Assessment{}, false
	}

	kind, err := footprint.ParsePreset(req.Preset)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return footprint.Assessment{}, false
	}

	assessment, err := footprint.Assess(req.Consumption, footprint.Preset{Kind: kind, Manual: req.Factors}, h.benchmarks)
	if err != nil {
		log.Debug().Err(err).Str("preset", kind.String()).Msg("assessment rejected")
		abortWithAssessError(c, err)
		return footprint.Assessment{}, false
	}

	log.Debug().
		Str("preset", kind.String()).
		Float64("total_kg", assessment.Result.TotalKg).
		Str("verdict", assessment.Verdict.String()).
		Msg("footprint calculated")
	return assessment, true
}

// abortWithAssessError maps footprint errors to error codes.
func abortWithAssessError(c *gin.Context, err error) {
	var (
		inputErr   *footprint.InputError
		missingErr *footprint.MissingFactorError
	)
	switch {
	case errors.As(err, &missingErr):
		abortWithDetails(c, http.StatusBadRequest, CodeMissingCustomFactor, err,
			map[string]any{"missing": missingErr.Fields})
	case errors.As(err, &inputErr):
		abortWithDetails(c, http.StatusBadRequest, CodeInvalidInput, err,
			map[string]any{"field": inputErr.Field})
	case errors.Is(err, footprint.ErrInvalidInput):
		abortWithError(c, http.StatusBadRequest, CodeInvalidInput, err)
	default:
		abortWithError(c, http.StatusInternalServerError, CodeInternal, err)
	}
}

func abortWithError(c *gin.Context, status int, code string, err error) {
	abortWithDetails(c, status, code, err, nil)
}

func abortWithDetails(c *gin.Context, status int, code string, err error, details map[string]any) {
	_ = c.Error(err)
	writeJSON(c, status, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: err.Error(), Details: details},
	})
	c.Abort()
}

// writeJSON encodes v with goccy/go-json.
func writeJSON(c *gin.Context, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.Data(http.StatusInternalServerError, "application/json; charset=utf-8",
			[]byte(`{"error":{"code":"INTERNAL_ERROR","message":"encoding response"}}`))
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}
