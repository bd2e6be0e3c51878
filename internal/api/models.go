package api

import "github.com/rshade/footprint/internal/footprint"

// Error codes returned in ErrorDetail.Code.
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeMissingCustomFactor = "MISSING_CUSTOM_FACTOR"
	CodeInternal            = "INTERNAL_ERROR"
)

// CalculateRequest is the body of POST /api/v1/calculate and /api/v1/export.
// Omitted consumption fields take the default household quantities.
type CalculateRequest struct {
	Consumption footprint.ConsumptionInput `json:"consumption"`
	Preset      string                     `json:"preset"`
	Factors     *footprint.ManualFactors   `json:"factors,omitempty"`
}

// PresetsResponse is the body of GET /api/v1/presets.
type PresetsResponse struct {
	Presets []footprint.PresetInfo `json:"presets"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse wraps every error body.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes one error.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
