package export

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/rshade/footprint/internal/footprint"
)

// WriteJSON writes the full assessment as indented JSON followed by a newline.
func WriteJSON(w io.Writer, assessment footprint.Assessment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(assessment); err != nil {
		return fmt.Errorf("encoding assessment: %w", err)
	}
	return nil
}

// WriteJSONValue writes any value as indented JSON. It is used for listings
// such as presets and configuration.
func WriteJSONValue(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
