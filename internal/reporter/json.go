package reporter

import (
	"encoding/json"
	"io"

	"github.com/opsdiff/opsdiff/internal/models"
)

// JSONReporter serializes a DiffResult for machine consumers.
type JSONReporter struct {
	writer io.Writer
}

// NewJSONReporter creates a reporter writing to the given writer.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{writer: w}
}

// Render writes the result as indented JSON.
func (r *JSONReporter) Render(result *models.DiffResult) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
