package formatter

import (
	"encoding/json"
)

// JSONFormatter outputs a DraftResult as pretty-printed JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns the DraftResult as indented JSON.
func (f *JSONFormatter) Format(result DraftResult) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		// Fallback: should never happen since DraftResult is fully serializable.
		return `{"error": "failed to marshal result"}`
	}
	return string(data)
}
