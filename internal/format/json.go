package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// formatJSON reformats JSON in-process: sorted object keys, two-space
// indent, no trailing newline. The only formatter that does real work
// instead of delegating to an external tool.
func formatJSON(code string) (string, error) {
	var parsed any
	if err := json.Unmarshal([]byte(code), &parsed); err != nil {
		return "", fmt.Errorf("invalid json: %w", err)
	}

	// Maps marshal with sorted keys; the encoder is used so <, > and &
	// survive unescaped.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(parsed); err != nil {
		return "", fmt.Errorf("failed to encode json: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
