package cli

import (
	"bytes"
	"encoding/json"
	"strings"
)

// encodeList renders a JSON array on one line with ", " between elements
func encodeList(items []string) (string, error) {
	parts := make([]string, len(items))
	for i, item := range items {
		buf := new(bytes.Buffer)
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(item); err != nil {
			return "", err
		}
		parts[i] = strings.TrimSuffix(buf.String(), "\n")
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}
