package extraction

import (
	"encoding/json"
	"regexp"
	"strings"
)

// braceSpan greedily matches the first '{' through the last '}'. Not a real
// parser: it exists because hosted models sometimes wrap valid JSON in prose
// or markdown fences despite explicit instructions not to.
var braceSpan = regexp.MustCompile(`(?s)\{.*\}`)

// decodeModelJSON parses the model's response as a single JSON object. A
// strict parse is attempted first; on failure the first brace-delimited span
// is tried. Both failing yields ErrMalformedResponse.
func decodeModelJSON(text string) (map[string]any, error) {
	trimmed := strings.TrimSpace(text)

	var obj map[string]any
	if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
		return obj, nil
	}

	if span := braceSpan.FindString(trimmed); span != "" {
		obj = nil
		if err := json.Unmarshal([]byte(span), &obj); err == nil {
			return obj, nil
		}
	}

	return nil, ErrMalformedResponse
}
