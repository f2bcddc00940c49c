package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/civilsim/ansys-extract/schema"
)

var reCodeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// StripCodeFence unwraps a markdown code block if the backend wrapped its
// JSON in one, which chat models do despite instructions not to.
func StripCodeFence(content string) string {
	if m := reCodeFence.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(content)
}

// SanitizeMapping normalizes the backend's decoded JSON object before
// schema validation:
//   - drops keys outside the extraction catalog
//   - maps unknown-ish string markers ("unknown", "N/A", "null", "") to null
//   - leaves everything else untouched
//
// Returns the cleaned JSON plus the list of dropped/normalized keys for
// logging.
func SanitizeMapping(raw []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	allowed := make(map[string]struct{}, len(schema.ExtractedFields))
	for _, f := range schema.ExtractedFields {
		allowed[f.Name] = struct{}{}
	}

	var touched []string
	for k, v := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			touched = append(touched, k+"(unknown key)")
			continue
		}
		if s, ok := v.(string); ok {
			switch strings.ToLower(strings.TrimSpace(s)) {
			case "", "null", "none", "unknown", "n/a", "na":
				m[k] = nil
				touched = append(touched, k+"(marker)")
			}
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, fmt.Errorf("sanitize: encode: %w", err)
	}
	return b, touched, nil
}
