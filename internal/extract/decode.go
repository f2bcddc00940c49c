package extract

import (
	"encoding/json"
	"fmt"

	"github.com/civilsim/ansys-extract/schema"
)

// DecodeFieldSet turns sanitized, schema-valid JSON into a RawFieldSet
// total over the extraction catalog. Values of the wrong shape for their
// expected kind degrade to Unknown rather than failing the document.
func DecodeFieldSet(data []byte) (RawFieldSet, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode field set: %w", err)
	}

	out := make(RawFieldSet, len(schema.ExtractedFields))
	for _, f := range schema.ExtractedFields {
		raw, ok := m[f.Name]
		if !ok {
			out[f.Name] = schema.Unknown()
			continue
		}
		out[f.Name] = schema.Coerce(raw, f.Kind)
	}
	return out, nil
}
