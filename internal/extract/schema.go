package extract

import "github.com/civilsim/ansys-extract/schema"

// BuildFieldJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// backend's field mapping as a generic map. Numeric parameters accept a
// number, a numeric string (scientific notation included), or null; text
// parameters additionally accept arrays (deformation ranges, reaction force
// vectors). Nothing is required: a missing key means unknown.
func BuildFieldJSONSchema() map[string]any {
	props := make(map[string]any, len(schema.ExtractedFields))
	for _, f := range schema.ExtractedFields {
		switch f.Kind {
		case schema.FieldText:
			props[f.Name] = map[string]any{
				"type": []string{"string", "number", "array", "null"},
			}
		default:
			props[f.Name] = map[string]any{
				"type": []string{"number", "string", "null"},
			}
		}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}
