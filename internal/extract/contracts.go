package extract

import (
	"context"

	"github.com/civilsim/ansys-extract/schema"
)

// RawFieldSet maps every catalog parameter name to its extracted value.
// It is always total over schema.ExtractedFields: parameters the backend
// could not locate or parse carry schema.Unknown.
type RawFieldSet map[string]schema.Value

// Get returns the value for name, Unknown if the name was never set.
func (r RawFieldSet) Get(name string) schema.Value {
	if v, ok := r[name]; ok {
		return v
	}
	return schema.Unknown()
}

// FieldExtractor turns the plain text of one report into a RawFieldSet.
// Implementations classify outright failures with the sentinel errors in
// this package so the pipeline can decide between skipping the document
// and aborting the run.
type FieldExtractor interface {
	Extract(ctx context.Context, reportText string) (RawFieldSet, error)
}
