// Package assemble folds extracted, derived and constant fields into one
// output record in the ledger's fixed column order.
package assemble

import (
	"github.com/civilsim/ansys-extract/internal/derive"
	"github.com/civilsim/ansys-extract/internal/extract"
	"github.com/civilsim/ansys-extract/schema"
)

// Record is one assembled ledger row: a value per data column, in
// schema.Columns order minus the identifier column. The identifier is
// assigned by the ledger at append time.
type Record struct {
	values map[string]schema.Value
}

// Assemble merges one document's extracted and derived fields with the
// constant table. Precedence, highest first: constants, derived,
// extracted. Columns with no source stay Unknown and render as NA.
func Assemble(raw extract.RawFieldSet, derived derive.DerivedFieldSet) Record {
	values := make(map[string]schema.Value, len(schema.Columns))
	for name, v := range raw {
		values[name] = v
	}
	for name, v := range derived {
		values[name] = v
	}
	for name, v := range schema.Constants {
		values[name] = v
	}
	return Record{values: values}
}

// Value returns the assembled value for a column, Unknown for columns the
// pipeline never populates.
func (r Record) Value(column string) schema.Value {
	if v, ok := r.values[column]; ok {
		return v
	}
	return schema.Unknown()
}

// Cells renders the record in ledger column order, excluding the
// identifier column.
func (r Record) Cells() []any {
	cells := make([]any, 0, len(schema.Columns)-1)
	for _, col := range schema.Columns {
		if col == schema.IDColumn {
			continue
		}
		cells = append(cells, r.Value(col).Cell())
	}
	return cells
}
