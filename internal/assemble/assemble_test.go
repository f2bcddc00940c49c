package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civilsim/ansys-extract/internal/derive"
	"github.com/civilsim/ansys-extract/internal/extract"
	"github.com/civilsim/ansys-extract/schema"
)

func TestAssembleConstantsOverrideExtracted(t *testing.T) {
	raw := extract.RawFieldSet{
		schema.NumStrands:       schema.Number(8), // backend misread; rig always has 6
		schema.InclinationAngle: schema.Number(15),
		schema.AppliedForce:     schema.Number(-1703),
	}

	rec := Assemble(raw, derive.DerivedFieldSet{})

	n, ok := rec.Value(schema.NumStrands).Number()
	require.True(t, ok)
	assert.Equal(t, 6.0, n)

	a, ok := rec.Value(schema.InclinationAngle).Number()
	require.True(t, ok)
	assert.Equal(t, 0.0, a)

	f, ok := rec.Value(schema.AppliedForce).Number()
	require.True(t, ok)
	assert.Equal(t, -1703.0, f)
}

func TestAssembleCategoricalDefaults(t *testing.T) {
	rec := Assemble(extract.RawFieldSet{}, derive.DerivedFieldSet{})

	for col, want := range map[string]string{
		"Bridge Type":  "Truss",
		"Joint Design": "Bonded",
		"Load Type":    "Point",
		"Support Type": "Fixed",
	} {
		got, ok := rec.Value(col).Text()
		require.True(t, ok, col)
		assert.Equal(t, want, got, col)
	}

	sym, ok := rec.Value("Symmetry").Number()
	require.True(t, ok)
	assert.Equal(t, 1.0, sym)
}

func TestAssembleMergesDerived(t *testing.T) {
	raw := extract.RawFieldSet{schema.StrainEnergy: schema.Number(4.82)}
	derived := derive.DerivedFieldSet{
		schema.WorkDone:       schema.Number(5.43),
		schema.EnergyResidual: schema.Number(0.61),
		schema.YieldResidual:  schema.Number(0),
		schema.MaxFailureLoad: schema.Number(173.8),
	}

	rec := Assemble(raw, derived)

	wd, ok := rec.Value(schema.WorkDone).Number()
	require.True(t, ok)
	assert.Equal(t, 5.43, wd)

	se, ok := rec.Value(schema.StrainEnergy).Number()
	require.True(t, ok)
	assert.Equal(t, 4.82, se)
}

func TestAssembleUnsourcedColumnsAreNA(t *testing.T) {
	rec := Assemble(extract.RawFieldSet{}, derive.DerivedFieldSet{})

	for _, col := range []string{
		"Load Location (x, y, z)",
		"Support Locations",
		"Element Type",
		"Stress Equilibrium Residual",
		"Constitutive Law Residual",
	} {
		assert.Equal(t, schema.NA, rec.Value(col).Cell(), col)
	}
}

func TestCellsMatchColumnOrder(t *testing.T) {
	rec := Assemble(extract.RawFieldSet{
		schema.BridgeLength: schema.Number(1.016),
	}, derive.DerivedFieldSet{})

	cells := rec.Cells()
	require.Len(t, cells, len(schema.Columns)-1)

	// Bridge Length is the first data column after the identifier
	assert.Equal(t, 1.016, cells[0])
	// Bridge Type sits at its fixed position
	for i, col := range schema.Columns[1:] {
		if col == "Bridge Type" {
			assert.Equal(t, "Truss", cells[i])
		}
	}
}
