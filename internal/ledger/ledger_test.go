package ledger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/civilsim/ansys-extract/internal/assemble"
	"github.com/civilsim/ansys-extract/internal/derive"
	"github.com/civilsim/ansys-extract/internal/extract"
	"github.com/civilsim/ansys-extract/schema"
)

// writeTemplate creates a workbook with the ledger header and optional
// pre-existing data rows (each row is id plus NA data cells).
func writeTemplate(t *testing.T, dir string, existingIDs ...int64) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, h := range schema.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	for r, id := range existingIDs {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, id))
		for c := 2; c <= len(schema.Columns); c++ {
			cell, err := excelize.CoordinatesToCellName(c, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, schema.NA))
		}
	}

	path := filepath.Join(dir, "template.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func record(t *testing.T, force float64) assemble.Record {
	t.Helper()
	raw := extract.RawFieldSet{schema.AppliedForce: schema.Number(force)}
	return assemble.Assemble(raw, derive.Derive(raw))
}

func TestOpenRejectsMissingIDColumn(t *testing.T) {
	dir := t.TempDir()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Something Else"))
	path := filepath.Join(dir, "bad.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := Open(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), schema.IDColumn)
}

func TestOpenRejectsMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.xlsx"), nil)
	assert.Error(t, err)
}

func TestAppendAssignsSequentialIDsFromEmpty(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir)

	l, err := Open(path, nil)
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, int64(1), l.NextID())

	id1, err := l.Append(record(t, 100))
	require.NoError(t, err)
	id2, err := l.Append(record(t, 200))
	require.NoError(t, err)

	assert.Equal(t, int64(1), id1)
	assert.Equal(t, int64(2), id2)
	assert.Equal(t, int64(3), l.NextID())
}

func TestAppendContinuesFromExistingIDs(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir, 1, 2, 7)

	l, err := Open(path, nil)
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, int64(8), l.NextID())

	id, err := l.Append(record(t, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir)

	l, err := Open(path, nil)
	require.NoError(t, err)

	raw := extract.RawFieldSet{
		schema.AppliedForce:      schema.Number(100),
		schema.MinMaxDeformation: schema.Text("[0.0, 0.02]"),
		schema.StrainEnergy:      schema.Number(1.5),
	}
	_, err = l.Append(assemble.Assemble(raw, derive.Derive(raw)))
	require.NoError(t, err)

	out := filepath.Join(dir, "out.xlsx")
	require.NoError(t, l.SaveAs(out))
	require.NoError(t, l.Close())

	// reopen the saved file and check the appended row landed intact
	reopened, err := Open(out, nil)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, int64(2), reopened.NextID())

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	colIndex := func(name string) int {
		for i, h := range rows[0] {
			if h == name {
				return i
			}
		}
		t.Fatalf("column %q not found", name)
		return -1
	}

	dataRow := rows[1]
	assert.Equal(t, "1", dataRow[colIndex(schema.IDColumn)])
	assert.Equal(t, "100", dataRow[colIndex(schema.AppliedForce)])
	assert.Equal(t, "1", dataRow[colIndex(schema.WorkDone)])
	assert.Equal(t, "0.5", dataRow[colIndex(schema.EnergyResidual)])
	assert.Equal(t, "Truss", dataRow[colIndex("Bridge Type")])
	assert.Equal(t, schema.NA, dataRow[colIndex("Element Type")])
	assert.Equal(t, schema.NA, dataRow[colIndex(schema.SafetyFactor)])
}

func TestAppendHonorsTemplateColumnOrder(t *testing.T) {
	dir := t.TempDir()

	// template with identifier in the middle and a custom extra column
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{schema.AppliedForce, schema.IDColumn, "Reviewer Notes", schema.WorkDone}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	path := filepath.Join(dir, "custom.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	l, err := Open(path, nil)
	require.NoError(t, err)

	_, err = l.Append(record(t, -50))
	require.NoError(t, err)

	out := filepath.Join(dir, "out.xlsx")
	require.NoError(t, l.SaveAs(out))
	require.NoError(t, l.Close())

	g, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer g.Close()
	rows, err := g.GetRows(g.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "-50", rows[1][0])     // Applied Force stays in column A
	assert.Equal(t, "1", rows[1][1])       // identifier in column B
	assert.Equal(t, schema.NA, rows[1][2]) // unsourced custom column
	assert.Equal(t, schema.NA, rows[1][3]) // work done unknown without deformation
}
