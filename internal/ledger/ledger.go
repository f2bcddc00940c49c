// Package ledger appends assembled records to the Excel dataset, assigning
// each row the next Bridge ID. The workbook is read fully on open and
// written back once; single-process use only.
package ledger

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/civilsim/ansys-extract/internal/assemble"
	"github.com/civilsim/ansys-extract/schema"
)

// Ledger wraps one open workbook. Records land on the first sheet, in the
// columns named by its header row, so a template with reordered or extra
// columns still round-trips.
type Ledger struct {
	f       *excelize.File
	sheet   string
	columns []string // header row, 1-based position = slice index + 1
	idCol   int      // 1-based column of the identifier
	lastRow int      // 1-based row of the last populated row (header included)
	maxID   int64
	logger  *slog.Logger
}

// Open loads the template or existing dataset and indexes its header.
func Open(path string, logger *slog.Logger) (*Ledger, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open ledger %s: %w", path, err)
	}

	sheet := f.GetSheetName(0)
	if sheet == "" {
		_ = f.Close()
		return nil, fmt.Errorf("ledger %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("read ledger rows: %w", err)
	}
	if len(rows) == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("ledger %s is missing its header row", path)
	}

	l := &Ledger{
		f:       f,
		sheet:   sheet,
		columns: rows[0],
		lastRow: len(rows),
		logger:  logger,
	}
	for i, name := range rows[0] {
		if strings.TrimSpace(name) == schema.IDColumn {
			l.idCol = i + 1
			break
		}
	}
	if l.idCol == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("ledger %s has no %q column", path, schema.IDColumn)
	}

	for _, row := range rows[1:] {
		if len(row) < l.idCol {
			continue
		}
		if id, ok := parseID(row[l.idCol-1]); ok && id > l.maxID {
			l.maxID = id
		}
	}

	logger.Info("ledger.open",
		"path", path,
		"sheet", sheet,
		"columns", len(l.columns),
		"rows", l.lastRow-1,
		"max_id", l.maxID,
	)
	return l, nil
}

// NextID reports the identifier the next appended record will receive:
// one past the current maximum, 1 for an empty ledger.
func (l *Ledger) NextID() int64 {
	return l.maxID + 1
}

// Append writes one record on the next free row and assigns its
// identifier. Sequential and gap-free within a single process.
func (l *Ledger) Append(rec assemble.Record) (int64, error) {
	id := l.NextID()
	row := l.lastRow + 1

	set := func(col int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return l.f.SetCellValue(l.sheet, cell, v)
	}

	if err := set(l.idCol, id); err != nil {
		return 0, fmt.Errorf("write id: %w", err)
	}
	for i, name := range l.columns {
		col := i + 1
		if col == l.idCol {
			continue
		}
		if err := set(col, rec.Value(strings.TrimSpace(name)).Cell()); err != nil {
			return 0, fmt.Errorf("write column %q: %w", name, err)
		}
	}

	l.maxID = id
	l.lastRow = row
	l.logger.Info("ledger.append", "id", id, "row", row)
	return id, nil
}

// SaveAs writes the workbook to path.
func (l *Ledger) SaveAs(path string) error {
	start := time.Now()
	if err := l.f.SaveAs(path); err != nil {
		return fmt.Errorf("save ledger %s: %w", path, err)
	}
	l.logger.Info("ledger.saved",
		"path", path,
		"rows", l.lastRow-1,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// Close releases the workbook without saving.
func (l *Ledger) Close() error {
	return l.f.Close()
}

func parseID(cell string) (int64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, true
	}
	// spreadsheets hand numeric cells back with float formatting
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}
