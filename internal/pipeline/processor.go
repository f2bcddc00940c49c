// Package pipeline drives the batch: discover report PDFs, run each one
// through load → extract → derive → assemble, and append the survivors to
// the ledger. Documents are processed one at a time; one bad report never
// aborts the run, but a backend outage or credential failure does.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/civilsim/ansys-extract/internal/assemble"
	"github.com/civilsim/ansys-extract/internal/derive"
	"github.com/civilsim/ansys-extract/internal/extract"
	"github.com/civilsim/ansys-extract/internal/ledger"
)

// Stats aggregates one batch run.
type Stats struct {
	Discovered int
	Succeeded  int
	Failed     int
}

// DocumentLoader yields the plain text of one report file. Satisfied by
// *report.Loader.
type DocumentLoader interface {
	Load(path string) (string, error)
}

// Processor coordinates the per-document stages against one ledger.
type Processor struct {
	logger    *slog.Logger
	loader    DocumentLoader
	extractor extract.FieldExtractor
	ledger    *ledger.Ledger
}

func NewProcessor(logger *slog.Logger, loader DocumentLoader, extractor extract.FieldExtractor, led *ledger.Ledger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		loader:    loader,
		extractor: extractor,
		ledger:    led,
	}
}

// Run processes every PDF under reportsDir in discovery order. Per-document
// failures are logged and counted; the error return is non-nil only for
// whole-run failures (discovery, backend outage/auth, ledger write).
// A record is appended only after extraction and derivation both succeed,
// so failed documents never consume an identifier.
func (p *Processor) Run(ctx context.Context, reportsDir string) (Stats, error) {
	start := time.Now()

	paths, err := Discover(reportsDir)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{Discovered: len(paths)}
	p.logger.Info("pipeline.start", "reports_dir", reportsDir, "documents", len(paths))

	for i, path := range paths {
		p.logger.Info("pipeline.document.start",
			"path", path,
			"index", i+1,
			"total", len(paths),
		)

		id, err := p.processOne(ctx, path)
		if err != nil {
			if errors.Is(err, extract.ErrBackendUnavailable) || errors.Is(err, extract.ErrBackendAuth) {
				// affects every remaining document identically
				return stats, fmt.Errorf("process %s: %w", path, err)
			}
			stats.Failed++
			p.logger.Error("pipeline.document.failed", "path", path, "error", err)
			continue
		}

		stats.Succeeded++
		p.logger.Info("pipeline.document.ok", "path", path, "id", id)
	}

	p.logger.Info("pipeline.done",
		"discovered", stats.Discovered,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return stats, nil
}

func (p *Processor) processOne(ctx context.Context, path string) (int64, error) {
	text, err := p.loader.Load(path)
	if err != nil {
		return 0, err
	}

	raw, err := p.extractor.Extract(ctx, text)
	if err != nil {
		return 0, err
	}

	derived := derive.Derive(raw)
	rec := assemble.Assemble(raw, derived)

	id, err := p.ledger.Append(rec)
	if err != nil {
		return 0, fmt.Errorf("append record: %w", err)
	}
	return id, nil
}
