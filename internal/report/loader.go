// Package report reads simulation report PDFs into plain text for the
// extraction pipeline.
package report

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrUnreadableDocument classifies every way a report can fail to load:
// missing, empty, encrypted, not a PDF, or without extractable text. The
// pipeline skips such documents and moves on.
var ErrUnreadableDocument = errors.New("unreadable document")

const (
	defaultMaxFileSize = 100 * 1024 * 1024
	maxTextSize        = 10 * 1024 * 1024
)

// Loader extracts plain text from report PDFs.
type Loader struct {
	maxFileSize int64
	logger      *slog.Logger
}

func NewLoader(maxFileSize int64, logger *slog.Logger) *Loader {
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxFileSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{maxFileSize: maxFileSize, logger: logger}
}

// Load validates the file is a readable PDF and returns its concatenated
// page text. Pages whose text extraction fails are skipped; a document
// with no extractable text at all is unreadable.
func (l *Loader) Load(path string) (string, error) {
	start := time.Now()

	if err := l.validate(path); err != nil {
		return "", err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open pdf %s: %v", ErrUnreadableDocument, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.Warn("report.close_error", "path", path, "error", cerr)
		}
	}()

	var b strings.Builder
	pages := 0
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			l.logger.Warn("report.page_skip", "path", path, "page", pageNum, "error", err)
			continue
		}
		if b.Len()+len(content) > maxTextSize {
			remaining := maxTextSize - b.Len()
			if remaining > 0 {
				b.WriteString(content[:remaining])
			}
			pages++
			break
		}
		b.WriteString(content)
		b.WriteString("\n")
		pages++
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no extractable text in %s", ErrUnreadableDocument, path)
	}

	l.logger.Info("report.loaded",
		"path", path,
		"pages", pages,
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// validate performs the structural checks before text extraction: regular
// file, sane size, and a PDF that pdfcpu can read through to a page count.
func (l *Loader) validate(path string) error {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: file does not exist: %s", ErrUnreadableDocument, path)
	}
	if err != nil {
		return fmt.Errorf("%w: cannot access file %s: %v", ErrUnreadableDocument, path, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%w: path is a directory: %s", ErrUnreadableDocument, path)
	}
	if fileInfo.Size() == 0 {
		return fmt.Errorf("%w: file is empty: %s", ErrUnreadableDocument, path)
	}
	if fileInfo.Size() > l.maxFileSize {
		return fmt.Errorf("%w: file too large: %d bytes (max %d)",
			ErrUnreadableDocument, fileInfo.Size(), l.maxFileSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrUnreadableDocument, path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			l.logger.Warn("report.close_error", "path", path, "error", cerr)
		}
	}()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	ctx, err := api.ReadContext(file, conf)
	if err != nil {
		return fmt.Errorf("%w: not a valid PDF %s: %v", ErrUnreadableDocument, path, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return fmt.Errorf("%w: page count %s: %v", ErrUnreadableDocument, path, err)
	}
	return nil
}
