// Package report assembles digitized inspection entries into the official
// spreadsheet template: header metadata, one fixed-layout row per entry,
// embedded photo thumbnails, timestamped output file.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sawala-tech/lembar/internal/extract"
	"github.com/sawala-tech/lembar/internal/inspect"
	"github.com/xuri/excelize/v2"
)

// DefaultAssetName is written into the header when no asset name is given.
const DefaultAssetName = "Nama Aset"

// outputTimestampFormat stamps generated filenames for uniqueness across
// repeated generations.
const outputTimestampFormat = "20060102-150405"

// CoordinateExtractor recovers a coordinate pair from a photo. Entries that
// already carry coordinates never reach it.
type CoordinateExtractor interface {
	Extract(ctx context.Context, imagePath string) extract.Result
}

// Options carries the per-generation header metadata.
type Options struct {
	// ScheduleDate is written into the header date cell; the zero time
	// means "now".
	ScheduleDate time.Time
	// AssetName is written into the merged asset-name cell;
	// empty means DefaultAssetName.
	AssetName string
}

// Assembler generates report workbooks. It holds no state between calls;
// concurrent calls each load their own workbook and use their own temp
// files, so no locking is needed.
type Assembler struct {
	layout    Layout
	extractor CoordinateExtractor
	outputDir string
	logger    *slog.Logger
	now       func() time.Time
}

// NewAssembler creates an Assembler. The extractor may be nil, in which
// case entries without coordinates get empty coordinate cells. A nil
// logger discards output.
func NewAssembler(layout Layout, extractor CoordinateExtractor, outputDir string, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Assembler{
		layout:    layout,
		extractor: extractor,
		outputDir: outputDir,
		logger:    logger,
		now:       time.Now,
	}
}

// Generate loads the template, writes the header and one row per entry in
// order, and persists the workbook to a timestamped file in the output
// directory, returning its path.
//
// Only a missing template or an unwritable output location fail the call;
// every per-entry problem (unreadable photo, failed extraction, failed
// embed) degrades to empty cells on that row. Temporary per-entry files
// are deleted on every exit path.
func (a *Assembler) Generate(ctx context.Context, entries []inspect.Entry, templatePath string, opts Options) (string, error) {
	if _, err := os.Stat(templatePath); err != nil {
		return "", &GenerateError{Kind: ErrTemplateNotFound, Path: templatePath, Err: err}
	}
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return "", &GenerateError{Kind: ErrTemplateNotFound, Path: templatePath, Err: err}
	}
	defer func() { _ = f.Close() }()

	sheet := a.layout.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	a.writeHeader(f, sheet, opts)

	tempDir, err := os.MkdirTemp("", "lembar-report-*")
	if err != nil {
		return "", &GenerateError{Kind: ErrWriteFailure, Path: a.outputDir, Err: err}
	}
	// Per-entry temp files go under one directory, removed regardless of
	// how this call exits.
	defer func() { _ = os.RemoveAll(tempDir) }()

	builder := NewRowBuilder(f, sheet, a.layout, tempDir, a.logger)
	for i, entry := range entries {
		cleanup := a.prepareEntry(ctx, &entry)
		builder.Build(entry, i)
		cleanup()
	}

	outputPath, err := a.save(f)
	if err != nil {
		return "", err
	}

	a.logger.Info("report generated",
		"output", outputPath,
		"entries", len(entries))
	return outputPath, nil
}

// writeHeader fills the schedule-date and asset-name cells.
func (a *Assembler) writeHeader(f *excelize.File, sheet string, opts Options) {
	date := opts.ScheduleDate
	if date.IsZero() {
		date = a.now()
	}
	if err := f.SetCellStr(sheet, a.layout.DateCell, FormatScheduleDate(date)); err != nil {
		a.logger.Warn("failed to write schedule date", "cell", a.layout.DateCell, "error", err)
	}

	asset := opts.AssetName
	if asset == "" {
		asset = DefaultAssetName
	}
	if err := f.SetCellStr(sheet, a.layout.AssetCell, asset); err != nil {
		a.logger.Warn("failed to write asset name", "cell", a.layout.AssetCell, "error", err)
	}
}

// prepareEntry resolves the photo reference and fills missing coordinates
// via extraction. All failures degrade: the entry keeps going with an empty
// photo and/or empty coordinates. The returned cleanup releases any
// transient files behind the resolved photo and must run after the row is
// built; it is never nil.
func (a *Assembler) prepareEntry(ctx context.Context, entry *inspect.Entry) func() {
	noop := func() {}
	if entry.PhotoPath == "" {
		return noop
	}

	photo, cleanup, err := inspect.ResolvePhoto(entry.PhotoPath)
	if err != nil {
		a.logger.Warn("photo unavailable",
			"entry", entry.No, "photo", entry.PhotoPath, "error", err)
		entry.PhotoPath = ""
		return noop
	}
	entry.PhotoPath = photo

	if entry.HasCoordinates() || a.extractor == nil {
		return cleanup
	}
	res := a.extractor.Extract(ctx, photo)
	entry.Latitude = res.Latitude
	entry.Longitude = res.Longitude
	return cleanup
}

// save persists the workbook under a timestamped name.
func (a *Assembler) save(f *excelize.File) (string, error) {
	if a.outputDir != "" {
		if err := os.MkdirAll(a.outputDir, 0o750); err != nil {
			return "", &GenerateError{Kind: ErrWriteFailure, Path: a.outputDir, Err: err}
		}
	}
	filename := fmt.Sprintf("output-%s.xlsx", a.now().Format(outputTimestampFormat))
	outputPath := filepath.Join(a.outputDir, filename)
	if err := f.SaveAs(outputPath); err != nil {
		return "", &GenerateError{Kind: ErrWriteFailure, Path: outputPath, Err: err}
	}
	return outputPath, nil
}
