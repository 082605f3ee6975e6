package report

import (
	"io"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/sawala-tech/lembar/internal/inspect"
	"github.com/sawala-tech/lembar/internal/utils"
	"github.com/xuri/excelize/v2"
)

// Thumbnail sizing: photos are first fitted proportionally into
// thumbWidth x thumbHeight, then placed into the photo column scaled to at
// most cellWidth x cellHeight points.
const (
	thumbWidth  = 400
	thumbHeight = 300
	cellWidth   = 120
	cellHeight  = 90
)

// RowBuilder writes one inspection entry onto one worksheet row. Column
// assignment is static; empty fields produce empty cells, never shifted
// ones. Photo problems degrade to a photo-less row.
type RowBuilder struct {
	f       *excelize.File
	sheet   string
	layout  Layout
	tempDir string
	logger  *slog.Logger
}

// NewRowBuilder creates a RowBuilder writing into f. Temporary thumbnail
// files are created under tempDir; the caller owns their deletion.
func NewRowBuilder(f *excelize.File, sheet string, layout Layout, tempDir string, logger *slog.Logger) *RowBuilder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &RowBuilder{f: f, sheet: sheet, layout: layout, tempDir: tempDir, logger: logger}
}

// Build writes the entry onto the row for batch position index (0-based).
// It returns the path of the temporary thumbnail it created, or "" when the
// row has no embedded photo.
func (b *RowBuilder) Build(entry inspect.Entry, index int) string {
	row := b.layout.Row(index)

	b.setCell(b.layout.SequenceColumn, row, entry.No)
	b.setCell(b.layout.RouteColumn, row, entry.Route)
	b.setText(b.layout.LatitudeColumn, row, entry.Latitude)
	b.setText(b.layout.LongitudeColumn, row, entry.Longitude)

	// Exactly one marker column is set; the other two are written empty
	// so a reused template never carries stale marks.
	b.setText(b.layout.GoodColumn, row, b.markerIf(entry.Condition == inspect.ConditionGood))
	b.setText(b.layout.MediumColumn, row, b.markerIf(entry.Condition == inspect.ConditionMedium))
	b.setText(b.layout.BadColumn, row, b.markerIf(entry.Condition == inspect.ConditionBad))

	b.setText(b.layout.NotesColumn, row, entry.Notes)

	if entry.PhotoPath == "" {
		return ""
	}
	return b.embedPhoto(entry.PhotoPath, row)
}

func (b *RowBuilder) markerIf(on bool) string {
	if on {
		return b.layout.Marker
	}
	return ""
}

func (b *RowBuilder) setCell(column string, row int, value interface{}) {
	cell := b.layout.Cell(column, row)
	if err := b.f.SetCellValue(b.sheet, cell, value); err != nil {
		b.logger.Warn("failed to set cell", "cell", cell, "error", err)
	}
}

func (b *RowBuilder) setText(column string, row int, value string) {
	cell := b.layout.Cell(column, row)
	if err := b.f.SetCellStr(b.sheet, cell, value); err != nil {
		b.logger.Warn("failed to set cell", "cell", cell, "error", err)
	}
}

// embedPhoto thumbnails the photo and anchors it to the photo column of the
// row. Any failure is logged and leaves the row photo-less.
func (b *RowBuilder) embedPhoto(photoPath string, row int) string {
	img, _, err := utils.LoadImage(photoPath)
	if err != nil {
		b.logger.Warn("photo not usable", "photo", photoPath, "row", row, "error", err)
		return ""
	}

	thumb := imaging.Fit(img, thumbWidth, thumbHeight, imaging.Lanczos)
	thumbPath, err := utils.SaveTempPNG(thumb, b.tempDir, "lembar-thumb-*.png")
	if err != nil {
		b.logger.Warn("failed to write thumbnail", "photo", photoPath, "row", row, "error", err)
		return ""
	}

	bounds := thumb.Bounds()
	scaleX := float64(cellWidth) / float64(bounds.Dx())
	scaleY := float64(cellHeight) / float64(bounds.Dy())
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	cell := b.layout.Cell(b.layout.PhotoColumn, row)
	err = b.f.AddPicture(b.sheet, cell, thumbPath, &excelize.GraphicOptions{
		ScaleX: scale,
		ScaleY: scale,
	})
	if err != nil {
		b.logger.Warn("failed to embed photo", "photo", photoPath, "cell", cell, "error", err)
		return thumbPath
	}

	b.logger.Debug("embedded photo", "photo", photoPath, "cell", cell)
	return thumbPath
}
