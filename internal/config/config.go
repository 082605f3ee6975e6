package config

import (
	"fmt"

	"github.com/sawala-tech/lembar/internal/enhance"
	"github.com/sawala-tech/lembar/internal/geo"
	"github.com/sawala-tech/lembar/internal/ocr"
	"github.com/sawala-tech/lembar/internal/report"
)

// DefaultConfig returns the configuration used when no file, environment
// variable or flag overrides a value.
func DefaultConfig() *Config {
	box := geo.DefaultBoundingBox()
	enh := enhance.DefaultConfig()
	opts := ocr.DefaultOptions()
	return &Config{
		LogLevel: "info",
		Geo: GeoConfig{
			MinLat: box.MinLat,
			MaxLat: box.MaxLat,
			MinLon: box.MinLon,
			MaxLon: box.MaxLon,
		},
		OCR: OCRConfig{
			Languages:    opts.Languages,
			Whitelist:    opts.Whitelist,
			PageSegModes: opts.PageSegModes,
		},
		Enhance: EnhanceConfig{
			Scale:    enh.Scale,
			Contrast: enh.Contrast,
			Sharpen:  enh.Sharpen,
			Invert:   enh.Invert,
		},
		Report: ReportConfig{
			TemplatePath: "uploads/template.xlsx",
			OutputDir:    "uploads",
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			CORSOrigin:      "*",
			MaxUploadMB:     50,
			TimeoutSec:      120,
			ShutdownTimeout: 10,
		},
	}
}

// Validate checks the whole configuration tree.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if err := c.BoundingBox().Validate(); err != nil {
		return fmt.Errorf("geo: %w", err)
	}
	if err := c.EnhanceConfig().Validate(); err != nil {
		return fmt.Errorf("enhance: %w", err)
	}
	if err := c.Layout().Validate(); err != nil {
		return fmt.Errorf("report layout: %w", err)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Server.MaxUploadMB < 1 {
		return fmt.Errorf("invalid max upload size %d MB", c.Server.MaxUploadMB)
	}
	return nil
}

// BoundingBox converts the geo section into the validator's box.
func (c *Config) BoundingBox() geo.BoundingBox {
	return geo.BoundingBox{
		MinLat: c.Geo.MinLat,
		MaxLat: c.Geo.MaxLat,
		MinLon: c.Geo.MinLon,
		MaxLon: c.Geo.MaxLon,
	}
}

// OCROptions converts the ocr section into recognizer options.
func (c *Config) OCROptions() ocr.Options {
	return ocr.Options{
		Languages:    c.OCR.Languages,
		Whitelist:    c.OCR.Whitelist,
		PageSegModes: c.OCR.PageSegModes,
	}
}

// EnhanceConfig converts the enhance section into the enhancer's config.
func (c *Config) EnhanceConfig() enhance.Config {
	return enhance.Config{
		Scale:    c.Enhance.Scale,
		Contrast: c.Enhance.Contrast,
		Sharpen:  c.Enhance.Sharpen,
		Invert:   c.Enhance.Invert,
		TempDir:  c.Enhance.TempDir,
	}
}

// Layout merges the layout section over the built-in template geometry;
// zero-valued fields keep the defaults.
func (c *Config) Layout() report.Layout {
	l := report.DefaultLayout()
	o := c.Report.Layout
	if o.Sheet != "" {
		l.Sheet = o.Sheet
	}
	if o.StartRow > 0 {
		l.StartRow = o.StartRow
	}
	if o.DateCell != "" {
		l.DateCell = o.DateCell
	}
	if o.AssetCell != "" {
		l.AssetCell = o.AssetCell
	}
	if o.SequenceColumn != "" {
		l.SequenceColumn = o.SequenceColumn
	}
	if o.RouteColumn != "" {
		l.RouteColumn = o.RouteColumn
	}
	if o.LatitudeColumn != "" {
		l.LatitudeColumn = o.LatitudeColumn
	}
	if o.LongitudeColumn != "" {
		l.LongitudeColumn = o.LongitudeColumn
	}
	if o.GoodColumn != "" {
		l.GoodColumn = o.GoodColumn
	}
	if o.MediumColumn != "" {
		l.MediumColumn = o.MediumColumn
	}
	if o.BadColumn != "" {
		l.BadColumn = o.BadColumn
	}
	if o.NotesColumn != "" {
		l.NotesColumn = o.NotesColumn
	}
	if o.PhotoColumn != "" {
		l.PhotoColumn = o.PhotoColumn
	}
	if o.Marker != "" {
		l.Marker = o.Marker
	}
	return l
}
