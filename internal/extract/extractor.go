// Package extract orchestrates recognition, parsing and geographic
// validation into the two-pass coordinate extraction pipeline: first the
// original photo, then an enhanced rendition if the original produced no
// geographically valid pair.
package extract

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/sawala-tech/lembar/internal/geo"
	"github.com/sawala-tech/lembar/internal/ocr"
)

// Source identifies which rendition of the photo produced a candidate.
type Source string

const (
	SourceOriginal Source = "original"
	SourceEnhanced Source = "enhanced"
)

// Enhancer produces a recognition-friendly copy of an image in a transient
// file. The extractor owns deletion of the returned file.
type Enhancer interface {
	Enhance(imagePath string) (string, error)
}

// Extractor runs the attempt strategies in order and applies the selection
// policy. It is stateless across calls and safe for sequential reuse.
type Extractor struct {
	recognizer ocr.Recognizer
	enhancer   Enhancer
	box        geo.BoundingBox
	opts       ocr.Options
	logger     *slog.Logger
}

// New creates an Extractor. The enhancer may be nil, which limits
// extraction to the original image. A nil logger discards output.
func New(recognizer ocr.Recognizer, enhancer Enhancer, box geo.BoundingBox, opts ocr.Options, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Extractor{
		recognizer: recognizer,
		enhancer:   enhancer,
		box:        box,
		opts:       opts,
		logger:     logger,
	}
}

// attempt is one strategy for obtaining an image to recognize. prepare
// returns the image path and an optional cleanup for transient files.
type attempt struct {
	source  Source
	prepare func() (string, func(), error)
}

// Extract recovers a coordinate pair from the photo at imagePath.
//
// Selection policy: the first attempt whose pair passes geographic
// validation wins; failing that, the first syntactically valid pair is a
// best-effort fallback; failing that, the result is empty. No attempt
// failure aborts the pipeline.
func (x *Extractor) Extract(ctx context.Context, imagePath string) Result {
	attempts := []attempt{
		{
			source:  SourceOriginal,
			prepare: func() (string, func(), error) { return imagePath, nil, nil },
		},
	}
	if x.enhancer != nil {
		attempts = append(attempts, attempt{
			source: SourceEnhanced,
			prepare: func() (string, func(), error) {
				path, err := x.enhancer.Enhance(imagePath)
				if err != nil {
					return "", nil, err
				}
				return path, func() { _ = os.Remove(path) }, nil
			},
		})
	}

	var fallback *geo.Candidate
	for _, a := range attempts {
		if ctx.Err() != nil {
			break
		}
		candidate, ok := x.runAttempt(ctx, a, imagePath)
		if !ok {
			continue
		}
		if x.box.Contains(candidate.Lat, candidate.Lon) {
			x.logger.Info("extraction succeeded",
				"image", imagePath,
				"source", a.source,
				"lat", candidate.Lat,
				"lon", candidate.Lon)
			return resultFrom(candidate)
		}
		x.logger.Debug("candidate outside bounding box",
			"image", imagePath,
			"source", a.source,
			"lat", candidate.Lat,
			"lon", candidate.Lon)
		if fallback == nil {
			c := candidate
			fallback = &c
		}
	}

	if fallback != nil {
		x.logger.Info("extraction used syntactic fallback",
			"image", imagePath,
			"lat", fallback.Lat,
			"lon", fallback.Lon)
		return resultFrom(*fallback)
	}

	x.logger.Warn("no coordinates found", "image", imagePath)
	return Result{}
}

// runAttempt prepares the image for one strategy, recognizes it and parses
// the fragments. Every failure mode is logged and swallowed.
func (x *Extractor) runAttempt(ctx context.Context, a attempt, imagePath string) (geo.Candidate, bool) {
	path, cleanup, err := a.prepare()
	if err != nil {
		x.logger.Debug("attempt preparation failed",
			"image", imagePath, "source", a.source, "error", err)
		return geo.Candidate{}, false
	}
	if cleanup != nil {
		defer cleanup()
	}

	fragments, err := x.recognizer.Recognize(ctx, path, x.opts)
	if err != nil {
		x.logger.Debug("recognition failed",
			"image", imagePath, "source", a.source, "error", err)
		return geo.Candidate{}, false
	}

	texts := make([]string, len(fragments))
	for i, f := range fragments {
		texts[i] = f.Text
	}
	candidate, ok := geo.ParseFragments(texts)
	if !ok {
		x.logger.Debug("no coordinate pattern in recognized text",
			"image", imagePath, "source", a.source, "fragments", len(fragments))
		return geo.Candidate{}, false
	}
	return candidate, true
}

func resultFrom(c geo.Candidate) Result {
	return Result{
		Latitude:  FormatCoordinate(c.Lat),
		Longitude: FormatCoordinate(c.Lon),
	}
}
