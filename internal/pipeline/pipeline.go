// Package pipeline orchestrates the staged pixel pipeline: resample, film
// stock, velox, grain, halftone, ink bleed, paper tooth, applied to a
// shared buffer in a fixed order, with an active-module set deciding
// which optional stages run.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/raster"
	"github.com/inkgrain/pressline/internal/stages"
)

// Options carries the per-request rendering options.
type Options struct {
	ForExport     bool
	PreviewMaxPx  int
	Upscale       int
	CachePaperMap bool
	PaperMapCache *stages.PaperMapCache // required when CachePaperMap is set
	RunSeed       uint32                // used only when paper.seeded is true
}

// Run executes the full render pipeline: source, active module set and
// parameter bundle in, rendered raster out. On any error the last
// successfully produced raster is returned alongside the error, so
// callers should treat a non-nil error as "run failed", not "run
// partially succeeded" — a failed run never emits a partial result.
func Run(source *raster.Image, active params.Active, bundle params.Bundle, opts Options) (*raster.Image, error) {
	if !source.Valid() {
		return source, fmt.Errorf("%w: source has zero dimensions or a malformed pixel buffer", ErrInvalidSource)
	}
	if source.Width*source.Height > maxPixels {
		return source, fmt.Errorf("%w: %dx%d exceeds the %d pixel bound", ErrResourceExhausted, source.Width, source.Height, maxPixels)
	}

	cfg, err := params.Resolve(bundle, active)
	if err != nil {
		if errors.Is(err, params.ErrOutOfRange) {
			return source, fmt.Errorf("%w: %v", ErrInvalidSource, err)
		}
		return source, fmt.Errorf("pipeline: resolving parameters: %w", err)
	}

	last := source.Clone()

	cur, err := stages.Resample(last, opts.ForExport, opts.PreviewMaxPx, opts.Upscale)
	if err != nil {
		return last, fmt.Errorf("pipeline: resample: %w", err)
	}
	if cur.Width*cur.Height > maxPixels {
		return last, fmt.Errorf("%w: resample produced %dx%d", ErrResourceExhausted, cur.Width, cur.Height)
	}
	last = cur

	if cfg.FilmStock.Active {
		cur = stages.FilmStock(last, cfg.FilmStock)
		if err := checkDims(last, cur); err != nil {
			return last, err
		}
		last = cur
	}

	if cfg.Velox.Active {
		cur = stages.Velox(last, cfg.Velox)
		if err := checkDims(last, cur); err != nil {
			return last, err
		}
		last = cur
	}

	if cfg.Grain.Active {
		cur = stages.Grain(last, cfg.Grain)
		if err := checkDims(last, cur); err != nil {
			return last, err
		}
		last = cur
	}

	// Halftone and press are always effectively active.
	cur = stages.Halftone(last, cfg)
	if err := checkDims(last, cur); err != nil {
		return last, err
	}
	last = cur

	if cfg.InkBleed.Active {
		cur = stages.InkBleed(last, cfg.InkBleed, cfg.Halftone.PaperColor, cfg.Press.Feed == "vertical")
		if err := checkDims(last, cur); err != nil {
			return last, err
		}
		last = cur
	}

	if cfg.Paper.Active {
		var cache *stages.PaperMapCache
		if opts.CachePaperMap {
			cache = opts.PaperMapCache
		}
		cur = stages.PaperTooth(last, cfg.Paper, cfg.Press.Pressure, cfg.Press.Feed == "vertical", cfg.Halftone.PaperColor, cache, opts.RunSeed)
		if err := checkDims(last, cur); err != nil {
			return last, err
		}
		last = cur
	}

	return last, nil
}

func checkDims(prev, next *raster.Image) error {
	if !prev.SameDims(next) {
		return fmt.Errorf("%w: %dx%d -> %dx%d", ErrInvariantViolation, prev.Width, prev.Height, next.Width, next.Height)
	}
	return nil
}
