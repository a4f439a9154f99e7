package pipeline

import "errors"

// Error taxonomy for a failed pipeline run.
var (
	// ErrInvalidSource: source is null/zero-dimension, or a parameter is
	// out of its documented range. Policy: reject the run, return the
	// unchanged source.
	ErrInvalidSource = errors.New("pipeline: invalid source or parameter")

	// ErrResourceExhausted: buffer allocation would exceed the module's
	// sanity bound for a single raster.
	ErrResourceExhausted = errors.New("pipeline: raster too large to allocate")

	// ErrInvariantViolation: a stage produced a raster of different
	// dimensions than its input outside of the resample stage. Fatal;
	// the run is aborted.
	ErrInvariantViolation = errors.New("pipeline: stage violated dimension invariant")
)

// maxPixels bounds a single raster's pixel count (width*height) to keep a
// pathological upscale/preview request from exhausting memory. Chosen well
// above any realistic print-preview or export resolution (a 200 megapixel
// raster is already an unusually large scan).
const maxPixels = 200_000_000
