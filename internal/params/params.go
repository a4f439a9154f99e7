// Package params resolves the raw host-supplied parameter bundle into
// typed, range-checked stage configuration. Unknown modules and unknown
// parameter ids are silently ignored; a recognized parameter present with
// an out-of-range value is rejected by returning ErrOutOfRange, which
// internal/pipeline maps onto its own error taxonomy.
package params

import (
	"errors"
	"fmt"

	"github.com/inkgrain/pressline/internal/colorspec"
)

// ErrOutOfRange is wrapped by every range-check failure below.
var ErrOutOfRange = errors.New("params: value out of documented range")

// Bundle is the raw host parameter bundle: module id -> param id -> value.
type Bundle map[string]map[string]any

// Active is the set of active module ids. halftone and press are always
// effectively active regardless of membership here.
type Active map[string]bool

func (a Active) has(id string) bool {
	return a != nil && a[id]
}

func lookup(b Bundle, module, key string) (any, bool) {
	m, ok := b[module]
	if !ok {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}

func getFloat(b Bundle, module, key string, def, lo, hi float64) (float64, error) {
	v, ok := lookup(b, module, key)
	if !ok {
		return def, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return def, nil // unrecognized value shape: ParameterMissing policy
	}
	if f < lo || f > hi {
		return 0, fmt.Errorf("%s.%s = %v: %w [%v, %v]", module, key, f, ErrOutOfRange, lo, hi)
	}
	return f, nil
}

func getInt(b Bundle, module, key string, def, lo, hi int) (int, error) {
	v, ok := lookup(b, module, key)
	if !ok {
		return def, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return def, nil
	}
	i := int(f)
	if i < lo || i > hi {
		return 0, fmt.Errorf("%s.%s = %v: %w [%v, %v]", module, key, i, ErrOutOfRange, lo, hi)
	}
	return i, nil
}

func getString(b Bundle, module, key, def string, allowed ...string) (string, error) {
	v, ok := lookup(b, module, key)
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return def, nil
	}
	if len(allowed) == 0 {
		return s, nil
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", fmt.Errorf("%s.%s = %q: %w %v", module, key, s, ErrOutOfRange, allowed)
}

func getBool(b Bundle, module, key string, def bool) bool {
	v, ok := lookup(b, module, key)
	if !ok {
		return def
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "on" || t == "true"
	default:
		return def
	}
}

func getColor(b Bundle, module, key string, def colorspec.RGB) (colorspec.RGB, error) {
	v, ok := lookup(b, module, key)
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return def, nil
	}
	c, err := colorspec.ParseHex(s)
	if err != nil {
		return colorspec.RGB{}, fmt.Errorf("%s.%s: %w: %v", module, key, ErrOutOfRange, err)
	}
	return c, nil
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

// FilmStock holds the filmstock module's resolved parameters.
type FilmStock struct {
	Active   bool
	Stock    string
	Exposure float64
	Halation float64
	Fade     float64
}

func resolveFilmStock(b Bundle, active Active) (FilmStock, error) {
	fs := FilmStock{Active: active.has("filmstock")}
	var err error
	fs.Stock, err = getString(b, "filmstock", "stock", "kodachrome", "trix", "hp5", "kodachrome", "portra", "ektachrome")
	if err != nil {
		return fs, err
	}
	fs.Exposure, err = getFloat(b, "filmstock", "exposure", 0, -2, 2)
	if err != nil {
		return fs, err
	}
	fs.Halation, err = getFloat(b, "filmstock", "halation", 0.5, 0, 1)
	if err != nil {
		return fs, err
	}
	fs.Fade, err = getFloat(b, "filmstock", "fade", 0, 0, 1)
	return fs, err
}

// Velox holds the velox module's resolved parameters.
type Velox struct {
	Active    bool
	Threshold float64
	Contrast  float64
}

func resolveVelox(b Bundle, active Active) (Velox, error) {
	v := Velox{Active: active.has("velox")}
	var err error
	v.Threshold, err = getFloat(b, "velox", "threshold", 0.5, 0.1, 0.9)
	if err != nil {
		return v, err
	}
	v.Contrast, err = getFloat(b, "velox", "contrast", 1.5, 1.0, 3.0)
	return v, err
}

// Grain holds the grain module's resolved parameters.
type Grain struct {
	Active   bool
	Amount   float64
	Weighted bool
}

func resolveGrain(b Bundle, active Active) (Grain, error) {
	g := Grain{Active: active.has("grain")}
	var err error
	g.Amount, err = getFloat(b, "grain", "amount", 0.12, 0, 0.5)
	if err != nil {
		return g, err
	}
	g.Weighted = getBool(b, "grain", "weighted", true)
	return g, nil
}

// Halftone holds the halftone module's resolved parameters. Always
// effectively active, regardless of the caller's active-module set.
type Halftone struct {
	Mode          string
	CellSize      int
	DotShape      string
	PaperColor    colorspec.RGB
	MasterAngle   int
	AngleK        int
	AngleC        int
	AngleM        int
	AngleY        int
	DuotoneColor1 colorspec.RGB
	DuotoneColor2 colorspec.RGB
}

func resolveHalftone(b Bundle) (Halftone, error) {
	var h Halftone
	var err error
	h.Mode, err = getString(b, "halftone", "mode", "cmyk", "bw", "duotone", "cmyk")
	if err != nil {
		return h, err
	}
	h.CellSize, err = getInt(b, "halftone", "cellSize", 10, 3, 24)
	if err != nil {
		return h, err
	}
	h.DotShape, err = getString(b, "halftone", "dotShape", "circle", "circle", "diamond", "line")
	if err != nil {
		return h, err
	}
	h.PaperColor, err = getColor(b, "halftone", "paperColor", colorspec.DefaultPaperColor)
	if err != nil {
		return h, err
	}
	h.MasterAngle, err = getInt(b, "halftone", "masterAngle", 0, 0, 179)
	if err != nil {
		return h, err
	}
	h.AngleK, err = getInt(b, "halftone", "angleK", 45, 0, 179)
	if err != nil {
		return h, err
	}
	h.AngleC, err = getInt(b, "halftone", "angleC", 15, 0, 179)
	if err != nil {
		return h, err
	}
	h.AngleM, err = getInt(b, "halftone", "angleM", 75, 0, 179)
	if err != nil {
		return h, err
	}
	h.AngleY, err = getInt(b, "halftone", "angleY", 90, 0, 179)
	if err != nil {
		return h, err
	}
	h.DuotoneColor1, err = getColor(b, "halftone", "duotoneColor1", colorspec.InkBlack)
	if err != nil {
		return h, err
	}
	h.DuotoneColor2, err = getColor(b, "halftone", "duotoneColor2", colorspec.InkCyan)
	return h, err
}

// Press holds the press module's resolved parameters. Always effectively
// active, regardless of the caller's active-module set.
type Press struct {
	Feed     string
	Laydown  string
	Pressure float64
	Slur     float64
}

func resolvePress(b Bundle) (Press, error) {
	var p Press
	var err error
	p.Feed, err = getString(b, "press", "feed", "vertical", "vertical", "horizontal")
	if err != nil {
		return p, err
	}
	p.Laydown, err = getString(b, "press", "laydown", "k-c-m-y", "k-c-m-y", "y-m-c-k", "c-m-y-k", "m-c-y-k")
	if err != nil {
		return p, err
	}
	p.Pressure, err = getFloat(b, "press", "pressure", 1.0, 0.1, 1.0)
	if err != nil {
		return p, err
	}
	p.Slur, err = getFloat(b, "press", "slur", 0, 0, 0.5)
	return p, err
}

// DotGain holds the dotgain module's resolved parameters.
type DotGain struct {
	Active bool
	Amount float64
	Shadow float64
}

func resolveDotGain(b Bundle, active Active) (DotGain, error) {
	d := DotGain{Active: active.has("dotgain")}
	var err error
	d.Amount, err = getFloat(b, "dotgain", "amount", 0.25, 0, 1)
	if err != nil {
		return d, err
	}
	d.Shadow, err = getFloat(b, "dotgain", "shadow", 0.3, 0, 1)
	return d, err
}

// Registration holds the registration module's resolved parameters.
type Registration struct {
	Active                 bool
	CX, CY, MX, MY, YX, YY float64
	Fanout                 float64
}

func resolveRegistration(b Bundle, active Active) (Registration, error) {
	r := Registration{Active: active.has("registration")}
	fields := []struct {
		key string
		out *float64
	}{
		{"cx", &r.CX}, {"cy", &r.CY},
		{"mx", &r.MX}, {"my", &r.MY},
		{"yx", &r.YX}, {"yy", &r.YY},
	}
	for _, f := range fields {
		v, err := getFloat(b, "registration", f.key, 0, -15, 15)
		if err != nil {
			return r, err
		}
		*f.out = v
	}
	var err error
	r.Fanout, err = getFloat(b, "registration", "fanout", 0, 0, 10)
	return r, err
}

// InkSkip holds the inkskip module's resolved parameters.
type InkSkip struct {
	Active    bool
	Intensity float64
	Scale     float64
}

func resolveInkSkip(b Bundle, active Active) (InkSkip, error) {
	s := InkSkip{Active: active.has("inkskip")}
	var err error
	s.Intensity, err = getFloat(b, "inkskip", "intensity", 0.3, 0, 1)
	if err != nil {
		return s, err
	}
	s.Scale, err = getFloat(b, "inkskip", "scale", 0.4, 0.05, 1)
	return s, err
}

// Paper holds the paper module's resolved parameters.
type Paper struct {
	Active  bool
	Texture float64
	Fibers  float64
	Seeded  bool // when true, the paper map uses a run-scoped seeded generator instead of an unseeded one
}

func resolvePaper(b Bundle, active Active) (Paper, error) {
	p := Paper{Active: active.has("paper")}
	var err error
	p.Texture, err = getFloat(b, "paper", "texture", 0.15, 0, 0.5)
	if err != nil {
		return p, err
	}
	p.Fibers, err = getFloat(b, "paper", "fibers", 0.05, 0, 0.5)
	if err != nil {
		return p, err
	}
	p.Seeded = getBool(b, "paper", "seeded", false)
	return p, nil
}

// InkBleed holds the inkbleed module's resolved parameters.
type InkBleed struct {
	Active         bool
	Radius         int
	Absorbency     float64
	Directionality float64
}

func resolveInkBleed(b Bundle, active Active) (InkBleed, error) {
	ib := InkBleed{Active: active.has("inkbleed")}
	var err error
	ib.Radius, err = getInt(b, "inkbleed", "radius", 3, 1, 16)
	if err != nil {
		return ib, err
	}
	ib.Absorbency, err = getFloat(b, "inkbleed", "absorbency", 0.8, 0, 1)
	if err != nil {
		return ib, err
	}
	ib.Directionality, err = getFloat(b, "inkbleed", "directionality", 0.7, 0, 1)
	return ib, err
}

// Hickeys holds the hickeys module's resolved parameters.
type Hickeys struct {
	Active  bool
	Count   int
	SizeMax int
}

func resolveHickeys(b Bundle, active Active) (Hickeys, error) {
	h := Hickeys{Active: active.has("hickeys")}
	var err error
	h.Count, err = getInt(b, "hickeys", "count", 12, 1, 100)
	if err != nil {
		return h, err
	}
	h.SizeMax, err = getInt(b, "hickeys", "sizeMax", 8, 3, 30)
	return h, err
}

// Config is the fully resolved, range-checked parameter set for one run.
type Config struct {
	FilmStock    FilmStock
	Velox        Velox
	Grain        Grain
	Halftone     Halftone
	Press        Press
	DotGain      DotGain
	Registration Registration
	InkSkip      InkSkip
	Paper        Paper
	InkBleed     InkBleed
	Hickeys      Hickeys
}

// Resolve applies documented defaults and range checks to a raw bundle
// plus active set, returning a ready-to-use Config. Unknown module
// and parameter ids are ignored; a recognized parameter outside its
// documented range wraps ErrOutOfRange.
func Resolve(b Bundle, active Active) (Config, error) {
	var cfg Config
	var err error

	if cfg.FilmStock, err = resolveFilmStock(b, active); err != nil {
		return cfg, err
	}
	if cfg.Velox, err = resolveVelox(b, active); err != nil {
		return cfg, err
	}
	if cfg.Grain, err = resolveGrain(b, active); err != nil {
		return cfg, err
	}
	if cfg.Halftone, err = resolveHalftone(b); err != nil {
		return cfg, err
	}
	if cfg.Press, err = resolvePress(b); err != nil {
		return cfg, err
	}
	if cfg.DotGain, err = resolveDotGain(b, active); err != nil {
		return cfg, err
	}
	if cfg.Registration, err = resolveRegistration(b, active); err != nil {
		return cfg, err
	}
	if cfg.InkSkip, err = resolveInkSkip(b, active); err != nil {
		return cfg, err
	}
	if cfg.Paper, err = resolvePaper(b, active); err != nil {
		return cfg, err
	}
	if cfg.InkBleed, err = resolveInkBleed(b, active); err != nil {
		return cfg, err
	}
	if cfg.Hickeys, err = resolveHickeys(b, active); err != nil {
		return cfg, err
	}
	return cfg, nil
}
