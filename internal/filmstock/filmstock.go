// Package filmstock holds the static film-stock catalog: five curve
// control points per RGB channel, a saturation scalar, an optional B&W
// conversion, and a halation spec, per stock id. The catalog is embedded
// as JSON rather than compiled in, so new stocks can be added without
// touching the LUT-building code that consumes them.
package filmstock

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/inkgrain/pressline/internal/colorspec"
	"github.com/inkgrain/pressline/internal/lut"
)

//go:embed catalog.json
var catalogJSON []byte

type rawCurve struct {
	R [5]lut.ControlPoint `json:"r"`
	G [5]lut.ControlPoint `json:"g"`
	B [5]lut.ControlPoint `json:"b"`
}

type rawStock struct {
	Curves           rawCurve  `json:"curves"`
	Saturation       float64   `json:"saturation"`
	BW               bool      `json:"bw"`
	BWWeights        [3]float64 `json:"bwWeights"`
	HalationRadius   int       `json:"halationRadius"`
	HalationTint     string    `json:"halationTint"`
	HalationStrength float64   `json:"halationStrength"`
}

// Halation describes a stock's bloom response.
type Halation struct {
	Radius   int
	Tint     colorspec.RGB
	Strength float64
}

// Stock is one film-stock catalog entry.
type Stock struct {
	ID         string
	Curves     [3][5]lut.ControlPoint // index 0=R, 1=G, 2=B
	Saturation float64
	BW         bool
	BWWeights  [3]float64 // wR, wG, wB
	Halation   Halation
}

var catalog map[string]Stock

func init() {
	var raw map[string]rawStock
	if err := json.Unmarshal(catalogJSON, &raw); err != nil {
		panic(fmt.Sprintf("filmstock: embedded catalog.json is invalid: %v", err))
	}
	catalog = make(map[string]Stock, len(raw))
	for id, r := range raw {
		tint, err := colorspec.ParseHex(r.HalationTint)
		if err != nil {
			panic(fmt.Sprintf("filmstock: stock %q halationTint: %v", id, err))
		}
		catalog[id] = Stock{
			ID:         id,
			Curves:     [3][5]lut.ControlPoint{r.Curves.R, r.Curves.G, r.Curves.B},
			Saturation: r.Saturation,
			BW:         r.BW,
			BWWeights:  r.BWWeights,
			Halation: Halation{
				Radius:   r.HalationRadius,
				Tint:     tint,
				Strength: r.HalationStrength,
			},
		}
	}
}

// Lookup returns the named stock, falling back to kodachrome for an
// unrecognized id (params.Resolve already constrains stock ids to the
// enumerated set, so this fallback only matters for direct callers).
func Lookup(id string) Stock {
	if s, ok := catalog[id]; ok {
		return s
	}
	return catalog["kodachrome"]
}

// IDs returns the catalog's stock ids in a stable, sorted order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
