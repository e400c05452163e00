package render

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gogpu/gg"
)

// Colormap maps t ∈ [0, 1] to a colour. Values outside are clamped.
type Colormap func(t float64) gg.RGBA

// Anchor colours sampled at t = 0, 1/8, …, 1.
var anchors = map[string][]string{
	"viridis": {"#440154", "#472d7b", "#3b528b", "#2c728e", "#21918c", "#28ae80", "#5ec962", "#addc30", "#fde725"},
	"plasma":  {"#0d0887", "#4c02a1", "#7e03a8", "#a92395", "#cc4778", "#e56b5d", "#f89540", "#fdc527", "#f0f921"},
	"gray":    {"#000000", "#ffffff"},
}

// Colormaps lists the available colormap names.
func Colormaps() []string {
	names := make([]string, 0, len(anchors))
	for name := range anchors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupColormap returns the named colormap.
func LookupColormap(name string) (Colormap, error) {
	hexes, ok := anchors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q (have %s)", name, strings.Join(Colormaps(), ", "))
	}

	stops := make([]gg.RGBA, len(hexes))
	for k, h := range hexes {
		stops[k] = gg.Hex(h)
	}

	return func(t float64) gg.RGBA {
		if math.IsNaN(t) {
			t = 0
		}
		t = math.Min(1, math.Max(0, t))

		pos := t * float64(len(stops)-1)
		k := int(pos)
		if k >= len(stops)-1 {
			return stops[len(stops)-1]
		}
		f := pos - float64(k)
		a, b := stops[k], stops[k+1]
		return gg.RGB(
			a.R+(b.R-a.R)*f,
			a.G+(b.G-a.G)*f,
			a.B+(b.B-a.B)*f,
		)
	}, nil
}
