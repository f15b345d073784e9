// Package palette assigns display colors to staff members. Color is
// presentation metadata keyed off the staff id, never stored on the shift
// record, so a member's color can change without touching the schedule.
package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Presets are the base staff colors, used in roster order before generated
// colors kick in.
var Presets = []string{
	"#3B82F6", // blue
	"#10B981", // green
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // purple
	"#EC4899", // pink
	"#06B6D4", // cyan
	"#F97316", // orange
}

// Palette maps staff ids to stable hex colors.
type Palette struct {
	byID  map[string]string
	order []string
}

// New assigns a color to each staff id in the given order. The first ids
// take the presets; the rest get hue-spaced generated colors so any roster
// size stays distinguishable.
func New(staffIDs []string) *Palette {
	p := &Palette{
		byID:  make(map[string]string, len(staffIDs)),
		order: append([]string(nil), staffIDs...),
	}
	for n, id := range p.order {
		if _, ok := p.byID[id]; ok {
			continue
		}
		p.byID[id] = colorFor(n)
	}
	return p
}

// Color returns the hex color for a staff id. Unknown ids get a neutral
// gray instead of an error; a missing color is a display concern only.
func (p *Palette) Color(staffID string) string {
	if c, ok := p.byID[staffID]; ok {
		return c
	}
	return "#9CA3AF"
}

func colorFor(n int) string {
	if n < len(Presets) {
		return Presets[n]
	}
	// Golden-angle hue stepping past the presets keeps neighbors apart.
	hue := math.Mod(float64((n-len(Presets))*137+20), 360)
	return colorful.Hsv(hue, 0.62, 0.86).Hex()
}
