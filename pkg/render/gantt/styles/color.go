package styles

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// goldenRatioConjugate is the hue step between consecutive resource colors.
const goldenRatioConjugate = 0.618033988749895

// Fixed saturation and value for every generated resource color.
const (
	paletteSaturation = 0.5
	paletteValue      = 0.5
)

// RGB is a color packed as 0xRRGGBB.
type RGB uint32

// Hex returns the CSS hex form, e.g. "#40bf6b".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c))
}

// hsvToRGB converts hue, saturation and value (each in [0,1)) to a packed
// RGB. Channels are scaled by 256 and truncated.
func hsvToRGB(h, s, v float64) RGB {
	sector := int(h * 6)
	f := h*6 - float64(sector)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB(uint32(r*256)<<16 | uint32(g*256)<<8 | uint32(b*256))
}

// Palette yields one color per resource. The starting hue is drawn from rng;
// each call to Next advances the hue by the golden ratio conjugate, wrapping
// at 1.
type Palette struct {
	hue float64
}

// NewPalette draws the starting hue from rng.
func NewPalette(rng *rand.Rand) *Palette {
	return &Palette{hue: rng.Float64()}
}

// Next returns the color for the current hue and steps to the next one.
func (p *Palette) Next() RGB {
	c := hsvToRGB(p.hue, paletteSaturation, paletteValue)
	p.hue = math.Mod(p.hue+goldenRatioConjugate, 1)
	return c
}
