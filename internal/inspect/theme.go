package inspect

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme names a balance-factor gradient. The zero Theme is "default".
type Theme string

const (
	ThemeDefault    Theme = "default"
	ThemeProtanopia Theme = "protanopia" // red/green-color-blind-safe: blue-to-orange instead of red-to-green
)

var gradients = map[Theme][2]colorful.Color{
	ThemeDefault:    {colorful.Color{R: 0.85, G: 0.15, B: 0.15}, colorful.Color{R: 0.15, G: 0.75, B: 0.25}},
	ThemeProtanopia: {colorful.Color{R: 0.10, G: 0.35, B: 0.85}, colorful.Color{R: 0.95, G: 0.55, B: 0.10}},
}

// BalanceColor maps an AVL balance factor (-2..2, though a correctly
// maintained tree never holds beyond -1..1) onto a perceptually smooth
// gradient in the Lab color space via go-colorful's BlendLab rather than
// a plain RGB lerp in sRGB — Lab blending avoids the muddy midpoint an
// sRGB lerp produces between red and green.
func BalanceColor(balance int, theme Theme) tcell.Color {
	g, ok := gradients[theme]
	if !ok {
		g = gradients[ThemeDefault]
	}

	t := (float64(balance) + 2) / 4
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	blended := g[0].BlendLab(g[1], t)
	r, gr, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(gr), int32(b))
}
