package ncviz

import "image/color"

// Built-in gradients reproducing commonly used NCL color tables.
// All are registered in DefaultRegistry at package init, so
// DefaultRegistry.Lookup("BlueYellowRed") also works.
var (
	// BlueYellowRed sweeps dark blue through pale yellow to dark red,
	// the NCL table of the same name.
	BlueYellowRed = NewGradient("BlueYellowRed", []ColorStop{
		{0.00, color.RGBA{R: 37, G: 44, B: 178, A: 255}},
		{0.25, color.RGBA{R: 110, G: 195, B: 245, A: 255}},
		{0.50, color.RGBA{R: 255, G: 255, B: 191, A: 255}},
		{0.75, color.RGBA{R: 250, G: 160, B: 80, A: 255}},
		{1.00, color.RGBA{R: 165, G: 0, B: 38, A: 255}},
	}, 256)

	// BlueRed is a diverging blue-white-red table for anomaly fields.
	BlueRed = NewGradient("BlueRed", []ColorStop{
		{0.00, color.RGBA{R: 0, G: 0, B: 200, A: 255}},
		{0.50, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{1.00, color.RGBA{R: 200, G: 0, B: 0, A: 255}},
	}, 256)

	// WhiteBlueGreenYellowRed is a sequential table for positive
	// definite fields such as precipitation.
	WhiteBlueGreenYellowRed = NewGradient("WhiteBlueGreenYellowRed", []ColorStop{
		{0.00, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{0.25, color.RGBA{R: 110, G: 170, B: 230, A: 255}},
		{0.50, color.RGBA{R: 90, G: 190, B: 110, A: 255}},
		{0.75, color.RGBA{R: 250, G: 230, B: 90, A: 255}},
		{1.00, color.RGBA{R: 200, G: 30, B: 30, A: 255}},
	}, 256)
)

func init() {
	for _, g := range []*Gradient{BlueYellowRed, BlueRed, WhiteBlueGreenYellowRed} {
		DefaultRegistry.Register(g)
	}
}
