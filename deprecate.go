package ncviz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// NclizeAxis styles p with NCL tick conventions.
//
// Deprecated: use AddMajorMinorTicks instead, which also controls the
// two axes independently. NclizeAxis forwards to it.
func NclizeAxis(p *plot.Plot, minorPerMajor int) {
	Logger().Warn("ncviz: NclizeAxis is deprecated, use AddMajorMinorTicks instead")
	AddMajorMinorTicks(p, minorPerMajor, minorPerMajor, vg.Length(0))
}

// MakeBYRCmap returns the blue-yellow-red gradient.
//
// Deprecated: use the BlueYellowRed variable directly.
func MakeBYRCmap() *Gradient {
	Logger().Warn("ncviz: MakeBYRCmap is deprecated, use BlueYellowRed instead")
	return BlueYellowRed
}
