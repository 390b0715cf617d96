package ncviz

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

// ContourSet is a handle to a contour plot added to a plot: the grid it
// was drawn from and the levels it was drawn at. PlotContourLabels uses
// it to snap regular label values to contour levels.
type ContourSet struct {
	grid   *DataArray
	levels []float64
}

// Levels returns the contour levels, ascending.
func (cs *ContourSet) Levels() []float64 {
	return append([]float64(nil), cs.levels...)
}

// Grid returns the data array the contours were drawn from.
func (cs *ContourSet) Grid() *DataArray { return cs.grid }

// AddContour contours da at the given levels, colored by pal, and adds
// the result to p. A nil levels slice picks nine evenly spaced levels
// strictly inside the data range.
func AddContour(p *plot.Plot, da *DataArray, levels []float64, pal palette.Palette) (*ContourSet, error) {
	if p == nil {
		return nil, errors.New("ncviz: nil plot")
	}
	if da == nil {
		return nil, errors.New("ncviz: nil data array")
	}
	if levels == nil {
		levels = defaultLevels(da, 9)
	}
	p.Add(plotter.NewContour(da, levels, pal))
	return &ContourSet{grid: da, levels: levels}, nil
}

// defaultLevels returns n levels evenly spaced strictly inside the data
// range, so the outermost contours are drawable.
func defaultLevels(da *DataArray, n int) []float64 {
	elems := da.Dense().Elements
	if len(elems) == 0 {
		return nil
	}
	lo, hi := floats.Min(elems), floats.Max(elems)
	if lo == hi {
		return []float64{lo}
	}
	span := floats.Span(make([]float64, n+2), lo, hi)
	return span[1 : n+1]
}
