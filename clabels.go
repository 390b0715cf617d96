package ncviz

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default contour label font sizes in points.
const (
	DefaultRegularLabelFontSize  = 14
	DefaultExtremumLabelFontSize = 22
)

// Label is a single contour label. PlotContourLabels returns the labels
// it created so the caller can adjust text, position, font size,
// rotation, or background before the plot is rendered.
type Label struct {
	// Text is the label text: a formatted contour level for regular
	// labels, "L_{v}" or "H_{v}" for extrema.
	Text string

	// X, Y is the label position in plot (projected) coordinates.
	X, Y float64

	FontSize vg.Length

	// Rotation is counter-clockwise in radians.
	Rotation float64

	// WhiteBox draws a white bounding box behind the label.
	WhiteBox bool

	style text.Style
}

// LabelOption configures PlotContourLabels.
type LabelOption func(*labelConfig)

type labelConfig struct {
	regularFontSize    vg.Length
	extremumFontSize   vg.Length
	regularHorizontal  bool
	extremumHorizontal bool
	whiteBox           bool
	tolerance          float64
}

// WithRegularFontSize sets the font size of regular contour labels.
func WithRegularFontSize(size vg.Length) LabelOption {
	return func(c *labelConfig) { c.regularFontSize = size }
}

// WithExtremumFontSize sets the font size of L/H extremum labels.
func WithExtremumFontSize(size vg.Length) LabelOption {
	return func(c *labelConfig) { c.extremumFontSize = size }
}

// WithHorizontalRegular keeps regular labels horizontal instead of
// rotating them along the local contour direction.
func WithHorizontalRegular() LabelOption {
	return func(c *labelConfig) { c.regularHorizontal = true }
}

// WithRotatedExtrema rotates L/H labels along the local contour
// direction. By default extremum labels are horizontal.
func WithRotatedExtrema() LabelOption {
	return func(c *labelConfig) { c.extremumHorizontal = false }
}

// WithWhiteBox draws a white bounding box behind every label.
func WithWhiteBox() LabelOption {
	return func(c *labelConfig) { c.whiteBox = true }
}

// WithTolerance matches extremum label coordinates to the nearest grid
// axis value within eps instead of requiring bit-for-bit equality.
func WithTolerance(eps float64) LabelOption {
	return func(c *labelConfig) { c.tolerance = eps }
}

// PlotContourLabels places contour labels on p at the given geographic
// coordinates and returns them in order: regular, low, high.
//
// Regular labels show the contour level of cs nearest to the field value
// at the coordinate, formatted "%.0f", and rotate along the local
// contour direction. Low and high labels show the field value itself,
// rounded to the nearest integer and formatted "L_{v}" or "H_{v}"; their
// coordinates must match a grid axis value exactly (see WithTolerance)
// or the label is silently skipped. Skips are reported at Debug level
// through the package logger but never abort the call: partial
// annotation is preferred over an unlabeled plot.
//
// pj transforms coordinates from their source spatial reference to the
// projection the plot is drawn in; nil means the plot is in plain
// longitude/latitude coordinates.
func PlotContourLabels(p *plot.Plot, da *DataArray, cs *ContourSet, pj *Projection,
	regular, low, high []Coord, opts ...LabelOption) ([]*Label, error) {

	if p == nil {
		return nil, errors.New("ncviz: nil plot")
	}
	if da == nil {
		return nil, errors.New("ncviz: nil data array")
	}

	cfg := labelConfig{
		regularFontSize:    vg.Points(DefaultRegularLabelFontSize),
		extremumFontSize:   vg.Points(DefaultExtremumLabelFontSize),
		extremumHorizontal: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	baseStyle := p.Title.TextStyle
	baseStyle.Color = color.Black
	baseStyle.XAlign = text.XCenter
	baseStyle.YAlign = text.YCenter

	var labels []*Label

	// An empty axis leaves nothing to label; the per-coordinate loops
	// must degrade rather than index into a zero-size grid.
	gridEmpty := len(da.Lats) == 0 || len(da.Lons) == 0

	// Regular levels: the label value snaps to the nearest contour
	// level at the nearest grid cell, like a manual clabel placement.
	for _, pt := range projectCoords(pj, regular) {
		if !pt.ok {
			continue
		}
		if gridEmpty {
			Logger().Debug("ncviz: empty grid, skipping regular label",
				"lon", pt.src.Lon, "lat", pt.src.Lat)
			continue
		}
		i, j := nearestCell(da, pt.src)
		value := da.Value(i, j)
		if cs != nil {
			value = nearestLevel(cs.levels, value)
		}
		rotation := 0.0
		if !cfg.regularHorizontal {
			rotation = contourAngle(da, i, j)
		}
		labels = append(labels, &Label{
			Text:     fmt.Sprintf("%.0f", value),
			X:        pt.x,
			Y:        pt.y,
			FontSize: cfg.regularFontSize,
			Rotation: rotation,
			WhiteBox: cfg.whiteBox,
			style:    baseStyle,
		})
	}

	// Extremum levels: the label shows the field value at the exact
	// coordinate, so an unmatched coordinate produces no label.
	ix := newCoordIndex(da, cfg.tolerance)
	for _, ext := range []struct {
		kind   byte
		coords []Coord
	}{
		{'L', low},
		{'H', high},
	} {
		for _, pt := range projectCoords(pj, ext.coords) {
			if !pt.ok {
				continue
			}
			i, j, ok := ix.lookup(pt.src)
			if !ok {
				Logger().Debug("ncviz: extremum label coordinate not on grid, skipping",
					"kind", string(ext.kind), "lon", pt.src.Lon, "lat", pt.src.Lat)
				continue
			}
			rotation := 0.0
			if !cfg.extremumHorizontal {
				rotation = contourAngle(da, i, j)
			}
			labels = append(labels, &Label{
				Text:     extremumText(ext.kind, da.Value(i, j)),
				X:        pt.x,
				Y:        pt.y,
				FontSize: cfg.extremumFontSize,
				Rotation: rotation,
				WhiteBox: cfg.whiteBox,
				style:    baseStyle,
			})
		}
	}

	if len(labels) > 0 {
		p.Add(&labelSet{labels: labels})
	}
	return labels, nil
}

// extremumText formats an L/H label with the rounded field value as a
// subscript.
func extremumText(kind byte, value float64) string {
	return fmt.Sprintf("%c_{%d}", kind, int(math.Round(value)))
}

// nearestLevel returns the level closest to value.
func nearestLevel(levels []float64, value float64) float64 {
	if len(levels) == 0 {
		return value
	}
	best := levels[0]
	bestDist := math.Abs(value - best)
	for _, lv := range levels[1:] {
		if d := math.Abs(value - lv); d < bestDist {
			best, bestDist = lv, d
		}
	}
	return best
}

// nearestCell returns the grid indices of the cell whose coordinates
// are closest to c, one axis at a time.
func nearestCell(da *DataArray, c Coord) (i, j int) {
	i = nearestIndex(da.Lats, c.Lat)
	j = nearestIndex(da.Lons, c.Lon)
	return i, j
}

func nearestIndex(axis []float64, v float64) int {
	best := 0
	bestDist := math.Inf(1)
	for k, av := range axis {
		if d := math.Abs(av - v); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

// contourAngle returns the direction of the contour line through grid
// cell (i, j): perpendicular to the local field gradient, estimated by
// central differences and normalized into (-pi/2, pi/2] so labels read
// left to right.
func contourAngle(da *DataArray, i, j int) float64 {
	gx := axisDifference(da, i, j, false)
	gy := axisDifference(da, i, j, true)
	if gx == 0 && gy == 0 {
		return 0
	}
	// Tangent of the level set is (-gy, gx).
	ang := math.Atan2(gx, -gy)
	for ang <= -math.Pi/2 {
		ang += math.Pi
	}
	for ang > math.Pi/2 {
		ang -= math.Pi
	}
	return ang
}

// axisDifference estimates the partial derivative of the field at
// (i, j) along latitude (overLat) or longitude.
func axisDifference(da *DataArray, i, j int, overLat bool) float64 {
	axis, k := da.Lons, j
	if overLat {
		axis, k = da.Lats, i
	}
	lo, hi := k-1, k+1
	if lo < 0 {
		lo = 0
	}
	if hi > len(axis)-1 {
		hi = len(axis) - 1
	}
	if lo == hi {
		return 0
	}
	var zLo, zHi float64
	if overLat {
		zLo, zHi = da.Value(lo, j), da.Value(hi, j)
	} else {
		zLo, zHi = da.Value(i, lo), da.Value(i, hi)
	}
	return (zHi - zLo) / (axis[hi] - axis[lo])
}

// labelSet draws contour labels. It is added to the plot by
// PlotContourLabels; the labels it holds are shared with the caller, so
// edits made before rendering take effect.
type labelSet struct {
	labels []*Label
}

// Plot implements plot.Plotter.
func (ls *labelSet) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, lb := range ls.labels {
		sty := lb.style
		sty.Font.Size = lb.FontSize
		sty.Rotation = lb.Rotation
		pt := vg.Point{X: trX(lb.X), Y: trY(lb.Y)}
		if lb.WhiteBox {
			fillLabelBox(c, sty, pt, lb.Text)
		}
		c.FillText(sty, pt, lb.Text)
	}
}

// fillLabelBox paints a white rectangle behind a label, padded by two
// points on each side.
func fillLabelBox(c draw.Canvas, sty text.Style, pt vg.Point, txt string) {
	r := sty.Rectangle(txt)
	pad := vg.Points(2)
	min := vg.Point{X: pt.X + r.Min.X - pad, Y: pt.Y + r.Min.Y - pad}
	max := vg.Point{X: pt.X + r.Max.X + pad, Y: pt.Y + r.Max.Y + pad}
	c.FillPolygon(color.White, []vg.Point{
		{X: min.X, Y: min.Y},
		{X: max.X, Y: min.Y},
		{X: max.X, Y: max.Y},
		{X: min.X, Y: max.Y},
	})
}
