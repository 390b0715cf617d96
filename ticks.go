package ncviz

import (
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// NCL tick geometry in points. Minor ticks are drawn at half the major
// length by gonum/plot.
const (
	majorTickLength = 8
	majorTickWidth  = 0.9
)

// AddLatLonTickLabels formats the X axis ticks of p as longitudes and
// the Y axis ticks as latitudes, NCL style (30°W, 0°, 45°N).
//
// zeroDirectionLabel selects "0°E" instead of a bare "0°";
// datelineDirectionLabel selects "180°E"/"180°W" instead of "180°".
// The existing tickers keep choosing tick positions; only the labels
// change.
func AddLatLonTickLabels(p *plot.Plot, zeroDirectionLabel, datelineDirectionLabel bool) {
	p.X.Tick.Marker = LongitudeTicker{
		Base:                   p.X.Tick.Marker,
		ZeroDirectionLabel:     zeroDirectionLabel,
		DatelineDirectionLabel: datelineDirectionLabel,
	}
	p.Y.Tick.Marker = LatitudeTicker{Base: p.Y.Tick.Marker}
}

// AddMajorMinorTicks styles p with NCL tick conventions: minor tick
// marks between the major ones and heavier major tick lines.
//
// xMinorPerMajor and yMinorPerMajor give the number of subdivisions
// between adjacent major ticks (3 means two minor marks). labelSize
// sets the tick label font size on both axes; pass 0 to keep the
// current size.
func AddMajorMinorTicks(p *plot.Plot, xMinorPerMajor, yMinorPerMajor int, labelSize vg.Length) {
	p.X.Tick.Marker = AutoMinorTicker{Base: p.X.Tick.Marker, N: xMinorPerMajor}
	p.Y.Tick.Marker = AutoMinorTicker{Base: p.Y.Tick.Marker, N: yMinorPerMajor}

	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.Tick.Length = vg.Points(majorTickLength)
		axis.Tick.LineStyle.Width = vg.Points(majorTickWidth)
		if labelSize > 0 {
			axis.Tick.Label.Font.Size = labelSize
		}
	}
}

// Limits is an axis data range.
type Limits struct {
	Min, Max float64
}

// AxesOptions configures SetAxesLimitsAndTicks. Nil or empty fields
// leave the corresponding axis property unchanged.
type AxesOptions struct {
	XLim, YLim *Limits

	// Tick positions. When set, the axis ticker is replaced with
	// exactly these ticks.
	XTicks, YTicks []float64

	// Tick labels, paired positionally with the tick positions.
	// Extra labels are ignored; missing labels fall back to the
	// formatted tick value. When labels are given without positions,
	// the labels of the axis's existing major ticks are replaced
	// positionally instead.
	XTickLabels, YTickLabels []string
}

// SetAxesLimitsAndTicks applies axis limits, tick positions, and tick
// labels to p. No validation is performed; out-of-range ticks are
// simply not drawn by the plotting library.
func SetAxesLimitsAndTicks(p *plot.Plot, opts AxesOptions) {
	applyAxisOptions(&p.X, opts.XLim, opts.XTicks, opts.XTickLabels)
	applyAxisOptions(&p.Y, opts.YLim, opts.YTicks, opts.YTickLabels)
}

func applyAxisOptions(axis *plot.Axis, lim *Limits, ticks []float64, labels []string) {
	switch {
	case len(ticks) > 0:
		axis.Tick.Marker = plot.ConstantTicks(constantTicks(ticks, labels))
	case len(labels) > 0:
		axis.Tick.Marker = relabelTicker{Base: axis.Tick.Marker, Labels: labels}
	}
	if lim != nil {
		axis.Min = lim.Min
		axis.Max = lim.Max
	}
}

func constantTicks(values []float64, labels []string) []plot.Tick {
	ticks := make([]plot.Tick, len(values))
	for i, v := range values {
		label := formatDegreeValue(v)
		if i < len(labels) {
			label = labels[i]
		}
		ticks[i] = plot.Tick{Value: v, Label: label}
	}
	return ticks
}

// LongitudeTicker relabels the major ticks of Base as longitudes in
// degrees east or west. The zero value uses plot.DefaultTicks for
// positions.
type LongitudeTicker struct {
	Base                   plot.Ticker
	ZeroDirectionLabel     bool
	DatelineDirectionLabel bool
}

// Ticks implements plot.Ticker.
func (t LongitudeTicker) Ticks(min, max float64) []plot.Tick {
	ticks := baseTicks(t.Base, min, max)
	for i, tk := range ticks {
		if tk.Label == "" {
			continue
		}
		ticks[i].Label = formatLongitude(tk.Value, t.ZeroDirectionLabel, t.DatelineDirectionLabel)
	}
	return ticks
}

// LatitudeTicker relabels the major ticks of Base as latitudes in
// degrees north or south.
type LatitudeTicker struct {
	Base plot.Ticker
}

// Ticks implements plot.Ticker.
func (t LatitudeTicker) Ticks(min, max float64) []plot.Tick {
	ticks := baseTicks(t.Base, min, max)
	for i, tk := range ticks {
		if tk.Label == "" {
			continue
		}
		ticks[i].Label = formatLatitude(tk.Value)
	}
	return ticks
}

// AutoMinorTicker inserts N-1 evenly spaced unlabeled ticks between
// each pair of adjacent major ticks produced by Base, and extends the
// same spacing to the axis edges. Minor ticks already present in the
// base ticks are discarded.
type AutoMinorTicker struct {
	Base plot.Ticker
	N    int
}

// Ticks implements plot.Ticker.
func (t AutoMinorTicker) Ticks(min, max float64) []plot.Tick {
	base := baseTicks(t.Base, min, max)
	if t.N < 2 {
		return base
	}
	var majors []plot.Tick
	for _, tk := range base {
		if tk.Label != "" {
			majors = append(majors, tk)
		}
	}
	if len(majors) < 2 {
		return base
	}
	sort.Slice(majors, func(i, j int) bool { return majors[i].Value < majors[j].Value })

	// Duplicate major values would give a zero step; take the first
	// distinct pair, and give up subdividing when every major repeats.
	step := 0.0
	for i := 1; i < len(majors); i++ {
		if d := majors[i].Value - majors[i-1].Value; d > 0 {
			step = d / float64(t.N)
			break
		}
	}
	if step <= 0 {
		return base
	}

	out := append([]plot.Tick(nil), majors...)
	sub := func(from, to float64) {
		for v := from + step; v < to-step/2; v += step {
			if v >= min && v <= max {
				out = append(out, plot.Tick{Value: v})
			}
		}
	}
	for i := 0; i+1 < len(majors); i++ {
		sub(majors[i].Value, majors[i+1].Value)
	}
	// Continue the spacing from the outermost majors to the axis edges.
	for v := majors[0].Value - step; v >= min; v -= step {
		out = append(out, plot.Tick{Value: v})
	}
	for v := majors[len(majors)-1].Value + step; v <= max; v += step {
		out = append(out, plot.Tick{Value: v})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// relabelTicker replaces the labels of the base ticker's major ticks
// positionally.
type relabelTicker struct {
	Base   plot.Ticker
	Labels []string
}

func (t relabelTicker) Ticks(min, max float64) []plot.Tick {
	ticks := baseTicks(t.Base, min, max)
	k := 0
	for i, tk := range ticks {
		if tk.Label == "" {
			continue
		}
		if k < len(t.Labels) {
			ticks[i].Label = t.Labels[k]
		}
		k++
	}
	return ticks
}

func baseTicks(base plot.Ticker, min, max float64) []plot.Tick {
	if base == nil {
		base = plot.DefaultTicks{}
	}
	return base.Ticks(min, max)
}

// formatLongitude renders a longitude tick label in degrees east/west.
// The value is wrapped into (-180, 180] first.
func formatLongitude(v float64, zeroDirectionLabel, datelineDirectionLabel bool) string {
	west := v < 0
	c := Coord{Lon: v}.NormalizeLon()
	lon := c.Lon
	if lon == -180 {
		lon = 180
	}
	switch {
	case lon == 0:
		if zeroDirectionLabel {
			return "0°E"
		}
		return "0°"
	case lon == 180:
		if !datelineDirectionLabel {
			return "180°"
		}
		if west {
			return "180°W"
		}
		return "180°E"
	case lon < 0:
		return formatDegreeValue(-lon) + "°W"
	default:
		return formatDegreeValue(lon) + "°E"
	}
}

// formatLatitude renders a latitude tick label in degrees north/south.
func formatLatitude(v float64) string {
	switch {
	case v == 0:
		return "0°"
	case v < 0:
		return formatDegreeValue(-v) + "°S"
	default:
		return formatDegreeValue(v) + "°N"
	}
}

func formatDegreeValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
