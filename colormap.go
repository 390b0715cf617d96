package ncviz

import (
	"fmt"
	"image/color"
	"sort"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

// ColorStop is a color at a position along a gradient, offset in [0, 1].
type ColorStop struct {
	Offset float64
	Color  color.Color
}

// Gradient is a named continuous color map over [0, 1], defined by a
// sorted list of color stops with linear-RGB interpolation between
// them. It implements gonum/plot's palette.Palette, so it can be passed
// directly to contour and heat-map plotters.
type Gradient struct {
	name    string
	stops   []ColorStop
	samples int
}

// NewGradient builds a gradient from color stops. Stops are sorted by
// offset; samples is the number of discrete colors returned by Colors
// (256 when <= 0).
func NewGradient(name string, stops []ColorStop, samples int) *Gradient {
	sorted := append([]ColorStop(nil), stops...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
	if samples <= 0 {
		samples = 256
	}
	return &Gradient{name: name, stops: sorted, samples: samples}
}

// Name returns the gradient's registered name.
func (g *Gradient) Name() string { return g.name }

// At returns the interpolated color at t. Out-of-range values clamp to
// the edge colors.
func (g *Gradient) At(t float64) color.Color {
	if len(g.stops) == 0 {
		return color.Black
	}
	if t <= g.stops[0].Offset {
		return g.stops[0].Color
	}
	last := g.stops[len(g.stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	k := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].Offset >= t })
	lo, hi := g.stops[k-1], g.stops[k]
	span := hi.Offset - lo.Offset
	if span == 0 {
		return hi.Color
	}
	frac := (t - lo.Offset) / span
	c1, ok1 := colorful.MakeColor(lo.Color)
	c2, ok2 := colorful.MakeColor(hi.Color)
	if !ok1 || !ok2 {
		// A fully transparent stop has no well-defined color to
		// interpolate; snap to the nearer stop instead.
		if frac < 0.5 {
			return lo.Color
		}
		return hi.Color
	}
	// Interpolate in linear RGB for perceptually even ramps.
	r1, g1, b1 := c1.LinearRgb()
	r2, g2, b2 := c2.LinearRgb()
	return colorful.LinearRgb(
		r1+frac*(r2-r1),
		g1+frac*(g2-g1),
		b1+frac*(b2-b1),
	).Clamped()
}

// Colors returns the gradient discretized into its sample count,
// implementing palette.Palette.
func (g *Gradient) Colors() []color.Color {
	out := make([]color.Color, g.samples)
	if g.samples == 1 {
		out[0] = g.At(0)
		return out
	}
	for i := range out {
		out[i] = g.At(float64(i) / float64(g.samples-1))
	}
	return out
}

// Colormap is the sampling surface Truncate operates on. Gradient
// implements it.
type Colormap interface {
	Name() string
	At(t float64) color.Color
}

// Registry is a name-to-gradient mapping. The zero value is not usable;
// construct with NewRegistry.
//
// Entries are never evicted. DefaultRegistry is the process-wide
// registry Truncate writes to unless told otherwise; callers wanting to
// avoid global state can hold their own Registry (WithRegistry) or skip
// registration entirely (WithoutRegister).
type Registry struct {
	mu sync.RWMutex
	m  map[string]*Gradient
}

// NewRegistry returns an empty gradient registry.
func NewRegistry() *Registry {
	return &Registry{m: make(map[string]*Gradient)}
}

// Register stores g under its name, replacing any previous entry.
func (r *Registry) Register(g *Gradient) {
	r.mu.Lock()
	r.m[g.Name()] = g
	r.mu.Unlock()
}

// Lookup returns the gradient registered under name.
func (r *Registry) Lookup(name string) (*Gradient, bool) {
	r.mu.RLock()
	g, ok := r.m[name]
	r.mu.RUnlock()
	return g, ok
}

// Names returns the registered gradient names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.m))
	for name := range r.m {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// DefaultRegistry is the process-wide gradient registry.
var DefaultRegistry = NewRegistry()

// TruncateOption configures Truncate.
type TruncateOption func(*truncateOptions)

type truncateOptions struct {
	name     string
	registry *Registry
	register bool
}

// WithName registers the truncated gradient under an explicit name
// instead of the generated "trunc(<name>,<min>,<max>)" form.
func WithName(name string) TruncateOption {
	return func(o *truncateOptions) { o.name = name }
}

// WithRegistry registers the truncated gradient in r instead of
// DefaultRegistry.
func WithRegistry(r *Registry) TruncateOption {
	return func(o *truncateOptions) { o.registry = r }
}

// WithoutRegister returns the truncated gradient without registering it
// anywhere.
func WithoutRegister() TruncateOption {
	return func(o *truncateOptions) { o.register = false }
}

// Truncate samples cm at n evenly spaced points over [minVal, maxVal]
// and returns the result as a new gradient over [0, 1].
//
// The new gradient is registered in DefaultRegistry under the name
// "trunc(<name>,<min:.2f>,<max:.2f>)" unless an option says otherwise.
// minVal and maxVal are not validated; values outside [0, 1] sample
// whatever cm does at those positions (Gradient clamps).
func Truncate(cm Colormap, minVal, maxVal float64, n int, opts ...TruncateOption) *Gradient {
	o := truncateOptions{
		name:     fmt.Sprintf("trunc(%s,%.2f,%.2f)", cm.Name(), minVal, maxVal),
		registry: DefaultRegistry,
		register: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if n < 2 {
		n = 2
	}
	positions := floats.Span(make([]float64, n), minVal, maxVal)
	stops := make([]ColorStop, n)
	for i, pos := range positions {
		stops[i] = ColorStop{
			Offset: float64(i) / float64(n-1),
			Color:  cm.At(pos),
		}
	}

	g := NewGradient(o.name, stops, n)
	if o.register {
		o.registry.Register(g)
	}
	return g
}
