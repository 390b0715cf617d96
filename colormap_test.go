package ncviz

import (
	"image/color"
	"testing"
)

// colorDistance returns the max channel difference between two colors,
// in 16-bit channel units.
func colorDistance(a, b color.Color) uint32 {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	max := uint32(0)
	for _, d := range []int64{
		int64(ar) - int64(br),
		int64(ag) - int64(bg),
		int64(ab) - int64(bb),
		int64(aa) - int64(ba),
	} {
		if d < 0 {
			d = -d
		}
		if uint32(d) > max {
			max = uint32(d)
		}
	}
	return max
}

// channel tolerance for sampled colors: ~2/255.
const colorEpsilon = 520

func TestGradientAtEndpoints(t *testing.T) {
	g := NewGradient("bw", []ColorStop{
		{0, color.Black},
		{1, color.White},
	}, 16)

	if d := colorDistance(g.At(0), color.Black); d > colorEpsilon {
		t.Errorf("At(0) distance from black = %d", d)
	}
	if d := colorDistance(g.At(1), color.White); d > colorEpsilon {
		t.Errorf("At(1) distance from white = %d", d)
	}
	// Out-of-range clamps.
	if d := colorDistance(g.At(-0.5), color.Black); d > colorEpsilon {
		t.Errorf("At(-0.5) distance from black = %d", d)
	}
	if d := colorDistance(g.At(1.5), color.White); d > colorEpsilon {
		t.Errorf("At(1.5) distance from white = %d", d)
	}
}

func TestGradientAtTransparentStop(t *testing.T) {
	clear := color.RGBA{}
	red := color.RGBA{R: 255, A: 255}
	g := NewGradient("fade", []ColorStop{
		{0, clear},
		{1, red},
	}, 16)

	// A fully transparent stop has no well-defined hue to blend from;
	// positions snap to the nearer stop instead of interpolating
	// garbage.
	if got := g.At(0.2); got != color.Color(clear) {
		t.Errorf("At(0.2) = %v, want the transparent stop", got)
	}
	if got := g.At(0.8); got != color.Color(red) {
		t.Errorf("At(0.8) = %v, want the red stop", got)
	}
}

func TestGradientColorsCount(t *testing.T) {
	g := NewGradient("x", []ColorStop{{0, color.Black}, {1, color.White}}, 7)
	if got := len(g.Colors()); got != 7 {
		t.Errorf("len(Colors()) = %d, want 7", got)
	}
}

func TestTruncateFullRange(t *testing.T) {
	n := 11
	g := Truncate(BlueYellowRed, 0.0, 1.0, n, WithoutRegister())

	if got := len(g.Colors()); got != n {
		t.Fatalf("len(Colors()) = %d, want %d", got, n)
	}
	// Full-range truncation reproduces the original sampling.
	for i := 0; i < n; i++ {
		pos := float64(i) / float64(n-1)
		if d := colorDistance(g.At(pos), BlueYellowRed.At(pos)); d > colorEpsilon {
			t.Errorf("At(%v) differs from original by %d", pos, d)
		}
	}
}

func TestTruncateSubRange(t *testing.T) {
	g := Truncate(BlueYellowRed, 0.3, 0.7, 9, WithoutRegister())

	// The truncated endpoints are the original's colors at 0.3 and 0.7.
	if d := colorDistance(g.At(0), BlueYellowRed.At(0.3)); d > colorEpsilon {
		t.Errorf("At(0) differs from original At(0.3) by %d", d)
	}
	if d := colorDistance(g.At(1), BlueYellowRed.At(0.7)); d > colorEpsilon {
		t.Errorf("At(1) differs from original At(0.7) by %d", d)
	}
	// The original's extreme colors are not in the truncated range.
	if d := colorDistance(g.At(0), BlueYellowRed.At(0)); d <= colorEpsilon {
		t.Error("truncated gradient still starts at the original's first color")
	}
}

func TestTruncateDefaultName(t *testing.T) {
	g := Truncate(BlueYellowRed, 0.3, 0.7, 5, WithoutRegister())
	want := "trunc(BlueYellowRed,0.30,0.70)"
	if g.Name() != want {
		t.Errorf("Name() = %q, want %q", g.Name(), want)
	}
}

func TestTruncateRegistersInDefaultRegistry(t *testing.T) {
	g := Truncate(BlueYellowRed, 0.2, 0.8, 5)
	got, ok := DefaultRegistry.Lookup("trunc(BlueYellowRed,0.20,0.80)")
	if !ok {
		t.Fatal("truncated gradient not found in DefaultRegistry")
	}
	if got != g {
		t.Error("registry returned a different gradient")
	}
}

func TestTruncateWithNameAndRegistry(t *testing.T) {
	reg := NewRegistry()
	g := Truncate(BlueYellowRed, 0.1, 0.9, 5, WithName("custom"), WithRegistry(reg))

	if g.Name() != "custom" {
		t.Errorf("Name() = %q, want custom", g.Name())
	}
	if _, ok := reg.Lookup("custom"); !ok {
		t.Error("gradient not registered in caller registry")
	}
	if _, ok := DefaultRegistry.Lookup("custom"); ok {
		t.Error("gradient leaked into DefaultRegistry")
	}
}

func TestTruncateWithoutRegister(t *testing.T) {
	Truncate(BlueYellowRed, 0.41, 0.59, 5, WithoutRegister())
	if _, ok := DefaultRegistry.Lookup("trunc(BlueYellowRed,0.41,0.59)"); ok {
		t.Error("WithoutRegister still registered the gradient")
	}
}

func TestBuiltinGradientsRegistered(t *testing.T) {
	for _, name := range []string{"BlueYellowRed", "BlueRed", "WhiteBlueGreenYellowRed"} {
		if _, ok := DefaultRegistry.Lookup(name); !ok {
			t.Errorf("built-in gradient %q not registered", name)
		}
	}
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewGradient("b", nil, 4))
	reg.Register(NewGradient("a", nil, 4))
	names := reg.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names() = %v, want [a b]", names)
	}
}
