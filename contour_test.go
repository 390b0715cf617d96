package ncviz

import (
	"testing"

	"gonum.org/v1/plot"
)

func TestAddContourRecordsLevels(t *testing.T) {
	da := testGrid(t)
	p := plot.New()

	levels := []float64{2, 5, 8}
	cs, err := AddContour(p, da, levels, BlueYellowRed)
	if err != nil {
		t.Fatalf("AddContour() = %v", err)
	}
	got := cs.Levels()
	if len(got) != 3 || got[0] != 2 || got[2] != 8 {
		t.Errorf("Levels() = %v, want %v", got, levels)
	}
	if cs.Grid() != da {
		t.Error("Grid() did not return the input data array")
	}

	// Levels() returns a copy.
	got[0] = -1
	if cs.Levels()[0] != 2 {
		t.Error("mutating the returned levels changed the contour set")
	}
}

func TestAddContourDefaultLevels(t *testing.T) {
	da := testGrid(t)
	p := plot.New()

	cs, err := AddContour(p, da, nil, BlueYellowRed)
	if err != nil {
		t.Fatal(err)
	}
	levels := cs.Levels()
	if len(levels) != 9 {
		t.Fatalf("got %d default levels, want 9", len(levels))
	}
	// Strictly inside the data range [1, 9].
	if levels[0] <= 1 || levels[len(levels)-1] >= 9 {
		t.Errorf("default levels %v not strictly inside (1, 9)", levels)
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Fatalf("levels not ascending: %v", levels)
		}
	}
}

func TestAddContourNilArgs(t *testing.T) {
	da := testGrid(t)
	if _, err := AddContour(nil, da, nil, BlueYellowRed); err == nil {
		t.Error("nil plot should fail")
	}
	if _, err := AddContour(plot.New(), nil, nil, BlueYellowRed); err == nil {
		t.Error("nil data array should fail")
	}
}

func TestDefaultLevelsConstantField(t *testing.T) {
	da, err := NewDataArray("x", [][]float64{{3, 3}, {3, 3}},
		[]float64{0, 10}, []float64{0, 10})
	if err != nil {
		t.Fatal(err)
	}
	levels := defaultLevels(da, 9)
	if len(levels) != 1 || levels[0] != 3 {
		t.Errorf("defaultLevels for constant field = %v, want [3]", levels)
	}
}
