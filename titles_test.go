package ncviz

import (
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func TestSetTitlesAndLabelsMainOnly(t *testing.T) {
	p := plot.New()
	SetTitlesAndLabels(p, TitleOptions{Main: "Temperature"})

	if p.Title.Text != "Temperature" {
		t.Errorf("title = %q, want Temperature", p.Title.Text)
	}
	if got := p.Title.TextStyle.Font.Size; got != vg.Points(DefaultTitleFontSize) {
		t.Errorf("title size = %v, want %v", got, vg.Points(DefaultTitleFontSize))
	}
}

func TestSetTitlesAndLabelsWithCornerTitles(t *testing.T) {
	p := plot.New()
	SetTitlesAndLabels(p, TitleOptions{
		Main:  "Temperature",
		Left:  "T",
		Right: "K",
	})

	// Corner titles bump the main title size by two points and raise
	// it to make room for the corner row.
	want := vg.Points(DefaultTitleFontSize) + vg.Points(2)
	if got := p.Title.TextStyle.Font.Size; got != want {
		t.Errorf("title size = %v, want %v", got, want)
	}
	if p.Title.Padding <= vg.Points(6) {
		t.Errorf("title padding = %v, want > 6pt", p.Title.Padding)
	}
}

func TestSetTitlesAndLabelsAxisLabels(t *testing.T) {
	p := plot.New()
	SetTitlesAndLabels(p, TitleOptions{
		XLabel:        "Longitude",
		YLabel:        "Latitude",
		LabelFontSize: vg.Points(12),
	})

	if p.X.Label.Text != "Longitude" || p.Y.Label.Text != "Latitude" {
		t.Errorf("axis labels = (%q, %q)", p.X.Label.Text, p.Y.Label.Text)
	}
	if got := p.X.Label.TextStyle.Font.Size; got != vg.Points(12) {
		t.Errorf("x label size = %v, want 12pt", got)
	}
	// No titles requested: title untouched.
	if p.Title.Text != "" {
		t.Errorf("title = %q, want empty", p.Title.Text)
	}
}

func TestSetTitlesAndLabelsCustomSizes(t *testing.T) {
	p := plot.New()
	SetTitlesAndLabels(p, TitleOptions{
		Main:         "A",
		MainFontSize: vg.Points(24),
	})
	if got := p.Title.TextStyle.Font.Size; got != vg.Points(24) {
		t.Errorf("title size = %v, want 24pt", got)
	}
}
