package ncviz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default title and axis label font sizes in points.
const (
	DefaultTitleFontSize = 18
	DefaultLabelFontSize = 16
)

// TitleOptions configures SetTitlesAndLabels. Empty strings leave the
// corresponding title or label unset; zero font sizes use the defaults.
type TitleOptions struct {
	Main         string
	MainFontSize vg.Length

	Left          string
	LeftFontSize  vg.Length
	Right         string
	RightFontSize vg.Length

	XLabel        string
	YLabel        string
	LabelFontSize vg.Length
}

// SetTitlesAndLabels places titles and axis labels on p following NCL
// conventions.
//
// With only a main title, the title sits centered just above the axes.
// When a left or right title is present, those are drawn in a row at
// the top corners of the plot area and the main title moves up above
// that row with a slightly larger font:
//
//	                 maintitle
//	 lefttitle                        righttitle
//	 ___________________________________________
//	|                   Axes                    |
func SetTitlesAndLabels(p *plot.Plot, opts TitleOptions) {
	mainSize := opts.MainFontSize
	if mainSize == 0 {
		mainSize = vg.Points(DefaultTitleFontSize)
	}
	leftSize := opts.LeftFontSize
	if leftSize == 0 {
		leftSize = vg.Points(DefaultTitleFontSize)
	}
	rightSize := opts.RightFontSize
	if rightSize == 0 {
		rightSize = vg.Points(DefaultTitleFontSize)
	}
	labelSize := opts.LabelFontSize
	if labelSize == 0 {
		labelSize = vg.Points(DefaultLabelFontSize)
	}

	corner := opts.Left != "" || opts.Right != ""

	if opts.Main != "" {
		p.Title.Text = opts.Main
		p.Title.TextStyle.Font.Size = mainSize
		p.Title.Padding = vg.Points(6)
		if corner {
			// Make room for the corner title row underneath.
			p.Title.TextStyle.Font.Size = mainSize + vg.Points(2)
			p.Title.Padding = vg.Points(6) + leftSize
		}
	}

	if corner {
		ct := &cornerTitles{
			left:  opts.Left,
			right: opts.Right,
			pad:   vg.Points(4),
		}
		ct.leftStyle = p.Title.TextStyle
		ct.leftStyle.Font.Size = leftSize
		ct.leftStyle.XAlign = text.XLeft
		ct.leftStyle.YAlign = text.YBottom
		ct.rightStyle = p.Title.TextStyle
		ct.rightStyle.Font.Size = rightSize
		ct.rightStyle.XAlign = text.XRight
		ct.rightStyle.YAlign = text.YBottom
		p.Add(ct)
	}

	if opts.XLabel != "" {
		p.X.Label.Text = opts.XLabel
		p.X.Label.TextStyle.Font.Size = labelSize
	}
	if opts.YLabel != "" {
		p.Y.Label.Text = opts.YLabel
		p.Y.Label.TextStyle.Font.Size = labelSize
	}
}

// cornerTitles draws left- and right-aligned titles just above the data
// canvas. gonum/plot only has the single centered Title, so the corner
// row is a plotter.
type cornerTitles struct {
	left, right string
	leftStyle   text.Style
	rightStyle  text.Style
	pad         vg.Length
}

// Plot implements plot.Plotter.
func (ct *cornerTitles) Plot(c draw.Canvas, plt *plot.Plot) {
	y := c.Max.Y + ct.pad
	if ct.left != "" {
		c.FillText(ct.leftStyle, vg.Point{X: c.Min.X, Y: y}, ct.left)
	}
	if ct.right != "" {
		c.FillText(ct.rightStyle, vg.Point{X: c.Max.X, Y: y}, ct.right)
	}
}
