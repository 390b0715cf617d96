// Package ncviz provides plotting convenience functions that make
// gonum.org/v1/plot figures look like plots produced by the NCAR Command
// Language (NCL).
//
// # Overview
//
// ncviz is a thin layer over gonum/plot. It does not render anything
// itself: every function either mutates a caller-supplied *plot.Plot
// (tick formatters, minor ticks, titles, axis limits) or produces
// plotters and data that plug into gonum/plot's existing machinery
// (contour sets, text labels, color gradients).
//
// # Quick Start
//
//	import (
//	    "gonum.org/v1/plot"
//
//	    "github.com/gogeoviz/ncviz"
//	)
//
//	p := plot.New()
//	ncviz.AddLatLonTickLabels(p, false, false)
//	ncviz.AddMajorMinorTicks(p, 3, 3, 0)
//	ncviz.SetTitlesAndLabels(p, ncviz.TitleOptions{
//	    Main:  "Sea Level Pressure",
//	    Left:  "SLP",
//	    Right: "hPa",
//	})
//
// # Geographic data
//
// Gridded fields are carried in a DataArray: a 2D value grid backed by a
// sparse.DenseArray, labeled with latitude and longitude coordinate axes
// and free-form attributes. A DataArray implements plotter.GridXYZ, so it
// feeds gonum/plot contour and heat-map plotters directly.
//
// Coordinate transforms between spatial references use
// github.com/ctessum/geom/proj; see Projection.
//
// # Coordinate System
//
// Geographic coordinates are (longitude, latitude) in degrees, longitude
// first, matching GPS tuple order. Grid values are indexed (lat, lon),
// row-major.
package ncviz
