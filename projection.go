package ncviz

import (
	"fmt"

	"github.com/ctessum/geom/proj"
)

// Spatial reference definitions for common plot projections, in PROJ4
// format. Parseable by NewProjection.
const (
	// LongLat is unprojected longitude/latitude in degrees.
	LongLat = "+proj=longlat"

	// WebMercator is the spherical Mercator projection used by web maps.
	WebMercator = "+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 " +
		"+x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs"
)

// Projection transforms geographic coordinates from a source spatial
// reference to a target spatial reference. It wraps a
// github.com/ctessum/geom/proj transform pair.
//
// The zero value is not usable; construct with NewProjection.
type Projection struct {
	source, target string
	transform      proj.Transformer
}

// NewProjection parses two PROJ4 spatial reference definitions and
// builds the transform between them. Typical use transforms label
// coordinates from LongLat into the projection the plot is drawn in.
func NewProjection(source, target string) (*Projection, error) {
	src, err := proj.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("ncviz: parsing source projection: %w", err)
	}
	dst, err := proj.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("ncviz: parsing target projection: %w", err)
	}
	t, err := src.NewTransform(dst)
	if err != nil {
		return nil, fmt.Errorf("ncviz: building transform: %w", err)
	}
	return &Projection{source: source, target: target, transform: t}, nil
}

// Point transforms a single coordinate to the target spatial reference.
func (pj *Projection) Point(c Coord) (x, y float64, err error) {
	return pj.transform(c.Lon, c.Lat)
}

// projectCoords transforms a coordinate list, pairing each input with its
// projected position. Coordinates the transform rejects are returned
// with ok == false rather than aborting the batch.
func projectCoords(pj *Projection, cs []Coord) []projected {
	out := make([]projected, len(cs))
	for i, c := range cs {
		out[i].src = c
		if pj == nil {
			// No transform requested: plot coordinates are
			// geographic coordinates.
			out[i].x, out[i].y, out[i].ok = c.Lon, c.Lat, true
			continue
		}
		x, y, err := pj.Point(c)
		if err != nil {
			Logger().Debug("ncviz: projection failed, skipping coordinate",
				"lon", c.Lon, "lat", c.Lat, "err", err)
			continue
		}
		out[i].x, out[i].y, out[i].ok = x, y, true
	}
	return out
}

type projected struct {
	src  Coord
	x, y float64
	ok   bool
}
