package ncviz

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ctessum/sparse"
)

// DataArray is a 2D gridded field labeled with latitude and longitude
// coordinate axes. Values are stored in a sparse.DenseArray with shape
// [len(Lats)][len(Lons)], row-major.
//
// Attrs and Encoding carry free-form metadata about the field (units,
// long name, source encoding details). ncviz never interprets them, but
// transforms such as AddCyclicLongitudes preserve them.
type DataArray struct {
	Name     string
	Lats     []float64
	Lons     []float64
	Attrs    map[string]string
	Encoding map[string]string

	data *sparse.DenseArray
}

// NewDataArray builds a DataArray from a rectangular value grid.
// values must have len(lats) rows of len(lons) columns each.
func NewDataArray(name string, values [][]float64, lats, lons []float64) (*DataArray, error) {
	if len(values) != len(lats) {
		return nil, fmt.Errorf("ncviz: %d value rows for %d latitudes", len(values), len(lats))
	}
	data := sparse.ZerosDense(len(lats), len(lons))
	for i, row := range values {
		if len(row) != len(lons) {
			return nil, fmt.Errorf("ncviz: row %d has %d values for %d longitudes", i, len(row), len(lons))
		}
		for j, v := range row {
			data.Set(v, i, j)
		}
	}
	return &DataArray{
		Name: name,
		Lats: lats,
		Lons: lons,
		data: data,
	}, nil
}

// FromDense wraps an existing dense array without copying it.
// data must be 2D with shape [len(lats)][len(lons)].
func FromDense(name string, data *sparse.DenseArray, lats, lons []float64) (*DataArray, error) {
	if data == nil {
		return nil, errors.New("ncviz: nil dense array")
	}
	if len(data.Shape) != 2 || data.Shape[0] != len(lats) || data.Shape[1] != len(lons) {
		return nil, fmt.Errorf("ncviz: dense array shape %v does not match %d lats x %d lons",
			data.Shape, len(lats), len(lons))
	}
	return &DataArray{
		Name: name,
		Lats: lats,
		Lons: lons,
		data: data,
	}, nil
}

// Dense returns the underlying dense array.
func (da *DataArray) Dense() *sparse.DenseArray { return da.data }

// Value returns the field value at latitude index i and longitude index j.
func (da *DataArray) Value(i, j int) float64 { return da.data.Get(i, j) }

// Dims returns the grid dimensions in plotter.GridXYZ order
// (columns, rows) = (longitudes, latitudes).
func (da *DataArray) Dims() (c, r int) { return len(da.Lons), len(da.Lats) }

// Z returns the field value at column c (longitude) and row r (latitude).
func (da *DataArray) Z(c, r int) float64 { return da.data.Get(r, c) }

// X returns the longitude of column c.
func (da *DataArray) X(c int) float64 { return da.Lons[c] }

// Y returns the latitude of row r.
func (da *DataArray) Y(r int) float64 { return da.Lats[r] }

// coordIndex resolves a geographic coordinate to grid indices. It is
// built once per label pass from the two coordinate axes, replacing a
// per-coordinate scan of the full grid.
//
// With tol == 0 matching is exact: the coordinate must be bit-for-bit
// identical to an axis value. With tol > 0 the nearest axis value within
// tol (absolute, per axis) matches instead.
type coordIndex struct {
	lonExact map[float64]int
	latExact map[float64]int

	lonSorted []axisValue
	latSorted []axisValue
	tol       float64
}

type axisValue struct {
	v float64
	i int
}

func newCoordIndex(da *DataArray, tol float64) *coordIndex {
	ix := &coordIndex{
		lonExact: make(map[float64]int, len(da.Lons)),
		latExact: make(map[float64]int, len(da.Lats)),
		tol:      tol,
	}
	for j, v := range da.Lons {
		ix.lonExact[v] = j
	}
	for i, v := range da.Lats {
		ix.latExact[v] = i
	}
	if tol > 0 {
		ix.lonSorted = sortedAxis(da.Lons)
		ix.latSorted = sortedAxis(da.Lats)
	}
	return ix
}

func sortedAxis(axis []float64) []axisValue {
	s := make([]axisValue, len(axis))
	for i, v := range axis {
		s[i] = axisValue{v: v, i: i}
	}
	sort.Slice(s, func(a, b int) bool { return s[a].v < s[b].v })
	return s
}

// lookup returns the (lat, lon) grid indices for c.
func (ix *coordIndex) lookup(c Coord) (i, j int, ok bool) {
	if ix.tol <= 0 {
		j, okLon := ix.lonExact[c.Lon]
		i, okLat := ix.latExact[c.Lat]
		return i, j, okLon && okLat
	}
	j, okLon := nearestWithin(ix.lonSorted, c.Lon, ix.tol)
	i, okLat := nearestWithin(ix.latSorted, c.Lat, ix.tol)
	return i, j, okLon && okLat
}

// nearestWithin finds the original index of the axis value nearest to v,
// provided it lies within tol.
func nearestWithin(sorted []axisValue, v, tol float64) (int, bool) {
	if len(sorted) == 0 {
		return 0, false
	}
	k := sort.Search(len(sorted), func(n int) bool { return sorted[n].v >= v })
	best := -1
	bestDist := tol
	for _, cand := range []int{k - 1, k} {
		if cand < 0 || cand >= len(sorted) {
			continue
		}
		d := v - sorted[cand].v
		if d < 0 {
			d = -d
		}
		if d <= bestDist {
			bestDist = d
			best = cand
		}
	}
	if best < 0 {
		return 0, false
	}
	return sorted[best].i, true
}
