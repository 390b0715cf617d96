package ncviz

import (
	"errors"

	"github.com/ctessum/sparse"
)

// AddCyclicLongitudes returns a copy of da with one extra longitude
// column so that globally periodic data renders without a seam at the
// wrap-around meridian.
//
// The appended longitude wraps the first coordinate one full period
// past the last: input longitudes [0, 120, 240] gain a fourth point at
// 360, whose column repeats the values of column 0. Name, latitudes,
// Attrs, and Encoding are preserved; the input array is not modified.
func AddCyclicLongitudes(da *DataArray) (*DataArray, error) {
	if da == nil {
		return nil, errors.New("ncviz: nil data array")
	}
	if len(da.Lons) == 0 {
		return nil, errors.New("ncviz: empty longitude axis")
	}

	nlat, nlon := len(da.Lats), len(da.Lons)
	data := sparse.ZerosDense(nlat, nlon+1)
	for i := 0; i < nlat; i++ {
		for j := 0; j < nlon; j++ {
			data.Set(da.data.Get(i, j), i, j)
		}
		data.Set(da.data.Get(i, 0), i, nlon)
	}

	lons := make([]float64, nlon+1)
	copy(lons, da.Lons)
	lons[nlon] = da.Lons[0] + 360

	lats := make([]float64, nlat)
	copy(lats, da.Lats)

	return &DataArray{
		Name:     da.Name,
		Lats:     lats,
		Lons:     lons,
		Attrs:    copyMeta(da.Attrs),
		Encoding: copyMeta(da.Encoding),
		data:     data,
	}, nil
}

func copyMeta(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
