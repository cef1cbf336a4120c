package grid

import (
	"fmt"
	"math"

	"github.com/arloliu/asciigrid/errs"
)

// GetInterpolate returns the bilinearly interpolated value at the
// planar coordinate (x, y), treating each cell's value as attached to
// the cell's center.
//
// The valid query domain extends half a cell beyond the grid extent on
// every side; outside it the call fails with errs.ErrOutOfBounds.
// Within the domain:
//
//   - Between the outermost cell centers on both axes, the result is
//     the bilinear blend of the four surrounding centers.
//   - Beyond the outermost centers on exactly one axis (the boundary
//     ring), the result degrades to linear interpolation between the
//     two nearest centers along the other axis.
//   - Beyond on both axes (the corner pockets), the result is the
//     nearest cell's raw value.
//
// If any contributing cell equals the no-data sentinel, the result is
// the sentinel itself; partial blending with missing data is never
// performed.
func (r *Reader) GetInterpolate(x, y float64) (float64, error) {
	h := r.header
	cs := h.cellSize
	if x < h.MinX()-cs/2 || x > h.MaxX()+cs/2 || y < h.MinY()-cs/2 || y > h.MaxY()+cs/2 {
		return 0, fmt.Errorf("%w: coordinate (%v, %v)", errs.ErrOutOfBounds, x, y)
	}

	// Continuous cell-center coordinates: gx equals c exactly at the
	// center of column c; gr equals w exactly at the center of row w,
	// counted downward from the top row.
	gx := (x-h.xll)/cs - 0.5
	gr := float64(h.nrows-1) - ((y-h.yll)/cs - 0.5)

	inX := h.ncols >= 2 && gx >= 0 && gx <= float64(h.ncols-1)
	inY := h.nrows >= 2 && gr >= 0 && gr <= float64(h.nrows-1)

	switch {
	case inX && inY:
		return r.bilinear(gx, gr)
	case inX:
		row := clampIndex(gr, h.nrows)
		return r.linearAcrossCols(row, gx)
	case inY:
		col := clampIndex(gx, h.ncols)
		return r.linearAcrossRows(col, gr)
	default:
		return r.GetIndex(clampIndex(gr, h.nrows), clampIndex(gx, h.ncols))
	}
}

// bilinear blends the four cell centers surrounding the continuous
// point (gx, gr), with gx in [0, ncols-1] and gr in [0, nrows-1].
func (r *Reader) bilinear(gx, gr float64) (float64, error) {
	col0 := min(int(math.Floor(gx)), r.header.ncols-2)
	row0 := min(int(math.Floor(gr)), r.header.nrows-2)
	tx := gx - float64(col0)
	ty := gr - float64(row0)

	v00, err := r.GetIndex(row0, col0)
	if err != nil {
		return 0, err
	}
	v01, err := r.GetIndex(row0, col0+1)
	if err != nil {
		return 0, err
	}
	v10, err := r.GetIndex(row0+1, col0)
	if err != nil {
		return 0, err
	}
	v11, err := r.GetIndex(row0+1, col0+1)
	if err != nil {
		return 0, err
	}

	if nd, ok := r.noDataAmong(v00, v01, v10, v11); ok {
		return nd, nil
	}

	top := v00*(1-tx) + v01*tx
	bottom := v10*(1-tx) + v11*tx

	return top*(1-ty) + bottom*ty, nil
}

// linearAcrossCols interpolates along one row between the centers of
// the two columns bracketing gx.
func (r *Reader) linearAcrossCols(row int, gx float64) (float64, error) {
	col0 := min(int(math.Floor(gx)), r.header.ncols-2)
	tx := gx - float64(col0)

	v0, err := r.GetIndex(row, col0)
	if err != nil {
		return 0, err
	}
	v1, err := r.GetIndex(row, col0+1)
	if err != nil {
		return 0, err
	}

	if nd, ok := r.noDataAmong(v0, v1); ok {
		return nd, nil
	}

	return v0*(1-tx) + v1*tx, nil
}

// linearAcrossRows interpolates along one column between the centers of
// the two rows bracketing gr.
func (r *Reader) linearAcrossRows(col int, gr float64) (float64, error) {
	row0 := min(int(math.Floor(gr)), r.header.nrows-2)
	ty := gr - float64(row0)

	v0, err := r.GetIndex(row0, col)
	if err != nil {
		return 0, err
	}
	v1, err := r.GetIndex(row0+1, col)
	if err != nil {
		return 0, err
	}

	if nd, ok := r.noDataAmong(v0, v1); ok {
		return nd, nil
	}

	return v0*(1-ty) + v1*ty, nil
}

// noDataAmong reports whether any of the fetched values is the no-data
// sentinel, returning the sentinel for propagation when so.
func (r *Reader) noDataAmong(values ...float64) (float64, bool) {
	for _, v := range values {
		if r.header.IsNoData(v) {
			return r.header.noData, true
		}
	}

	return 0, false
}

// clampIndex maps a continuous center coordinate to the nearest valid
// index in [0, n).
func clampIndex(g float64, n int) int {
	if g < 0 {
		return 0
	}
	if g > float64(n-1) {
		return n - 1
	}

	return int(math.Round(g))
}
