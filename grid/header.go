package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/asciigrid/errs"
	"github.com/arloliu/asciigrid/format"
)

// Header is the parsed, immutable description of a raster's geometry.
//
// The lower-left anchor is always normalized to the cell corner: when a
// file declares XLLCENTER/YLLCENTER the anchor is shifted by half a
// cell during parsing, so MinX/MinY always name the grid's outer
// corner. The original registration remains available via CornerType.
type Header struct {
	ncols      int
	nrows      int
	xll        float64
	yll        float64
	cellSize   float64
	noData     float64
	hasNoData  bool
	cornerType format.CornerType
}

// NumCols returns the number of columns in the grid.
func (h Header) NumCols() int { return h.ncols }

// NumRows returns the number of rows in the grid.
func (h Header) NumRows() int { return h.nrows }

// CellSize returns the edge length of one square cell.
func (h Header) CellSize() float64 { return h.cellSize }

// MinX returns the x coordinate of the grid's lower-left corner.
func (h Header) MinX() float64 { return h.xll }

// MinY returns the y coordinate of the grid's lower-left corner.
func (h Header) MinY() float64 { return h.yll }

// MaxX returns the x coordinate of the grid's upper-right corner.
func (h Header) MaxX() float64 { return h.xll + h.cellSize*float64(h.ncols) }

// MaxY returns the y coordinate of the grid's upper-right corner.
func (h Header) MaxY() float64 { return h.yll + h.cellSize*float64(h.nrows) }

// CornerType reports whether the file anchored its lower-left
// coordinates at the cell corner or the cell center.
func (h Header) CornerType() format.CornerType { return h.cornerType }

// NoData returns the no-data sentinel and whether the header declared one.
func (h Header) NoData() (float64, bool) { return h.noData, h.hasNoData }

// IsNoData reports whether v equals the header's no-data sentinel.
//
// The sentinel is an ordinary number chosen by convention, so the
// comparison is exact equality, not NaN semantics. Always false when
// the header declares no sentinel.
func (h Header) IsNoData(v float64) bool { return h.hasNoData && v == h.noData }

// IndexOf returns the row and column of the cell containing the planar
// coordinate (x, y).
//
// Row 0 is the northern (top) edge: row index increases downward while
// y increases upward. A coordinate exactly on the grid's max edge
// resolves to the last cell on that axis instead of failing. Returns
// errs.ErrOutOfBounds for coordinates outside the grid extent.
func (h Header) IndexOf(x, y float64) (row, col int, err error) {
	if x < h.MinX() || x > h.MaxX() || y < h.MinY() || y > h.MaxY() {
		return 0, 0, fmt.Errorf("%w: coordinate (%v, %v)", errs.ErrOutOfBounds, x, y)
	}

	col = int(math.Floor((x - h.xll) / h.cellSize))
	if col == h.ncols {
		col--
	}

	fromBottom := int(math.Floor((y - h.yll) / h.cellSize))
	if fromBottom == h.nrows {
		fromBottom--
	}
	row = h.nrows - 1 - fromBottom

	return row, col, nil
}

// IndexPos returns the planar coordinate of the center of the cell at
// (row, col). Returns errs.ErrOutOfBounds for invalid indices.
func (h Header) IndexPos(row, col int) (x, y float64, err error) {
	if row < 0 || row >= h.nrows || col < 0 || col >= h.ncols {
		return 0, 0, fmt.Errorf("%w: cell (%d, %d)", errs.ErrOutOfBounds, row, col)
	}

	x = h.xll + (float64(col)+0.5)*h.cellSize
	y = h.yll + (float64(h.nrows-1-row)+0.5)*h.cellSize

	return x, y, nil
}

// Header field keywords, matched case-insensitively.
const (
	keyNcols     = "NCOLS"
	keyNrows     = "NROWS"
	keyXllCorner = "XLLCORNER"
	keyXllCenter = "XLLCENTER"
	keyYllCorner = "YLLCORNER"
	keyYllCenter = "YLLCENTER"
	keyCellSize  = "CELLSIZE"
	keyNoData    = "NODATA_VALUE"
)

// headerParser accumulates header fields line by line, in any order,
// until the first line that is not a recognized header keyword.
type headerParser struct {
	header     Header
	seen       map[string]bool
	xCorner    format.CornerType
	yCorner    format.CornerType
	rawXll     float64
	rawYll     float64
	haveNcols  bool
	haveNrows  bool
	haveX      bool
	haveY      bool
	haveCell   bool
}

func newHeaderParser() *headerParser {
	return &headerParser{seen: make(map[string]bool, 6)}
}

// consume attempts to interpret fields as a header line. It reports
// false, with no error, when the line does not begin with a recognized
// header keyword, which marks the start of the data section.
func (p *headerParser) consume(fields []string) (bool, error) {
	keyword := strings.ToUpper(fields[0])
	switch keyword {
	case keyNcols, keyNrows, keyXllCorner, keyXllCenter, keyYllCorner, keyYllCenter, keyCellSize, keyNoData:
	default:
		return false, nil
	}

	if len(fields) != 2 {
		return true, fmt.Errorf("%w: header line %q must have exactly two fields", errs.ErrInvalidHeaderValue, keyword)
	}
	if p.seen[keyword] {
		return true, fmt.Errorf("%w: %s", errs.ErrDuplicateHeaderField, keyword)
	}
	p.seen[keyword] = true

	if err := p.setField(keyword, fields[1]); err != nil {
		return true, err
	}

	return true, nil
}

func (p *headerParser) setField(keyword, value string) error {
	switch keyword {
	case keyNcols, keyNrows:
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", errs.ErrInvalidHeaderValue, keyword, value, err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", errs.ErrNonPositiveDimension, keyword)
		}
		if keyword == keyNcols {
			p.header.ncols = int(n)
			p.haveNcols = true
		} else {
			p.header.nrows = int(n)
			p.haveNrows = true
		}

		return nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", errs.ErrInvalidHeaderValue, keyword, value, err)
	}

	switch keyword {
	case keyXllCorner, keyXllCenter:
		if p.haveX {
			return fmt.Errorf("%w: %s", errs.ErrDuplicateHeaderField, keyword)
		}
		p.rawXll = f
		p.haveX = true
		p.xCorner = format.CornerLL
		if keyword == keyXllCenter {
			p.xCorner = format.CenterLL
		}
	case keyYllCorner, keyYllCenter:
		if p.haveY {
			return fmt.Errorf("%w: %s", errs.ErrDuplicateHeaderField, keyword)
		}
		p.rawYll = f
		p.haveY = true
		p.yCorner = format.CornerLL
		if keyword == keyYllCenter {
			p.yCorner = format.CenterLL
		}
	case keyCellSize:
		if f <= 0 {
			return fmt.Errorf("%w: got %v", errs.ErrNonPositiveCellSize, f)
		}
		p.header.cellSize = f
		p.haveCell = true
	case keyNoData:
		p.header.noData = f
		p.header.hasNoData = true
	}

	return nil
}

// finish validates that all required fields were seen and returns the
// completed header, normalizing a center-registered anchor to the cell
// corner.
func (p *headerParser) finish() (Header, error) {
	switch {
	case !p.haveNcols:
		return Header{}, fmt.Errorf("%w: %s", errs.ErrMissingHeaderField, keyNcols)
	case !p.haveNrows:
		return Header{}, fmt.Errorf("%w: %s", errs.ErrMissingHeaderField, keyNrows)
	case !p.haveX:
		return Header{}, fmt.Errorf("%w: %s or %s", errs.ErrMissingHeaderField, keyXllCorner, keyXllCenter)
	case !p.haveY:
		return Header{}, fmt.Errorf("%w: %s or %s", errs.ErrMissingHeaderField, keyYllCorner, keyYllCenter)
	case !p.haveCell:
		return Header{}, fmt.Errorf("%w: %s", errs.ErrMissingHeaderField, keyCellSize)
	}

	if p.xCorner != p.yCorner {
		return Header{}, fmt.Errorf("%w", errs.ErrCornerTypeMismatch)
	}

	p.header.cornerType = p.xCorner
	p.header.xll = p.rawXll
	p.header.yll = p.rawYll
	if p.header.cornerType == format.CenterLL {
		p.header.xll -= p.header.cellSize / 2
		p.header.yll -= p.header.cellSize / 2
	}

	return p.header, nil
}
