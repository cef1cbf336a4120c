// Package tileset assembles multiple ASCII raster files into one
// queryable mosaic.
//
// Large elevation datasets ship as many adjacent tiles rather than one
// file. A Tileset registers each tile by path, records its extent from
// the header, and resolves point queries to the covering tile, opening
// tile readers lazily on first data access. Tiles are identified by the
// xxHash64 of their path.
//
// A Tileset, like the readers it wraps, is NOT thread-safe.
package tileset

import (
	"errors"
	"fmt"
	"iter"

	"github.com/arloliu/asciigrid"
	"github.com/arloliu/asciigrid/errs"
	"github.com/arloliu/asciigrid/grid"
	"github.com/arloliu/asciigrid/internal/hash"
)

// Tile is one registered raster within a Tileset.
type Tile struct {
	path   string
	id     uint64
	header grid.Header
	opts   []grid.Option
	reader *grid.Reader
}

// ID returns the tile's xxHash64 identifier, derived from its path.
func (t *Tile) ID() uint64 { return t.id }

// Path returns the tile's file path.
func (t *Tile) Path() string { return t.path }

// Header returns the tile's parsed header. Available without opening
// the tile's data reader.
func (t *Tile) Header() grid.Header { return t.header }

// Reader returns the tile's grid reader, opening it on first call and
// caching it until Close.
func (t *Tile) Reader() (*grid.Reader, error) {
	if t.reader == nil {
		reader, err := asciigrid.Open(t.path, t.opts...)
		if err != nil {
			return nil, fmt.Errorf("open tile %s: %w", t.path, err)
		}
		t.reader = reader
	}

	return t.reader, nil
}

// Close releases the tile's reader, if open. The tile remains
// registered and reopens on the next data access.
func (t *Tile) Close() error {
	if t.reader == nil {
		return nil
	}
	err := t.reader.Close()
	t.reader = nil

	return err
}

// contains reports whether (x, y) lies within the tile's extent.
func (t *Tile) contains(x, y float64) bool {
	h := t.header

	return x >= h.MinX() && x <= h.MaxX() && y >= h.MinY() && y <= h.MaxY()
}

// Tileset is an ordered collection of raster tiles resolved by extent.
// When tile extents overlap, the earliest added tile wins.
type Tileset struct {
	tiles []*Tile
	byID  map[uint64]*Tile
}

// New creates an empty Tileset.
func New() *Tileset {
	return &Tileset{byID: make(map[uint64]*Tile)}
}

// Add registers the raster at path. The file is opened once to parse
// its header and closed again; the data reader opens lazily on first
// query that resolves to this tile. The given options apply to that
// reader.
//
// Returns the registered tile, or an error if the path was already
// added or its header is invalid.
func (ts *Tileset) Add(path string, opts ...grid.Option) (*Tile, error) {
	id := hash.ID(path)
	if _, ok := ts.byID[id]; ok {
		return nil, fmt.Errorf("tile already registered: %s", path)
	}

	reader, err := asciigrid.Open(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("register tile %s: %w", path, err)
	}
	header := reader.Header()
	if err := reader.Close(); err != nil {
		return nil, fmt.Errorf("register tile %s: %w", path, err)
	}

	tile := &Tile{
		path:   path,
		id:     id,
		header: header,
		opts:   opts,
	}
	ts.tiles = append(ts.tiles, tile)
	ts.byID[id] = tile

	return tile, nil
}

// Len returns the number of registered tiles.
func (ts *Tileset) Len() int { return len(ts.tiles) }

// TileID returns the identifier Add derives for the given path.
func (ts *Tileset) TileID(path string) uint64 { return hash.ID(path) }

// Tile returns the registered tile with the given identifier.
func (ts *Tileset) Tile(id uint64) (*Tile, bool) {
	t, ok := ts.byID[id]

	return t, ok
}

// All returns an iterator over the registered tiles in insertion order.
func (ts *Tileset) All() iter.Seq[*Tile] {
	return func(yield func(*Tile) bool) {
		for _, t := range ts.tiles {
			if !yield(t) {
				return
			}
		}
	}
}

// Get returns the value of the cell containing (x, y) in the covering
// tile. Fails with errs.ErrOutOfBounds when no tile covers the point.
func (ts *Tileset) Get(x, y float64) (float64, error) {
	reader, err := ts.coveringReader(x, y)
	if err != nil {
		return 0, err
	}

	return reader.Get(x, y)
}

// GetInterpolate returns the interpolated value at (x, y) within the
// covering tile. Interpolation never blends across tile boundaries;
// near an edge the covering tile's own edge policy applies.
func (ts *Tileset) GetInterpolate(x, y float64) (float64, error) {
	reader, err := ts.coveringReader(x, y)
	if err != nil {
		return 0, err
	}

	return reader.GetInterpolate(x, y)
}

// Close releases every open tile reader, reporting the first failure
// but attempting all.
func (ts *Tileset) Close() error {
	var errList []error
	for _, t := range ts.tiles {
		if err := t.Close(); err != nil {
			errList = append(errList, err)
		}
	}

	return errors.Join(errList...)
}

func (ts *Tileset) coveringReader(x, y float64) (*grid.Reader, error) {
	for _, t := range ts.tiles {
		if t.contains(x, y) {
			return t.Reader()
		}
	}

	return nil, fmt.Errorf("%w: no tile covers (%v, %v)", errs.ErrOutOfBounds, x, y)
}
