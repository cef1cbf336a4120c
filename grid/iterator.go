package grid

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/arloliu/asciigrid/errs"
)

// Cell is one grid sample produced by sequential iteration.
type Cell struct {
	Row   int
	Col   int
	Value float64
}

// All returns an iterator over every cell in strict row-major order:
// row 0 first, and within a row column 0 first.
//
// The sequence streams forward through the data section exactly once
// using buffered token reads. It does not consult or populate the row
// index cache, and it is not restartable: consuming it repositions the
// underlying stream, so iterating again requires a fresh Reader.
//
// Failures are surfaced per item: a non-numeric token yields
// errs.ErrInvalidToken, a truncated data section errs.ErrShortGrid, and
// stream failures a wrapped I/O error. The sequence ends at the first
// error; the stream position is no longer well-defined past that point.
//
// Example:
//
//	for cell, err := range reader.All() {
//	    if err != nil {
//	        return err
//	    }
//	    process(cell.Row, cell.Col, cell.Value)
//	}
func (r *Reader) All() iter.Seq2[Cell, error] {
	return func(yield func(Cell, error) bool) {
		if _, err := r.src.Seek(r.dataStart, io.SeekStart); err != nil {
			yield(Cell{}, fmt.Errorf("seek data section: %w", err))
			return
		}

		sc := bufio.NewScanner(r.src)
		sc.Buffer(make([]byte, 0, r.bufSize), r.bufSize)
		sc.Split(bufio.ScanWords)

		total := r.header.nrows * r.header.ncols
		for i := 0; i < total; i++ {
			cell := Cell{Row: i / r.header.ncols, Col: i % r.header.ncols}

			if !sc.Scan() {
				err := sc.Err()
				if err == nil {
					err = fmt.Errorf("%w: stream ended at cell %d of %d", errs.ErrShortGrid, i, total)
				} else {
					err = fmt.Errorf("read data section: %w", err)
				}
				yield(cell, err)

				return
			}

			tok := sc.Text()
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				yield(cell, fmt.Errorf("%w: %q at row %d col %d", errs.ErrInvalidToken, tok, cell.Row, cell.Col))
				return
			}

			cell.Value = v
			if !yield(cell, nil) {
				return
			}
		}
	}
}
