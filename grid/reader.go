package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/asciigrid/errs"
	"github.com/arloliu/asciigrid/internal/pool"
)

// Reader provides lazy random access to one ESRI ASCII raster.
//
// The Reader exclusively owns its underlying stream: it seeks freely
// and leaves the read position unspecified after every call. It is NOT
// thread-safe; serialize concurrent use externally.
//
// The row index cache grows monotonically for the Reader's lifetime.
// Entries are byte offsets of each row's first data token; once
// recorded they are never invalidated, since the underlying stream is
// treated as immutable while the Reader exists.
type Reader struct {
	header    Header
	src       io.ReadSeeker
	dataStart int64
	rowOff    []int64
	bufSize   int
}

// NewReader constructs a Reader from a seekable byte stream.
//
// The stream is rewound and the header parsed immediately; data rows
// are not touched until first access. A header error fails construction
// outright (errors.Is(err, errs.ErrHeader)).
//
// The Reader takes ownership of src until Close is called; callers must
// not read or seek it while the Reader is live.
func NewReader(src io.ReadSeeker, opts ...Option) (*Reader, error) {
	cfg := defaultReaderConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind stream: %w", err)
	}

	r := &Reader{
		src:     src,
		bufSize: cfg.bufSize,
	}

	br, release := r.scanReader()
	header, dataStart, err := parseHeaderSection(br)
	release()
	if err != nil {
		return nil, err
	}

	r.header = header
	r.dataStart = dataStart

	if cfg.eagerIndex {
		if err := r.BuildIndex(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Header returns the parsed raster header.
func (r *Reader) Header() Header { return r.header }

// Close closes the underlying stream when it is an io.Closer, releasing
// the Reader's resources. The Reader must not be used afterwards.
func (r *Reader) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// GetIndex returns the value of the cell at (row, col).
//
// Row 0 is the topmost row, column 0 the leftmost column. The call may
// extend the row index cache for every row it scans past; the stream
// position is unspecified afterwards.
//
// Errors: errs.ErrOutOfBounds for invalid indices, errs.ErrShortRow if
// the row holds fewer than col+1 tokens, errs.ErrInvalidToken for a
// non-numeric token, or a wrapped stream error.
func (r *Reader) GetIndex(row, col int) (float64, error) {
	if row < 0 || row >= r.header.nrows || col < 0 || col >= r.header.ncols {
		return 0, fmt.Errorf("%w: cell (%d, %d)", errs.ErrOutOfBounds, row, col)
	}

	off, err := r.offsetOf(row)
	if err != nil {
		return 0, err
	}

	if _, err := r.src.Seek(off, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seek row %d: %w", row, err)
	}

	br, release := r.scanReader()
	defer release()

	tok, err := rowToken(br, col)
	if err != nil {
		return 0, fmt.Errorf("row %d: %w", row, err)
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q at row %d col %d", errs.ErrInvalidToken, tok, row, col)
	}

	return v, nil
}

// Get returns the value of the cell containing the planar coordinate
// (x, y). Bounds failures reflect the coordinate, not the derived
// index. See GetIndex for the remaining failure modes.
func (r *Reader) Get(x, y float64) (float64, error) {
	row, col, err := r.header.IndexOf(x, y)
	if err != nil {
		return 0, err
	}

	return r.GetIndex(row, col)
}

// BuildIndex eagerly records the byte offset of every row in one
// forward pass over the data section.
//
// Lazy population makes a single far-row access cost a scan linear in
// its distance from the nearest known offset; building the full index
// trades one upfront pass for O(1) offset lookups on all later
// accesses. Calling it more than once is a no-op beyond the first.
func (r *Reader) BuildIndex() error {
	_, err := r.offsetOf(r.header.nrows - 1)

	return err
}

// IndexedRows returns how many row offsets are currently cached. After
// BuildIndex it equals NumRows.
func (r *Reader) IndexedRows() int { return len(r.rowOff) }

// offsetOf returns the byte offset of row's first data token, scanning
// forward from the highest cached row to extend the cache as needed.
//
// Offsets are appended only once a row start is positively located, so
// a failed scan never leaves partial or incorrect entries behind.
func (r *Reader) offsetOf(row int) (int64, error) {
	if row < len(r.rowOff) {
		return r.rowOff[row], nil
	}

	start := r.dataStart
	resumed := false
	if n := len(r.rowOff); n > 0 {
		start = r.rowOff[n-1]
		resumed = true
	}

	if _, err := r.src.Seek(start, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seek data section: %w", err)
	}

	br, release := r.scanReader()
	defer release()

	pos := start
	if resumed {
		// Positioned at the start of the last cached row; step over its
		// line before locating new rows.
		if err := skipLine(br, &pos); err != nil {
			return 0, err
		}
	}

	for len(r.rowOff) <= row {
		tokOff, err := skipBlank(br, &pos)
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: stream ended at row %d of %d", errs.ErrShortGrid, len(r.rowOff), r.header.nrows)
		}
		if err != nil {
			return 0, fmt.Errorf("scan row %d: %w", len(r.rowOff), err)
		}

		r.rowOff = append(r.rowOff, tokOff)

		if len(r.rowOff) <= row {
			if err := skipLine(br, &pos); err != nil {
				return 0, err
			}
		}
	}

	return r.rowOff[row], nil
}

// scanReader returns a buffered reader over the current stream position
// and a release function. Scans at the default buffer size share pooled
// readers; a custom size allocates its own.
func (r *Reader) scanReader() (*bufio.Reader, func()) {
	if r.bufSize == pool.ScanBufferDefaultSize {
		br := pool.GetScanReader(r.src)
		return br, func() { pool.PutScanReader(br) }
	}

	return bufio.NewReaderSize(r.src, r.bufSize), func() {}
}

// skipLine advances past the current row line, consuming up to and
// including the next newline. Reaching EOF is not an error here; the
// following skipBlank reports the short grid.
func skipLine(br *bufio.Reader, pos *int64) error {
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("scan data row: %w", err)
		}
		*pos++
		if b == '\n' {
			return nil
		}
	}
}

// skipBlank advances past whitespace, including empty lines, and
// returns the offset of the next non-whitespace byte. Returns io.EOF
// when the stream ends first.
func skipBlank(br *bufio.Reader, pos *int64) (int64, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			*pos++
		default:
			off := *pos
			*pos++

			return off, nil
		}
	}
}

// rowToken reads the col-th whitespace-separated token of the row
// beginning at the reader's position. The row ends at the first newline
// or EOF; running out of tokens yields errs.ErrShortRow.
func rowToken(br *bufio.Reader, col int) (string, error) {
	var sb strings.Builder
	skipped := 0
	inTok := false
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			b = '\n'
		} else if err != nil {
			return "", fmt.Errorf("read data row: %w", err)
		}

		switch b {
		case ' ', '\t', '\r':
			if inTok {
				if skipped == col {
					return sb.String(), nil
				}
				skipped++
				inTok = false
			}
		case '\n':
			if inTok && skipped == col {
				return sb.String(), nil
			}

			return "", fmt.Errorf("%w: want column %d, row has %d", errs.ErrShortRow, col, skippedTokens(skipped, inTok))
		default:
			inTok = true
			if skipped == col {
				sb.WriteByte(b)
			}
		}
	}
}

// skippedTokens counts complete tokens seen, including one still open.
func skippedTokens(skipped int, inTok bool) int {
	if inTok {
		return skipped + 1
	}

	return skipped
}

// parseHeaderSection reads header lines from br, which must be
// positioned at offset zero, and returns the parsed header plus the
// byte offset where the data section begins.
func parseHeaderSection(br *bufio.Reader) (Header, int64, error) {
	p := newHeaderParser()

	var pos int64
	dataStart := int64(-1)
	for dataStart < 0 {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Header{}, 0, fmt.Errorf("read header: %w", err)
		}
		atEOF := errors.Is(err, io.EOF)

		fields := strings.Fields(line)
		if len(fields) > 0 {
			ok, perr := p.consume(fields)
			if perr != nil {
				return Header{}, 0, perr
			}
			if !ok {
				// First unrecognized line: the data section starts here.
				dataStart = pos
				break
			}
		}

		pos += int64(len(line))
		if atEOF {
			dataStart = pos
		}
	}

	header, err := p.finish()
	if err != nil {
		return Header{}, 0, err
	}

	return header, dataStart, nil
}
