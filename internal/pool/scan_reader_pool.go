package pool

import (
	"bufio"
	"io"
	"sync"
)

// ScanBufferDefaultSize is the buffer size of pooled scan readers.
// Row scans are short-lived and sequential, so one moderate buffer size
// serves both header parsing and row-offset scans well.
const ScanBufferDefaultSize = 64 * 1024 // 64KiB

// scanReaderPool pools bufio.Reader instances used for row scans.
// Every random access seeks and re-buffers, so reusing the underlying
// buffer eliminates a 64KiB allocation per call.
var scanReaderPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, ScanBufferDefaultSize)
	},
}

// GetScanReader returns a pooled bufio.Reader reset to read from src.
//
// The caller must return it with PutScanReader when the scan finishes.
func GetScanReader(src io.Reader) *bufio.Reader {
	br, _ := scanReaderPool.Get().(*bufio.Reader)
	br.Reset(src)

	return br
}

// PutScanReader returns a scan reader to the pool.
// The reader is detached from its source before being pooled so the
// pool never pins a caller's stream.
func PutScanReader(br *bufio.Reader) {
	if br == nil {
		return
	}
	br.Reset(nil)
	scanReaderPool.Put(br)
}
