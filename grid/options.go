package grid

import (
	"fmt"

	"github.com/arloliu/asciigrid/internal/pool"
)

// minBufferSize bounds WithBufferSize below; smaller buffers thrash on
// typical data lines.
const minBufferSize = 64

type readerConfig struct {
	bufSize    int
	eagerIndex bool
}

func defaultReaderConfig() readerConfig {
	return readerConfig{bufSize: pool.ScanBufferDefaultSize}
}

// Option is a functional option for configuring a Reader.
type Option func(*readerConfig) error

// WithBufferSize sets the buffered-read size used for header parsing
// and row scans. The default is 64KiB, served from a shared pool;
// custom sizes allocate per scan.
//
// Returns an error at construction for sizes below 64 bytes.
func WithBufferSize(n int) Option {
	return func(cfg *readerConfig) error {
		if n < minBufferSize {
			return fmt.Errorf("buffer size %d is below minimum %d", n, minBufferSize)
		}
		cfg.bufSize = n

		return nil
	}
}

// WithEagerIndex makes NewReader call BuildIndex before returning,
// trading one upfront pass over the file for O(1) row offset lookups on
// every subsequent random access.
func WithEagerIndex() Option {
	return func(cfg *readerConfig) error {
		cfg.eagerIndex = true

		return nil
	}
}
