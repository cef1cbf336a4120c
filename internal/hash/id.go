package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
// Tilesets use it to derive a stable 64-bit tile ID from a tile path.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
