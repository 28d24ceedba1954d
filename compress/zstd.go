package compress

// ZstdCompressor provides Zstandard compression for serialized buffers.
//
// Zstd favors compression ratio over raw speed, making it the right choice
// for tables that are written once and stored or transmitted: archived
// symbol tables, string-heavy indexes shipped over the network, cold caches.
//
// Two implementations back this type: a cgo binding (valyala/gozstd) when
// cgo is available, and a pure-Go implementation (klauspost/compress/zstd)
// otherwise. Both produce standard Zstd frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
