// Package compress provides compression and decompression codecs for
// serialized flatview buffers.
//
// Serialized string tables hold highly repetitive data (varint index runs,
// zero padding, natural-language strings), which general-purpose codecs
// shrink well. Compression is applied to the whole serialized buffer after
// Finalize and reversed before FromBytes:
//
//	codec, _ := compress.GetCodec(format.CompressionZstd)
//	packed, _ := codec.Compress(buf.Bytes())
//	...
//	raw, _ := codec.Decompress(packed)
//	table, _ := strtable.FromBytes(raw)
//
// Supported algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// All codecs are stateless values safe for concurrent use; pooled encoder and
// decoder state is managed internally.
package compress
