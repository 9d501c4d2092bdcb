// Package hash provides the checksum helpers used by record framing.
//
// # CRC32-Castagnoli (CRC32C)
//
// Framed records carry two CRC32C values: one over the 8-byte length field and
// one over the payload. Both are stored masked (see Mask) as little-endian
// uint32 values.
//
// For one-shot checksums:
//
//	checksum := hash.MaskedCRC32C(data)
//
// For streaming checksums:
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	checksum := hash.Mask(h.Sum32())
package hash
