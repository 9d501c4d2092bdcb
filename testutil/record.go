package testutil

import (
	"bytes"
	"encoding/binary"

	"github.com/hupe1980/homr/internal/hash"
)

// Frame wraps payload in record framing with valid masked CRC32C fields.
func Frame(payload []byte) []byte {
	out := make([]byte, 0, 16+len(payload))
	out = binary.LittleEndian.AppendUint64(out, uint64(len(payload)))
	out = binary.LittleEndian.AppendUint32(out, hash.MaskedCRC32C(out[:8]))
	out = append(out, payload...)
	return binary.LittleEndian.AppendUint32(out, hash.MaskedCRC32C(payload))
}

// Stream concatenates the framed payloads.
func Stream(payloads ...[]byte) []byte {
	var buf bytes.Buffer
	for _, p := range payloads {
		buf.Write(Frame(p))
	}
	return buf.Bytes()
}
