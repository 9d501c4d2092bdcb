package tfrecord

// DefaultMaxRecordSize bounds the payload length accepted before allocation.
const DefaultMaxRecordSize = 1 << 30

type options struct {
	verifyChecksums bool
	maxRecordSize   uint64
}

// Option configures a Reader.
type Option func(*options)

// WithChecksumVerification enables validation of the masked CRC32C fields.
func WithChecksumVerification(enabled bool) Option {
	return func(o *options) {
		o.verifyChecksums = enabled
	}
}

// WithMaxRecordSize sets the largest payload length the reader accepts.
// Values <= 0 restore DefaultMaxRecordSize.
func WithMaxRecordSize(n int64) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultMaxRecordSize
		}
		o.maxRecordSize = uint64(n)
	}
}
