package dataset

import (
	"runtime"

	"github.com/hupe1980/homr/tfrecord"
)

const (
	// DefaultImageKey is the feature holding encoded images.
	DefaultImageKey = "image"
	// DefaultMarksKey is the feature holding mark ids.
	DefaultMarksKey = "marks"
)

type options struct {
	onDemand       bool
	imageKey       string
	marksKey       string
	concurrency    int
	compression    tfrecord.Compression
	hasCompression bool
	recordOpts     []tfrecord.Option
}

func defaultOptions() options {
	return options{
		imageKey:    DefaultImageKey,
		marksKey:    DefaultMarksKey,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// Option configures loading and the access strategy.
type Option func(*options)

// WithDecodeOnDemand selects the on-demand strategy instead of eager
// materialization.
func WithDecodeOnDemand(enabled bool) Option {
	return func(o *options) {
		o.onDemand = enabled
	}
}

// WithImageKey overrides the image feature key.
func WithImageKey(key string) Option {
	return func(o *options) {
		o.imageKey = key
	}
}

// WithMarksKey overrides the marks feature key.
func WithMarksKey(key string) Option {
	return func(o *options) {
		o.marksKey = key
	}
}

// WithConcurrency bounds the goroutines used for eager materialization.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithCompression forces the stream compression. By default Open infers it
// from the file extension and Load assumes an uncompressed stream.
func WithCompression(c tfrecord.Compression) Option {
	return func(o *options) {
		o.compression = c
		o.hasCompression = true
	}
}

// WithChecksumVerification enables record checksum validation.
func WithChecksumVerification(enabled bool) Option {
	return func(o *options) {
		o.recordOpts = append(o.recordOpts, tfrecord.WithChecksumVerification(enabled))
	}
}

// WithMaxRecordSize bounds the accepted record payload length.
func WithMaxRecordSize(n int64) Option {
	return func(o *options) {
		o.recordOpts = append(o.recordOpts, tfrecord.WithMaxRecordSize(n))
	}
}
