package codec

import "github.com/arloliu/go-secs-item/logger"

// DefaultMaxListDepth is the default maximum nesting depth of list items.
const DefaultMaxListDepth = 64

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithMaxListDepth sets the maximum nesting depth of list items.
// A list at the top level has depth 1. Values below 1 are ignored.
func WithMaxListDepth(depth int) DecoderOption {
	return func(d *Decoder) {
		if depth > 0 {
			d.maxListDepth = depth
		}
	}
}

// WithLogger sets the logger used to report rejected input at debug level.
// Without it, or with a nil logger, the decoder uses logger.GetLogger().
func WithLogger(l logger.Logger) DecoderOption {
	return func(d *Decoder) {
		d.logger = l
	}
}

// WithMetrics sets the metrics updated by the decoder.
func WithMetrics(m *Metrics) DecoderOption {
	return func(d *Decoder) {
		d.metrics = m
	}
}
