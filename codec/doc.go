// Package codec converts between SECS-II wire bytes and secs2 item trees.
//
// Decoding walks the header of every node, validates the length field against the
// input and the element width of the format, and builds the tree through the secs2
// constructors:
//
//	item, err := codec.DecodeItem(data)
//
// A Decoder can be configured with a list depth limit, a logger that records rejected
// input, and Metrics that count decoded items per format:
//
//	metrics := codec.NewMetrics()
//	dec := codec.NewDecoder(codec.WithMaxListDepth(16), codec.WithMetrics(metrics))
//	item, n, err := dec.Decode(buf)
//
// Encoding never re-encodes values. Each item already carries its own encoded bytes,
// and a tree is flattened by concatenating them in depth-first child order, either into
// one buffer (AppendItem) or as a scatter-gather list (Buffers, WriteItem).
package codec
