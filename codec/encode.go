package codec

import (
	"io"
	"net"

	"github.com/arloliu/go-secs-item/secs2"
)

// EncodedSize returns the number of bytes of the flattened encoding of item.
func EncodedSize(item secs2.Item) int {
	if item == nil {
		return 0
	}

	size := len(item.RawBytes())
	if list, ok := item.(*secs2.ListItem); ok {
		for _, child := range list.Items() {
			size += EncodedSize(child)
		}
	}

	return size
}

// AppendItem appends the flattened encoding of item to dst and returns the extended buffer.
//
// The encoding is the item's own bytes followed, for lists, by the encodings of the
// children in order.
func AppendItem(dst []byte, item secs2.Item) []byte {
	if item == nil {
		return dst
	}

	if len(dst) == 0 && cap(dst) == 0 {
		dst = make([]byte, 0, EncodedSize(item))
	}

	return appendItem(dst, item)
}

func appendItem(dst []byte, item secs2.Item) []byte {
	dst = append(dst, item.RawBytes()...)
	if list, ok := item.(*secs2.ListItem); ok {
		for _, child := range list.Items() {
			dst = appendItem(dst, child)
		}
	}

	return dst
}

// Encode returns the flattened encoding of item in a new buffer.
func Encode(item secs2.Item) []byte {
	return AppendItem(nil, item)
}

// Buffers returns the encoded chunks of item in wire order without copying them.
//
// The chunks are shared with the items and must not be modified.
func Buffers(item secs2.Item) net.Buffers {
	if item == nil {
		return nil
	}

	return appendBuffers(make(net.Buffers, 0, countNodes(item)), item)
}

func appendBuffers(bufs net.Buffers, item secs2.Item) net.Buffers {
	bufs = append(bufs, item.RawBytes())
	if list, ok := item.(*secs2.ListItem); ok {
		for _, child := range list.Items() {
			bufs = appendBuffers(bufs, child)
		}
	}

	return bufs
}

func countNodes(item secs2.Item) int {
	n := 1
	if list, ok := item.(*secs2.ListItem); ok {
		for _, child := range list.Items() {
			n += countNodes(child)
		}
	}

	return n
}

// WriteItem writes the flattened encoding of item to w.
//
// When w is a net.Conn the chunks are sent with a single vectored write where the
// platform supports it.
func WriteItem(w io.Writer, item secs2.Item) (int64, error) {
	bufs := Buffers(item)
	return bufs.WriteTo(w)
}
