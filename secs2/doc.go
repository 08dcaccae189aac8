// Package secs2 implements SECS-II data items: the self-describing, nestable values
// carried by SEMI E5 messages, together with their binary encoding.
//
// An item is either a list of items or a typed array: binary, boolean, signed and
// unsigned integers of 1, 2, 4 or 8 bytes, 4 and 8 byte floats, or ASCII / JIS-8 text.
// Each item encodes itself once, when it is created: a format byte holding the format
// code and the number of length bytes, a big-endian length field of 1 to 3 bytes,
// and for value items the payload in network byte order. A list encodes only its
// header; the encodings of its children follow it on the wire, and joining them is
// left to the transport (see package codec).
//
// Items are immutable. Items without elements are shared per format and can be
// obtained with Empty, or by calling any constructor without elements.
//
// Usage Example:
//
//	item := secs2.L(
//	    secs2.U4(1001),
//	    secs2.A("LOT-42"),
//	    secs2.F8(0.25, 0.5),
//	)
//
//	children, _ := item.ToList()
//	lotID, _ := secs2.ToString(children[1])    // "LOT-42"
//	first, _ := secs2.GetValue[uint32](children[0]) // 1001
//	ceid, _ := secs2.ToUint32Ptr(secs2.U4())   // nil, the item is empty
//
// Values are read with GetValue, GetValueOrDefault or the To* conversion functions,
// which check the requested Go type against the stored format.
package secs2
