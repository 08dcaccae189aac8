// Package sml converts SECS-II items to and from SML (SECS Message Language), the
// human-readable text form of SECS-II data used in equipment logs and host tooling.
//
// Format renders an item tree with one item per line and nested lists indented:
//
//	<L[2]
//	  <A[5] "PPID1">
//	  <U4[2] 100 200>
//	>
//
// Parse reads a single item back. It accepts // and /* */ comments, optional sizes
// ([n], [n..m]), integers in any Go base prefix and T/F booleans.
//
// Text items have two modes:
//
// Non-strict mode (default) writes the text between quotes as is. It assumes the
// text contains neither the quote character nor control characters.
//
// Strict mode escapes the quote character and backslash, and writes control
// characters as 0xNN tokens between quoted runs:
//
//	<A[7] "line" 0x0D 0x0A "\"">
//
// Text written in strict mode must be parsed with ParseStrict.
package sml
