// Package hpack implements the HPACK header compression format for HTTP/2
// as specified by RFC 7541.
//
// Each connection direction owns one Encoder and one Decoder whose dynamic
// tables evolve in lockstep with the header blocks exchanged on the wire.
// Huffman string coding is not supported; Huffman-flagged strings are
// rejected during decoding.
package hpack
