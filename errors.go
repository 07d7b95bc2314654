package hpack

import "errors"

// Decoding errors. Any error returned from Decode leaves the dynamic table in
// an indeterminate state relative to the peer; callers must discard the codec
// pair rather than continue on the same connection.
var (
	// ErrEmptyInput indicates a decode step needed at least one octet and
	// found none.
	ErrEmptyInput = errors.New("empty input")

	// ErrTruncated indicates a representation declared more octets than
	// remain in the block.
	ErrTruncated = errors.New("truncated header block")

	// ErrInvalidIndex indicates an index of zero or one beyond the end of the
	// combined static and dynamic address space.
	ErrInvalidIndex = errors.New("invalid header table index")

	// ErrHuffmanUnsupported indicates a string literal with the H bit set.
	// Huffman coding is not implemented by this codec.
	ErrHuffmanUnsupported = errors.New("huffman coded string not supported")

	// ErrIntegerOverflow indicates a continuation chain that does not fit
	// in 64 bits. The decoder fails rather than wraps.
	ErrIntegerOverflow = errors.New("integer overflow")

	// ErrUnknownRepresentation indicates a first octet matching none of the
	// five representation patterns.
	ErrUnknownRepresentation = errors.New("unknown representation")

	// ErrStringTooLong indicates a string literal exceeding the configured
	// decode limit.
	ErrStringTooLong = errors.New("string literal exceeds limit")

	// ErrBlockTooLarge indicates a header block exceeding the configured
	// decode limit.
	ErrBlockTooLarge = errors.New("header block exceeds limit")
)
