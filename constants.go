package hpack

const (
	// DefaultMaxTableSize is the dynamic table octet budget both halves of
	// the codec start with, matching the HTTP/2 SETTINGS default.
	DefaultMaxTableSize = 4096

	// entryOverhead is the per-entry accounting overhead from RFC 7541
	// Section 4.1: size = len(name) + len(value) + 32.
	entryOverhead = 32

	// staticTableEnd is the highest index served by the static table; the
	// dynamic table continues the index space at staticTableEnd+1.
	staticTableEnd = 61
)

// Representation flag masks (RFC 7541 Section 6). The integer codec emits raw
// magnitudes; the encoder ORs the mask into the first octet afterwards, and
// the decoder's prefix mask discards the flag bits automatically.
const (
	flagIndexed      = 0x80 // 1xxxxxxx indexed header field
	flagIncremental  = 0x40 // 01xxxxxx literal with incremental indexing
	flagSizeUpdate   = 0x20 // 001xxxxx dynamic table size update
	flagNeverIndexed = 0x10 // 0001xxxx literal never indexed
	flagNoIndexing   = 0x00 // 0000xxxx literal without indexing
)

// Index prefix widths per representation, plus the string length prefix.
const (
	prefixIndexed     = 7
	prefixIncremental = 6
	prefixSizeUpdate  = 5
	prefixLiteral     = 4
	prefixStringLen   = 7
)

// huffmanFlag is the H bit of a string length octet. Set means the octets are
// Huffman coded, which this codec rejects.
const huffmanFlag = 0x80
