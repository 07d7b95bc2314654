package hpack

import "fmt"

// appendString appends a length-prefixed string literal to dst. The H bit is
// left clear: octets are always emitted raw, never Huffman coded.
func appendString(dst []byte, s string) []byte {
	dst = appendInt(dst, uint64(len(s)), prefixStringLen)
	return append(dst, s...)
}

// decodeString decodes a string literal from the front of data, returning the
// octets and total consumption. Huffman-flagged strings are rejected.
// maxLength of zero means unlimited.
func decodeString(data []byte, maxLength uint64) (string, int, error) {
	if len(data) == 0 {
		return "", 0, ErrEmptyInput
	}
	if data[0]&huffmanFlag != 0 {
		return "", 0, ErrHuffmanUnsupported
	}

	length, consumed, err := decodeInt(data, prefixStringLen)
	if err != nil {
		return "", 0, fmt.Errorf("string length: %w", err)
	}
	if maxLength != 0 && length > maxLength {
		return "", 0, fmt.Errorf("%w: %d octets", ErrStringTooLong, length)
	}
	if length > uint64(len(data)-consumed) {
		return "", 0, fmt.Errorf("%w: string of %d octets, %d remaining",
			ErrTruncated, length, len(data)-consumed)
	}

	end := consumed + int(length)
	return string(data[consumed:end]), end, nil
}
