package hpack

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Limits bounds the decoder's exposure to abusive header blocks. A zero value
// means unlimited for that dimension. The dynamic table octet budget is not a
// limit in this sense; it is negotiated protocol state.
type Limits struct {
	// MaxStringLength caps the declared length of a single name or value
	// string literal, in octets.
	MaxStringLength uint64 `json:"max_string_length" yaml:"max_string_length"`

	// MaxBlockSize caps the size of a whole header block, in octets.
	MaxBlockSize uint64 `json:"max_block_size" yaml:"max_block_size"`
}

// DefaultLimits returns the guards recommended for decoders facing untrusted
// peers.
func DefaultLimits() Limits {
	return Limits{
		MaxStringLength: 64 << 10,
		MaxBlockSize:    1 << 20,
	}
}

// ParseLimits reads a Limits document in YAML form (JSON is a YAML subset).
// Absent keys stay unlimited.
func ParseLimits(data []byte) (Limits, error) {
	var limits Limits
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return Limits{}, fmt.Errorf("parse limits: %w", err)
	}
	return limits, nil
}
