package hpack

import (
	"fmt"

	"go.uber.org/zap"
)

// Decoder decompresses HPACK header blocks into ordered header lists.
// Each connection direction MUST use a single decoder instance for its whole
// lifetime; the dynamic table state is driven by the wire stream itself.
// Not safe for concurrent use.
type Decoder struct {
	table  headerTable
	limits Limits
	logger *zap.Logger
}

// NewDecoder creates a decoder with an empty dynamic table. A maxTableSize of
// zero selects DefaultMaxTableSize. No decode limits are enforced unless
// SetLimits is called.
func NewDecoder(maxTableSize uint64) *Decoder {
	if maxTableSize == 0 {
		maxTableSize = DefaultMaxTableSize
	}
	return &Decoder{
		table:  newHeaderTable(maxTableSize),
		logger: zap.NewNop(),
	}
}

// SetLogger installs a logger for table-shaping events, reported at Debug
// level. The default is a no-op logger.
func (d *Decoder) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	d.logger = logger
}

// SetLimits installs abuse guards applied to subsequent Decode calls.
func (d *Decoder) SetLimits(limits Limits) {
	d.limits = limits
}

// MaxTableSize returns the current dynamic table octet budget.
func (d *Decoder) MaxTableSize() uint64 {
	return d.table.maxSize()
}

// SetMaxTableSize applies a protocol-level table size change, such as an
// HTTP/2 SETTINGS push. It evicts entries as needed and emits nothing; in-band
// size updates arriving in a header block are applied by Decode itself.
func (d *Decoder) SetMaxTableSize(maxTableSize uint64) {
	d.table.setMaxSize(maxTableSize)
}

// Decode consumes one complete header block and returns the decoded header
// list in block order. The dynamic table and its budget are mutated as a side
// effect. On error no header list is returned and the table is NOT rolled
// back: the peer tables have diverged and the codec pair must be discarded.
func (d *Decoder) Decode(block []byte) ([]HeaderField, error) {
	if d.limits.MaxBlockSize != 0 && uint64(len(block)) > d.limits.MaxBlockSize {
		return nil, fmt.Errorf("%w: %d octets", ErrBlockTooLarge, len(block))
	}

	headers := make([]HeaderField, 0, 8)
	index := 0

	for index != len(block) {
		octet := block[index]
		rest := block[index:]

		switch {
		case octet&0x80 == 0x80:
			// Indexed header field
			field, consumed, err := d.decodeIndexed(rest)
			if err != nil {
				return nil, fmt.Errorf("indexed field at offset %d: %w", index, err)
			}
			headers = append(headers, field)
			index += consumed

		case octet&0xc0 == 0x40:
			// Literal with incremental indexing
			field, consumed, err := d.decodeLiteral(rest, prefixIncremental)
			if err != nil {
				return nil, fmt.Errorf("literal field at offset %d: %w", index, err)
			}
			d.table.add(field.Name, field.Value)
			headers = append(headers, field)
			index += consumed

		case octet&0xe0 == 0x20:
			// Dynamic table size update
			newSize, consumed, err := decodeInt(rest, prefixSizeUpdate)
			if err != nil {
				return nil, fmt.Errorf("size update at offset %d: %w", index, err)
			}
			d.table.setMaxSize(newSize)
			d.logger.Debug("dynamic table size update applied",
				zap.Uint64("max_size", newSize),
				zap.Uint64("entries", d.table.dynamic.length()),
			)
			index += consumed

		case octet&0xf0 == 0x10, octet&0xf0 == 0x00:
			// Literal never indexed / without indexing; the two decode
			// identically and neither touches the dynamic table.
			field, consumed, err := d.decodeLiteral(rest, prefixLiteral)
			if err != nil {
				return nil, fmt.Errorf("literal field at offset %d: %w", index, err)
			}
			headers = append(headers, field)
			index += consumed

		default:
			// The five patterns above are exhaustive over the top nibble.
			return nil, fmt.Errorf("%w: first octet %#02x at offset %d",
				ErrUnknownRepresentation, octet, index)
		}
	}

	return headers, nil
}

// decodeIndexed decodes an indexed header field: the whole field is a table
// reference.
func (d *Decoder) decodeIndexed(data []byte) (HeaderField, int, error) {
	index, consumed, err := decodeInt(data, prefixIndexed)
	if err != nil {
		return HeaderField{}, 0, err
	}
	field, err := d.table.at(index)
	if err != nil {
		return HeaderField{}, 0, err
	}
	return field, consumed, nil
}

// decodeLiteral decodes a literal representation whose name is either a table
// reference (index > 0) or a string literal (index == 0), followed by a value
// string literal. The caller decides whether the result is inserted.
func (d *Decoder) decodeLiteral(data []byte, prefixBits uint) (HeaderField, int, error) {
	index, consumed, err := decodeInt(data, prefixBits)
	if err != nil {
		return HeaderField{}, 0, err
	}

	var name string
	if index == 0 {
		name, consumed, err = d.readString(data, consumed)
		if err != nil {
			return HeaderField{}, 0, fmt.Errorf("name: %w", err)
		}
	} else {
		field, err := d.table.at(index)
		if err != nil {
			return HeaderField{}, 0, err
		}
		name = field.Name
	}

	value, consumed, err := d.readString(data, consumed)
	if err != nil {
		return HeaderField{}, 0, fmt.Errorf("value: %w", err)
	}

	return HeaderField{Name: name, Value: value}, consumed, nil
}

// readString decodes a string literal starting at offset and returns the new
// offset past it.
func (d *Decoder) readString(data []byte, offset int) (string, int, error) {
	s, n, err := decodeString(data[offset:], d.limits.MaxStringLength)
	if err != nil {
		return "", 0, err
	}
	return s, offset + n, nil
}
