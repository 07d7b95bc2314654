package hpack

import "go.uber.org/zap"

// Encoder compresses ordered header lists into HPACK header blocks.
// Each connection direction MUST use a single encoder instance for its whole
// lifetime so that its dynamic table stays in lockstep with the peer decoder.
// Not safe for concurrent use.
type Encoder struct {
	table headerTable

	// pendingSizeUpdates records every table budget the host has requested
	// since the last emitted block; it is drained into the prologue of the
	// next block, oldest first.
	pendingSizeUpdates []uint64

	logger *zap.Logger
}

// NewEncoder creates an encoder with an empty dynamic table and no pending
// size updates. A maxTableSize of zero selects DefaultMaxTableSize.
func NewEncoder(maxTableSize uint64) *Encoder {
	if maxTableSize == 0 {
		maxTableSize = DefaultMaxTableSize
	}
	return &Encoder{
		table:  newHeaderTable(maxTableSize),
		logger: zap.NewNop(),
	}
}

// SetLogger installs a logger for table-shaping events, reported at Debug
// level. The default is a no-op logger.
func (e *Encoder) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	e.logger = logger
}

// MaxTableSize returns the current dynamic table octet budget.
func (e *Encoder) MaxTableSize() uint64 {
	return e.table.maxSize()
}

// SetMaxTableSize requests a new dynamic table budget. The local table
// shrinks immediately; the peer decoder learns of the change through a size
// update emitted in the prologue of the next block. Setting the current size
// again is a no-op.
func (e *Encoder) SetMaxTableSize(maxTableSize uint64) {
	if maxTableSize == e.table.maxSize() {
		return
	}
	e.pendingSizeUpdates = append(e.pendingSizeUpdates, maxTableSize)
	e.table.setMaxSize(maxTableSize)
	e.logger.Debug("dynamic table size update queued",
		zap.Uint64("max_size", maxTableSize),
		zap.Int("pending", len(e.pendingSizeUpdates)),
	)
}

// Encode encodes a header list with no sensitivity hints into one header
// block.
func (e *Encoder) Encode(headers []HeaderField) []byte {
	fields := make([]EncodableHeaderField, len(headers))
	for i, h := range headers {
		fields[i] = EncodableHeaderField{Name: h.Name, Value: h.Value}
	}
	return e.EncodeHeaders(fields)
}

// EncodeHeaders encodes a header list into one header block: first every
// pending size update, oldest first, then exactly one representation per
// header in input order. Encoding never fails; the host is expected to have
// validated header sizes against protocol limits.
func (e *Encoder) EncodeHeaders(headers []EncodableHeaderField) []byte {
	block := e.appendSizeUpdates(nil)
	for _, field := range headers {
		block = e.appendField(block, field)
	}
	return block
}

// appendSizeUpdates drains the pending size update queue into dst.
func (e *Encoder) appendSizeUpdates(dst []byte) []byte {
	for _, size := range e.pendingSizeUpdates {
		mark := len(dst)
		dst = appendInt(dst, size, prefixSizeUpdate)
		dst[mark] |= flagSizeUpdate
	}
	e.pendingSizeUpdates = e.pendingSizeUpdates[:0]
	return dst
}

// appendField appends one representation for the field, choosing among the
// literal and indexed forms and keeping the dynamic table in step with what
// the peer decoder will do.
func (e *Encoder) appendField(dst []byte, field EncodableHeaderField) []byte {
	if field.Sensitive {
		return e.appendSensitive(dst, field.Name, field.Value)
	}

	if index, ok := e.table.lookupExact(field.Name, field.Value); ok {
		// Indexed header field.
		mark := len(dst)
		dst = appendInt(dst, index, prefixIndexed)
		dst[mark] |= flagIndexed
		return dst
	}

	if index, ok := e.table.lookupName(field.Name); ok {
		// Literal with incremental indexing, indexed name. The insertion
		// mirrors the one the peer decoder performs on receipt.
		mark := len(dst)
		dst = appendInt(dst, index, prefixIncremental)
		dst[mark] |= flagIncremental
		dst = appendString(dst, field.Value)
		e.table.add(field.Name, field.Value)
		return dst
	}

	return e.appendNewNameLiteral(dst, field.Name, field.Value)
}

// appendSensitive emits the never-indexed literal form when the name is
// already in a table, and the plain new-name literal otherwise. Sensitive
// fields are never inserted into the dynamic table.
func (e *Encoder) appendSensitive(dst []byte, name, value string) []byte {
	index, ok := e.table.lookupName(name)
	if !ok {
		return e.appendNewNameLiteral(dst, name, value)
	}
	mark := len(dst)
	dst = appendInt(dst, index, prefixLiteral)
	dst[mark] |= flagNeverIndexed
	return appendString(dst, value)
}

// appendNewNameLiteral emits a literal without indexing carrying both name
// and value as string literals. Nothing is inserted into the dynamic table,
// so a repeated header encodes as a full literal each time.
func (e *Encoder) appendNewNameLiteral(dst []byte, name, value string) []byte {
	dst = append(dst, flagNoIndexing)
	dst = appendString(dst, name)
	return appendString(dst, value)
}
