package hpack

// dynamicTable implements the HPACK dynamic table (RFC 7541 Section 2.3.2).
// New entries are inserted at the front; when the octet budget is exceeded,
// entries are evicted from the back, oldest first. The invariant between
// operations is size <= maxSize.
type dynamicTable struct {
	entries []HeaderField
	size    uint64 // current size in octets, including per-entry overhead
	maxSize uint64
}

func newDynamicTable(maxSize uint64) dynamicTable {
	return dynamicTable{
		entries: make([]HeaderField, 0, 16),
		maxSize: maxSize,
	}
}

// add inserts a field at the front, evicting from the back as needed. A field
// larger than the whole budget empties the table and is itself discarded.
func (dt *dynamicTable) add(field HeaderField) {
	fieldSize := field.Size()
	if fieldSize > dt.maxSize {
		dt.clear()
		return
	}

	for dt.size+fieldSize > dt.maxSize && len(dt.entries) > 0 {
		dt.evictOldest()
	}

	dt.entries = append([]HeaderField{field}, dt.entries...)
	dt.size += fieldSize
}

// get returns the entry at the given zero-based offset; offset 0 is the most
// recent insertion.
func (dt *dynamicTable) get(offset uint64) (HeaderField, bool) {
	if offset >= uint64(len(dt.entries)) {
		return HeaderField{}, false
	}
	return dt.entries[offset], true
}

// findExact returns the zero-based offset of the most recent entry matching
// both name and value.
func (dt *dynamicTable) findExact(name, value string) (uint64, bool) {
	for i, field := range dt.entries {
		if field.Name == name && field.Value == value {
			return uint64(i), true
		}
	}
	return 0, false
}

// findName returns the zero-based offset of the most recent entry matching
// the name.
func (dt *dynamicTable) findName(name string) (uint64, bool) {
	for i, field := range dt.entries {
		if field.Name == name {
			return uint64(i), true
		}
	}
	return 0, false
}

// setMaxSize updates the octet budget and evicts from the oldest end until
// the invariant holds again. A budget of zero empties the table.
func (dt *dynamicTable) setMaxSize(maxSize uint64) {
	dt.maxSize = maxSize
	for dt.size > dt.maxSize && len(dt.entries) > 0 {
		dt.evictOldest()
	}
}

// length returns the number of live entries.
func (dt *dynamicTable) length() uint64 {
	return uint64(len(dt.entries))
}

func (dt *dynamicTable) evictOldest() {
	last := len(dt.entries) - 1
	dt.size -= dt.entries[last].Size()
	dt.entries = dt.entries[:last]
}

func (dt *dynamicTable) clear() {
	dt.entries = dt.entries[:0]
	dt.size = 0
}
