package hpack

import "fmt"

// headerTable virtualises the fixed static table and the mutable dynamic
// table into a single one-based index space: indices 1..61 address the static
// table, index 62 the most recent dynamic insertion, and so on. Index 0 is
// reserved by the literal representations for "new name" and never resolves.
//
// Eviction shifts the combined indices of surviving dynamic entries, so
// indices must not be cached across mutations.
type headerTable struct {
	dynamic dynamicTable
}

func newHeaderTable(maxSize uint64) headerTable {
	return headerTable{dynamic: newDynamicTable(maxSize)}
}

// at resolves a combined index to its header field.
func (t *headerTable) at(index uint64) (HeaderField, error) {
	if index == 0 {
		return HeaderField{}, fmt.Errorf("%w: 0", ErrInvalidIndex)
	}
	if index <= staticTableEnd {
		return getStaticTable().get(index), nil
	}
	field, ok := t.dynamic.get(index - staticTableEnd - 1)
	if !ok {
		return HeaderField{}, fmt.Errorf("%w: %d beyond table of %d entries",
			ErrInvalidIndex, index, staticTableEnd+t.dynamic.length())
	}
	return field, nil
}

// lookupExact returns the lowest combined index whose entry matches both name
// and value. Static entries win over dynamic ones.
func (t *headerTable) lookupExact(name, value string) (uint64, bool) {
	if index, ok := getStaticTable().findExact(name, value); ok {
		return index, true
	}
	if offset, ok := t.dynamic.findExact(name, value); ok {
		return staticTableEnd + 1 + offset, true
	}
	return 0, false
}

// lookupName returns the lowest combined index whose entry matches the name.
func (t *headerTable) lookupName(name string) (uint64, bool) {
	if index, ok := getStaticTable().findName(name); ok {
		return index, true
	}
	if offset, ok := t.dynamic.findName(name); ok {
		return staticTableEnd + 1 + offset, true
	}
	return 0, false
}

func (t *headerTable) add(name, value string) {
	t.dynamic.add(HeaderField{Name: name, Value: value})
}

func (t *headerTable) setMaxSize(maxSize uint64) {
	t.dynamic.setMaxSize(maxSize)
}

func (t *headerTable) maxSize() uint64 {
	return t.dynamic.maxSize
}
