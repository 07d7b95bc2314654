package hpack

import (
	json "github.com/goccy/go-json"
)

// TableState is the JSON shape of a dynamic table snapshot, exposed for debug
// tooling. Entries are ordered most recent first, matching the combined index
// space from 62 upward.
type TableState struct {
	MaxSize uint64        `json:"max_size"`
	Size    uint64        `json:"size"`
	Entries []HeaderField `json:"entries"`
}

// TableSnapshot returns the decoder's dynamic table state as JSON.
func (d *Decoder) TableSnapshot() ([]byte, error) {
	return snapshotTable(&d.table)
}

// TableSnapshot returns the encoder's dynamic table state as JSON. After a
// block exchange the two snapshots of a synchronised codec pair are equal.
func (e *Encoder) TableSnapshot() ([]byte, error) {
	return snapshotTable(&e.table)
}

func snapshotTable(t *headerTable) ([]byte, error) {
	state := TableState{
		MaxSize: t.dynamic.maxSize,
		Size:    t.dynamic.size,
		Entries: make([]HeaderField, len(t.dynamic.entries)),
	}
	copy(state.Entries, t.dynamic.entries)
	return json.Marshal(state)
}
