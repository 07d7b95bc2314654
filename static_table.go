package hpack

import "sync"

// staticTable holds the 61 predefined entries from RFC 7541 Appendix A.
// It is built once and shared by every encoder and decoder in the process.
type staticTable struct {
	entries []HeaderField
	nameMap map[string][]uint64 // name -> ascending one-based indices
}

var (
	staticTableInstance *staticTable
	staticTableOnce     sync.Once
)

// getStaticTable returns the process-wide static table instance.
func getStaticTable() *staticTable {
	staticTableOnce.Do(func() {
		staticTableInstance = newStaticTable()
	})
	return staticTableInstance
}

func newStaticTable() *staticTable {
	// RFC 7541 Appendix A - Static Table Definition
	entries := []HeaderField{
		{Name: ":authority", Value: ""},
		{Name: ":method", Value: "GET"},
		{Name: ":method", Value: "POST"},
		{Name: ":path", Value: "/"},
		{Name: ":path", Value: "/index.html"},
		{Name: ":scheme", Value: "http"},
		{Name: ":scheme", Value: "https"},
		{Name: ":status", Value: "200"},
		{Name: ":status", Value: "204"},
		{Name: ":status", Value: "206"},
		{Name: ":status", Value: "304"},
		{Name: ":status", Value: "400"},
		{Name: ":status", Value: "404"},
		{Name: ":status", Value: "500"},
		{Name: "accept-charset", Value: ""},
		{Name: "accept-encoding", Value: "gzip, deflate"},
		{Name: "accept-language", Value: ""},
		{Name: "accept-ranges", Value: ""},
		{Name: "accept", Value: ""},
		{Name: "access-control-allow-origin", Value: ""},
		{Name: "age", Value: ""},
		{Name: "allow", Value: ""},
		{Name: "authorization", Value: ""},
		{Name: "cache-control", Value: ""},
		{Name: "content-disposition", Value: ""},
		{Name: "content-encoding", Value: ""},
		{Name: "content-language", Value: ""},
		{Name: "content-length", Value: ""},
		{Name: "content-location", Value: ""},
		{Name: "content-range", Value: ""},
		{Name: "content-type", Value: ""},
		{Name: "cookie", Value: ""},
		{Name: "date", Value: ""},
		{Name: "etag", Value: ""},
		{Name: "expect", Value: ""},
		{Name: "expires", Value: ""},
		{Name: "from", Value: ""},
		{Name: "host", Value: ""},
		{Name: "if-match", Value: ""},
		{Name: "if-modified-since", Value: ""},
		{Name: "if-none-match", Value: ""},
		{Name: "if-range", Value: ""},
		{Name: "if-unmodified-since", Value: ""},
		{Name: "last-modified", Value: ""},
		{Name: "link", Value: ""},
		{Name: "location", Value: ""},
		{Name: "max-forwards", Value: ""},
		{Name: "proxy-authenticate", Value: ""},
		{Name: "proxy-authorization", Value: ""},
		{Name: "range", Value: ""},
		{Name: "referer", Value: ""},
		{Name: "refresh", Value: ""},
		{Name: "retry-after", Value: ""},
		{Name: "server", Value: ""},
		{Name: "set-cookie", Value: ""},
		{Name: "strict-transport-security", Value: ""},
		{Name: "transfer-encoding", Value: ""},
		{Name: "user-agent", Value: ""},
		{Name: "vary", Value: ""},
		{Name: "via", Value: ""},
		{Name: "www-authenticate", Value: ""},
	}

	nameMap := make(map[string][]uint64, len(entries))
	for i, entry := range entries {
		nameMap[entry.Name] = append(nameMap[entry.Name], uint64(i)+1)
	}

	return &staticTable{
		entries: entries,
		nameMap: nameMap,
	}
}

// get returns the entry at the given one-based index, which must be in
// [1, staticTableEnd].
func (st *staticTable) get(index uint64) HeaderField {
	return st.entries[index-1]
}

// findExact returns the lowest one-based index whose entry matches both name
// and value.
func (st *staticTable) findExact(name, value string) (uint64, bool) {
	for _, index := range st.nameMap[name] {
		if st.entries[index-1].Value == value {
			return index, true
		}
	}
	return 0, false
}

// findName returns the lowest one-based index whose entry matches the name.
func (st *staticTable) findName(name string) (uint64, bool) {
	indices := st.nameMap[name]
	if len(indices) == 0 {
		return 0, false
	}
	return indices[0], true
}
