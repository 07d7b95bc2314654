package hpack

import (
	"net/http"
	"sort"
	"strings"
)

// FieldsFromHTTPHeader flattens an http.Header into an ordered header list
// suitable for Encode. Names are lower-cased as HTTP/2 requires and sorted to
// make the emitted block deterministic; the value order within a name is
// preserved.
func FieldsFromHTTPHeader(h http.Header) []HeaderField {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]HeaderField, 0, len(h))
	for _, name := range names {
		lower := strings.ToLower(name)
		for _, value := range h[name] {
			fields = append(fields, HeaderField{Name: lower, Value: value})
		}
	}
	return fields
}

// HTTPHeaderFromFields collects a decoded header list into an http.Header.
// The block order within each name is preserved; pseudo-header fields keep
// their colon-prefixed keys.
func HTTPHeaderFromFields(fields []HeaderField) http.Header {
	h := make(http.Header, len(fields))
	for _, field := range fields {
		h[field.Name] = append(h[field.Name], field.Value)
	}
	return h
}
