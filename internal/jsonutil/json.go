// internal/jsonutil/json.go
package jsonutil

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Decode reads one JSON value from r into v.
func Decode(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}
