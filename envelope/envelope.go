// Package envelope wraps an introspection result in the {"data": ...} object
// that documentation generators such as GraphDoc expect as input.
package envelope

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Key is the only top-level key of an envelope.
const Key = "data"

// Indent is the indentation used for the wrapped result.
const Indent = "  "

var (
	ErrInvalidJSON = errors.New("envelope: invalid JSON")
	ErrNotObject   = errors.New("envelope: result is not a JSON object")
	ErrNotEnvelope = errors.New(`envelope: expected a single "data" object`)
)

var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   Indent,
	SortKeys: false,
}

// Wrap pretty-prints data and nests it under Key. The envelope itself is
// written compactly, so the output starts with {"data":{ and ends with }}.
func Wrap(data []byte) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, ErrNotObject
	}

	body := bytes.TrimRight(pretty.PrettyOptions(data, prettyOptions), "\n")
	doc, err := sjson.SetRawBytes([]byte("{}"), Key, body)
	if err != nil {
		return nil, errors.Wrap(err, "envelope: set data")
	}
	return doc, nil
}

// Unwrap returns the object stored under Key. It fails unless doc is an
// object whose only key is Key.
func Unwrap(doc []byte) ([]byte, error) {
	if !gjson.ValidBytes(doc) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(doc)
	if !root.IsObject() {
		return nil, ErrNotEnvelope
	}

	keys := 0
	root.ForEach(func(_, _ gjson.Result) bool {
		keys++
		return true
	})
	data := root.Get(Key)
	if keys != 1 || !data.IsObject() {
		return nil, ErrNotEnvelope
	}
	return []byte(data.Raw), nil
}
