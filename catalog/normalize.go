package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// NormalizeJSON replaces enumeration names in a JSON object with their codes.
//
// fields maps a top-level JSON field to the enumeration it holds. A string
// value that names a member of that enumeration (case-insensitively) is
// replaced by the member's code: a number for byte enumerations, a string
// for character enumerations. Other values pass through: numbers keep their
// exact digits and HTML characters are not escaped.
//
// NormalizeJSON never fails. Invalid JSON, a non-object document, or an
// encoding failure returns input unchanged, as does a document with nothing
// to replace. Otherwise the object is re-encoded with its keys sorted.
//
//	c.NormalizeJSON(`{"gender": "non_binary"}`, map[string]string{"gender": "gender"})
//	// {"gender":"N"}
func (c *Catalog) NormalizeJSON(input string, fields map[string]string) string {
	if len(fields) == 0 {
		return input
	}

	data, err := decodeObject(input)
	if err != nil || data == nil {
		return input
	}

	changed := false
	for field, enumName := range fields {
		value, ok := data[field].(string)
		if !ok {
			continue
		}
		if code, found := c.Lookup(enumName, value); found {
			data[field] = code
			changed = true
		}
	}

	if !changed {
		return input
	}

	normalized, err := encodeObject(data)
	if err != nil {
		return input
	}

	return normalized
}

// decodeObject decodes a single JSON object, keeping numbers as json.Number.
func decodeObject(input string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON object")
	}
	return data, nil
}

func encodeObject(data map[string]any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
