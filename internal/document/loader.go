package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a seed document from disk and decodes it into a Node tree.
// Numbers are kept as json.Number so decimal amounts survive untouched.
// A document that cannot be read or parsed is a configuration error and is
// fatal to the caller; the query engine itself never re-parses raw bytes.
func Load(path string) (Node, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Absent(), fmt.Errorf("unable to read seed document %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes raw JSON into a Node tree.
func Parse(raw []byte) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Absent(), fmt.Errorf("unable to parse seed document: %w", err)
	}
	return FromValue(v), nil
}
