package document

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies the shape of a Node.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// Node is a loosely typed view over one value of a decoded JSON document.
// Seed documents are allowed to be non-compliant on purpose, so every reader
// reports presence instead of assuming the nominal schema. An absent Node is
// distinct from a present null.
type Node struct {
	value   any
	present bool
}

// Absent returns the node representing a missing value.
func Absent() Node {
	return Node{}
}

// FromValue wraps an already decoded JSON value (map[string]any, []any,
// string, json.Number, float64, bool or nil).
func FromValue(v any) Node {
	return Node{value: v, present: true}
}

func (n Node) Kind() Kind {
	if !n.present {
		return KindAbsent
	}
	switch n.value.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case json.Number, float64:
		return KindNumber
	case string:
		return KindString
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	default:
		return KindNull
	}
}

func (n Node) IsAbsent() bool {
	return !n.present
}

// Has reports whether the node is an object carrying the given field,
// regardless of the field's value.
func (n Node) Has(name string) bool {
	_, ok := n.Field(name)
	return ok
}

// Field reads an optional field from an object node. The second return is
// false when the node is not an object or the field is missing; a field that
// is present but null still returns true.
func (n Node) Field(name string) (Node, bool) {
	obj, ok := n.value.(map[string]any)
	if !ok || !n.present {
		return Absent(), false
	}
	v, ok := obj[name]
	if !ok {
		return Absent(), false
	}
	return FromValue(v), true
}

// Get is Field without the presence flag; missing fields come back absent.
func (n Node) Get(name string) Node {
	child, _ := n.Field(name)
	return child
}

// Items returns the elements of an array node, nil for anything else.
func (n Node) Items() []Node {
	arr, ok := n.value.([]any)
	if !ok || !n.present {
		return nil
	}
	items := make([]Node, 0, len(arr))
	for _, v := range arr {
		items = append(items, FromValue(v))
	}
	return items
}

// AsString returns the node's string value. Mistyped values report false so
// predicates can exclude the record instead of failing the query.
func (n Node) AsString() (string, bool) {
	s, ok := n.value.(string)
	if !ok || !n.present {
		return "", false
	}
	return s, true
}

// StringOr returns the string value or def when the node is absent, null or
// mistyped. Used for sort keys with a defined fallback.
func (n Node) StringOr(def string) string {
	if s, ok := n.AsString(); ok {
		return s
	}
	return def
}

// AsBool returns the node's boolean value.
func (n Node) AsBool() (bool, bool) {
	b, ok := n.value.(bool)
	if !ok || !n.present {
		return false, false
	}
	return b, true
}

// AsDecimal parses the node as an arbitrary precision decimal. Amounts in the
// seed data are decimal-like strings, but raw JSON numbers are accepted too.
func (n Node) AsDecimal() (decimal.Decimal, bool) {
	if !n.present {
		return decimal.Decimal{}, false
	}
	switch v := n.value.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case float64:
		return decimal.NewFromFloat(v), true
	default:
		return decimal.Decimal{}, false
	}
}

// AsTime parses the node as an RFC3339 timestamp.
func (n Node) AsTime() (time.Time, bool) {
	s, ok := n.value.(string)
	if !ok || !n.present {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// StringsOf collects the string elements of an array field, skipping
// non-string elements.
func (n Node) StringsOf(name string) []string {
	var out []string
	for _, item := range n.Get(name).Items() {
		if s, ok := item.AsString(); ok {
			out = append(out, s)
		}
	}
	return out
}
