package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// NA is the marker written to ledger cells for values the pipeline could
// not determine. It is a rendering of Unknown, not a value of its own.
const NA = "N/A"

// Kind discriminates the variants of Value.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNumber
	KindText
)

// Value is the tagged union carried through the pipeline: a parameter is
// either a number, a short text, or explicitly unknown. Unknown is a valid
// state, never collapsed to a sentinel number.
type Value struct {
	kind Kind
	num  float64
	text string
}

func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

func Unknown() Value {
	return Value{}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsUnknown() bool { return v.kind == KindUnknown }

// Number returns the numeric payload. The second return is false for
// non-numeric variants.
func (v Value) Number() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the text payload. The second return is false for
// non-text variants.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// Cell renders the value for a spreadsheet cell. Unknown becomes NA.
func (v Value) Cell() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		return v.text
	default:
		return NA
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.text
	default:
		return NA
	}
}

// Coerce converts an arbitrary decoded JSON value into a Value of the
// expected kind. Nulls, empty strings and unknown-ish markers map to
// Unknown; numeric strings are parsed when a number is expected.
func Coerce(raw any, kind FieldKind) Value {
	switch t := raw.(type) {
	case nil:
		return Unknown()
	case float64:
		if kind == FieldText {
			return Text(strconv.FormatFloat(t, 'g', -1, 64))
		}
		return Number(t)
	case bool:
		// booleans have no place in the catalog; treat as unparsable
		return Unknown()
	case string:
		s := strings.TrimSpace(t)
		if isUnknownMarker(s) {
			return Unknown()
		}
		if kind == FieldNumeric {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return Number(f)
			}
			return Unknown()
		}
		return Text(s)
	case []any:
		// nested arrays (deformation ranges, reaction forces) keep their
		// bracketed rendering as text
		return Text(renderArray(t))
	default:
		return Unknown()
	}
}

func isUnknownMarker(s string) bool {
	switch strings.ToLower(s) {
	case "", "null", "none", "unknown", "n/a", "na":
		return true
	}
	return false
}

func renderArray(items []any) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		switch t := it.(type) {
		case float64:
			b.WriteString(strconv.FormatFloat(t, 'g', -1, 64))
		case string:
			b.WriteString(t)
		case []any:
			b.WriteString(renderArray(t))
		default:
			b.WriteString(fmt.Sprintf("%v", t))
		}
	}
	b.WriteByte(']')
	return b.String()
}
