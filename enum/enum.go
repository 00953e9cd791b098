package enum

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Code is the set of types an enumeration can assign to its names:
// small integers for byte enumerations and one-character strings for
// character enumerations.
type Code interface {
	~uint8 | ~string
}

// Enumeration is an immutable mapping from normalized (uppercase) names to
// codes, with a reverse index from codes back to names.
//
// An Enumeration is fully built by one of the constructors and never
// modified afterwards, so it is safe for concurrent use without locking.
type Enumeration[C Code] struct {
	byName map[string]C
	byCode map[C]string
	names  []string
	codes  []C
}

// build binds codes[i] to names[i] in order. Names that collide after
// normalization keep the position of their first occurrence and the code of
// their last one, the same as repeated insertion into a map.
func build[C Code](names []string, codes []C) *Enumeration[C] {
	e := &Enumeration[C]{
		byName: make(map[string]C, len(names)),
	}

	order := make([]string, 0, len(names))
	for i, name := range names {
		key := normalize(name)
		if _, seen := e.byName[key]; !seen {
			order = append(order, key)
		}
		e.byName[key] = codes[i]
	}

	e.names = order
	e.codes = make([]C, len(order))
	e.byCode = make(map[C]string, len(order))
	for i, key := range order {
		code := e.byName[key]
		e.codes[i] = code
		e.byCode[code] = key
	}

	return e
}

// normalize returns the lookup key for name.
func normalize(name string) string {
	return strings.ToUpper(name)
}

// Len returns the number of distinct names.
func (e *Enumeration[C]) Len() int {
	return len(e.names)
}

// Code returns the code bound to name. The name is uppercased first.
func (e *Enumeration[C]) Code(name string) (C, bool) {
	code, ok := e.byName[normalize(name)]
	return code, ok
}

// Codes returns all codes in insertion order.
func (e *Enumeration[C]) Codes() []C {
	out := make([]C, len(e.codes))
	copy(out, e.codes)
	return out
}

// Names returns all normalized names in insertion order.
func (e *Enumeration[C]) Names() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

// IsCode reports whether code belongs to the enumeration.
func (e *Enumeration[C]) IsCode(code C) bool {
	_, ok := e.byCode[code]
	return ok
}

// IsName reports whether name, compared case-insensitively, belongs to the
// enumeration.
func (e *Enumeration[C]) IsName(name string) bool {
	_, ok := e.byName[normalize(name)]
	return ok
}

// NameOf returns the normalized name bound to code. The boolean is false
// when code is unknown.
func (e *Enumeration[C]) NameOf(code C) (string, bool) {
	name, ok := e.byCode[code]
	return name, ok
}

// DisplayName returns the human-readable form of the name bound to code,
// e.g. "Non Binary" for NON_BINARY. Unknown codes yield "".
func (e *Enumeration[C]) DisplayName(code C) string {
	return e.FormattedName(code, FormatDisplayName)
}

// FormattedName applies format to the name bound to code. Unknown codes
// yield "". A nil format returns the name as is.
func (e *Enumeration[C]) FormattedName(code C, format func(string) string) string {
	name, ok := e.byCode[code]
	if !ok {
		return ""
	}
	if format == nil {
		return name
	}
	return format(name)
}

// All returns an iterator over name/code pairs in insertion order.
func (e *Enumeration[C]) All() iter.Seq2[string, C] {
	return func(yield func(string, C) bool) {
		for i, name := range e.names {
			if !yield(name, e.codes[i]) {
				return
			}
		}
	}
}

// String renders the enumeration as NAME=code pairs.
func (e *Enumeration[C]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range e.names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(FormatCode(e.codes[i]))
	}
	b.WriteByte('}')
	return b.String()
}

// FormatCode renders a code as text: byte codes as decimal integers and
// character codes Go-quoted, so control characters stay readable.
func FormatCode[C Code](code C) string {
	switch v := any(code).(type) {
	case uint8:
		return strconv.Itoa(int(v))
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}
