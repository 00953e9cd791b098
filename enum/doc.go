// Package enum builds compact, immutable enumerations with reverse lookup and
// display formatting.
//
// An enumeration binds an ordered list of names to codes. Names are
// normalized to uppercase before they are stored, so lookups by name are
// case-insensitive.
//
// # Constructors
//
// Three constructors differ only in the codes they hand out:
//
//	status, err := enum.NewByte([]string{"active", "inactive"})
//	// ACTIVE=0, INACTIVE=1
//
//	color, err := enum.NewChar([]string{"red", "green", "blue"}, enum.WithCodeSet("RGB"))
//	// RED="R", GREEN="G", BLUE="B"
//
//	rank, err := enum.NewAlphaNum([]string{"first", "second", "third"})
//	// FIRST="0", SECOND="1", THIRD="2"
//
// Byte enumerations hold up to 256 names. Character enumerations hold as many
// names as the code-set has characters: 256 by default, 62 for NewAlphaNum.
//
// # Queries
//
//	code, ok := color.Code("green")     // "G", true
//	name, ok := color.NameOf("G")       // "GREEN", true
//	color.IsName("Green")               // true
//	color.IsCode("X")                   // false
//	gender.DisplayName(2)               // "Non Binary" for NON_BINARY
//
// # Error Handling
//
// Only construction can fail. A name list larger than the code space returns
// an *Error of KindCapacity that wraps ErrCapacityExceeded:
//
//	if errors.Is(err, enum.ErrCapacityExceeded) {
//	    // reduce the names or widen the code-set
//	}
//
// Queries never fail. An unknown code yields false, an absent name, or an
// empty display string.
//
// # Thread Safety
//
// An Enumeration is never modified after construction and is safe for
// concurrent use.
package enum
