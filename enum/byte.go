package enum

// ByteCapacity is the number of codes available to a byte enumeration.
const ByteCapacity = 256

// NewByte builds an enumeration that binds names to the integers 0..n-1 in
// input order. It fails with a capacity error when more than ByteCapacity
// names are given.
//
// WithCodeSet has no effect here.
func NewByte(names []string, opts ...Option) (*Enumeration[uint8], error) {
	cfg := newConfig(opts)

	if len(names) > ByteCapacity {
		return nil, NewCapacityError("NewByte", ByteCapacity, len(names))
	}

	codes := make([]uint8, len(names))
	for i := range codes {
		codes[i] = uint8(i)
	}

	e := build(names, codes)
	cfg.logger.Debug("built enumeration",
		"kind", "byte",
		"size", e.Len(),
		"capacity", ByteCapacity)

	return e, nil
}

// MustByte is like NewByte but panics on error. It is meant for
// package-level variables.
func MustByte(names []string, opts ...Option) *Enumeration[uint8] {
	e, err := NewByte(names, opts...)
	if err != nil {
		panic(err)
	}
	return e
}
