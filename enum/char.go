package enum

// AlphaNumeric is the code-set used by NewAlphaNum.
const AlphaNumeric = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// defaultCodeSet holds the code points 0..255, one string per character.
var defaultCodeSet = func() []string {
	set := make([]string, 256)
	for i := range set {
		set[i] = string(rune(i))
	}
	return set
}()

// NewChar builds an enumeration that binds names to single-character codes.
// The i-th name receives the i-th character of the code-set, which is set
// with WithCodeSet and defaults to the code points 0..255.
//
// It fails with a capacity error naming the code-set length when there are
// more names than characters.
func NewChar(names []string, opts ...Option) (*Enumeration[string], error) {
	return newChar("NewChar", names, newConfig(opts))
}

// NewAlphaNum is NewChar with the AlphaNumeric code-set, so the first names
// receive "0", "1", "2" and so on. A WithCodeSet option is overridden.
func NewAlphaNum(names []string, opts ...Option) (*Enumeration[string], error) {
	cfg := newConfig(opts)
	cfg.codeSet = AlphaNumeric
	cfg.hasCodeSet = true
	return newChar("NewAlphaNum", names, cfg)
}

// MustChar is like NewChar but panics on error.
func MustChar(names []string, opts ...Option) *Enumeration[string] {
	e, err := NewChar(names, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// MustAlphaNum is like NewAlphaNum but panics on error.
func MustAlphaNum(names []string, opts ...Option) *Enumeration[string] {
	e, err := NewAlphaNum(names, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

func newChar(op string, names []string, cfg *config) (*Enumeration[string], error) {
	codeSet := defaultCodeSet
	if cfg.hasCodeSet {
		codeSet = splitCodeSet(cfg.codeSet)
	}

	if len(names) > len(codeSet) {
		return nil, NewCapacityError(op, len(codeSet), len(names))
	}

	codes := codeSet[:len(names)]
	if dup, ok := firstDuplicate(codes); ok {
		cfg.logger.Warn("code-set repeats a character, names will share a code",
			"op", op,
			"code", dup)
	}

	e := build(names, codes)
	cfg.logger.Debug("built enumeration",
		"kind", "char",
		"size", e.Len(),
		"capacity", len(codeSet))

	return e, nil
}

// splitCodeSet splits s into its characters. Invalid UTF-8 bytes become
// U+FFFD, as with range over a string.
func splitCodeSet(s string) []string {
	set := make([]string, 0, len(s))
	for _, r := range s {
		set = append(set, string(r))
	}
	return set
}

func firstDuplicate(codes []string) (string, bool) {
	seen := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		if _, ok := seen[c]; ok {
			return c, true
		}
		seen[c] = struct{}{}
	}
	return "", false
}
