package enum

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatDisplayName turns a normalized name into display text: the name is
// split on underscores, each segment is lowercased and its first character
// uppercased, and the segments are joined with single spaces.
//
//	FormatDisplayName("NON_BINARY") // "Non Binary"
func FormatDisplayName(name string) string {
	// Casers are stateful and must not be shared between goroutines.
	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)

	segments := strings.Split(name, "_")
	for i, seg := range segments {
		seg = lower.String(seg)
		if seg == "" {
			segments[i] = seg
			continue
		}
		_, size := utf8.DecodeRuneInString(seg)
		segments[i] = upper.String(seg[:size]) + seg[size:]
	}
	return strings.Join(segments, " ")
}
