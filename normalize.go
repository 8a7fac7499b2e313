package llpsi

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMacron is U+0304, the mark left behind by NFD on ā, ē, ī, ō, ū, ȳ.
const combiningMacron = '\u0304'

var isMacron = runes.Predicate(func(r rune) bool { return r == combiningMacron })

// newMacronStripper decomposes, drops combining macrons and recomposes, so
// other diacritics such as the diaeresis in "aër" survive. A chain keeps
// internal buffers, so each call gets its own.
func newMacronStripper() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(isMacron), norm.NFC)
}

// StripMacrons removes every vowel-length macron from s, in upper and lower
// case. Stripping is idempotent.
func StripMacrons(s string) string {
	if isASCII(s) {
		return s
	}
	out, _, err := transform.String(newMacronStripper(), s)
	if err != nil {
		return s
	}
	return out
}

// HasMacrons reports whether s carries at least one macron.
func HasMacrons(s string) bool {
	return !isASCII(s) && StripMacrons(s) != norm.NFC.String(s)
}

// NormalizeKey returns the lookup key for a word or form: macrons stripped
// and lower-cased.
func NormalizeKey(s string) string {
	return strings.ToLower(StripMacrons(s))
}

// MacronCompare orders strings as a dictionary does: by their letters
// ignoring macrons, ties broken by the marked spelling so the order is total.
func MacronCompare(a, b string) int {
	if c := cmp.Compare(StripMacrons(a), StripMacrons(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

// MacronSort sorts ss in place by MacronCompare. The sort is stable.
func MacronSort(ss []string) {
	slices.SortStableFunc(ss, MacronCompare)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
