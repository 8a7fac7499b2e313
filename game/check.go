package game

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	llpsi "github.com/itmo/llpsi-net"
)

// matchTokens compares a free-text response with the expected forms.
// Word order and letter case do not matter. A response written without
// any macron is compared against the expected forms with macrons
// stripped; as soon as it contains one macron every token must be
// spelled exactly.
func matchTokens(want []string, response string) bool {
	response = norm.NFC.String(response)
	got := strings.Fields(strings.ToLower(response))
	if len(got) != len(want) {
		return false
	}
	exact := llpsi.HasMacrons(response)

	counts := make(map[string]int, len(got))
	for _, tok := range got {
		counts[tok]++
	}
	for _, w := range want {
		w = strings.ToLower(norm.NFC.String(w))
		if !exact {
			w = llpsi.StripMacrons(w)
		}
		if counts[w] == 0 {
			return false
		}
		counts[w]--
	}
	return true
}

// matchLiteral compares a single-word response with the expected form
// after trimming and case folding.
func matchLiteral(want, response string) bool {
	response = norm.NFC.String(strings.TrimSpace(response))
	return strings.EqualFold(response, norm.NFC.String(want))
}
