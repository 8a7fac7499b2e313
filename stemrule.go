package llpsi

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// EndingRule replaces the nominative ending When by ChangeTo.
// An empty When matches every nominative.
type EndingRule struct {
	When     string
	ChangeTo string
}

// StemRule applies to every genitive construction ending in Construction.
// Endings are tried in order.
type StemRule struct {
	Construction string
	Endings      []EndingRule
}

// ApplyStemRule derives a stem from a nominative and a genitive
// construction such as "-ōris". Rules and their endings are scanned in
// order and the first ending the nominative carries inside a rule whose
// construction matches wins. A rule whose construction matches but whose
// endings don't is skipped. No match at all is a *StemError.
func ApplyStemRule(nominative, construction string, rules []StemRule) (string, error) {
	for _, rule := range rules {
		if !strings.HasSuffix(construction, rule.Construction) {
			continue
		}
		for _, ending := range rule.Endings {
			if !strings.HasSuffix(nominative, ending.When) {
				continue
			}
			if ending.When == "" {
				log.Warn().
					Str("nominative", nominative).
					Str("construction", construction).
					Msg("generic stem rule")
			}
			return strings.TrimSuffix(nominative, ending.When) + ending.ChangeTo, nil
		}
	}
	return "", &StemError{Nominative: nominative, Construction: construction}
}

// changeSuffix replaces the suffix from of s by to. ok is false when s
// does not end in from.
func changeSuffix(s, from, to string) (string, bool) {
	if !strings.HasSuffix(s, from) {
		return s, false
	}
	return strings.TrimSuffix(s, from) + to, true
}

// shadowedEnding returns the first pair (i, j), i < j, where ending i of a
// rule also matches everything ending j matches, so j can never fire.
// Duplicate constructions are reported with the endings set to -1.
func shadowedEnding(rules []StemRule) (rule, i, j int, found bool) {
	seen := make(map[string]bool, len(rules))
	for r, sr := range rules {
		if seen[sr.Construction] {
			return r, -1, -1, true
		}
		seen[sr.Construction] = true
		for a := range sr.Endings {
			for b := a + 1; b < len(sr.Endings); b++ {
				if strings.HasSuffix(sr.Endings[b].When, sr.Endings[a].When) {
					return r, a, b, true
				}
			}
		}
	}
	return 0, 0, 0, false
}
