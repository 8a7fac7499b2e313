package laverb

import (
	"fmt"
	"strconv"
	"strings"
)

// Args are the arguments of a conjugation template. Positional arguments
// are keyed "1", "2", ...; named ones by their name.
type Args map[string]string

// Positional returns positional argument i (1-based), trimmed.
func (a Args) Positional(i int) string {
	return strings.TrimSpace(a[strconv.Itoa(i)])
}

// templateNames are the template names ParseTemplate accepts.
var templateNames = map[string]bool{
	"la-conj": true,
	"la-verb": true,
}

// ParseTemplate parses a template such as
//
//	{{la-conj|2|habeō|habu|habit}}
//	{{la-conj|irreg|sum|prefix=necesse }}
//
// Positional values are trimmed. Named values keep trailing blanks so a
// prefix can carry its separating space.
func ParseTemplate(s string) (Args, error) {
	body := strings.TrimSpace(s)
	if !strings.HasPrefix(body, "{{") || !strings.HasSuffix(body, "}}") {
		return nil, fmt.Errorf("template %q: missing braces", s)
	}
	body = strings.TrimSuffix(strings.TrimPrefix(body, "{{"), "}}")
	parts := strings.Split(body, "|")
	name := strings.TrimSpace(parts[0])
	if !templateNames[name] {
		return nil, fmt.Errorf("template %q: unknown template %q", s, name)
	}
	args := make(Args, len(parts)-1)
	pos := 1
	for _, part := range parts[1:] {
		if key, value, ok := strings.Cut(part, "="); ok {
			args[strings.TrimSpace(key)] = strings.TrimLeft(value, " \t")
			continue
		}
		args[strconv.Itoa(pos)] = strings.TrimSpace(part)
		pos++
	}
	if args.Positional(1) == "" {
		return nil, fmt.Errorf("template %q: missing conjugation type", s)
	}
	return args, nil
}
