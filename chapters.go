package llpsi

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// LastChapter is the last chapter of the course, Roma Aeterna included.
const LastChapter = 56

func checkChapter(n int) error {
	if n < 0 {
		return fmt.Errorf("chapter %d is negative", n)
	}
	if n > LastChapter {
		return fmt.Errorf("chapter %d is beyond the last chapter %d", n, LastChapter)
	}
	return nil
}

// ParseChapters parses a chapter list such as "1-3,5" into the sorted,
// deduplicated chapter numbers it names. Chapters run from 0 to
// LastChapter.
func ParseChapters(s string) ([]int, error) {
	seen := make(map[int]bool)
	var result []int
	add := func(n int) {
		if !seen[n] {
			seen[n] = true
			result = append(result, n)
		}
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if idx := strings.Index(part, "-"); idx > 0 {
			start, err := strconv.Atoi(strings.TrimSpace(part[:idx]))
			if err != nil {
				return nil, fmt.Errorf("chapter range %q: %w", part, err)
			}
			end, err := strconv.Atoi(strings.TrimSpace(part[idx+1:]))
			if err != nil {
				return nil, fmt.Errorf("chapter range %q: %w", part, err)
			}
			if err := checkChapter(start); err != nil {
				return nil, err
			}
			if err := checkChapter(end); err != nil {
				return nil, err
			}
			if end < start {
				return nil, fmt.Errorf("chapter range %q is reversed", part)
			}
			for i := start; i <= end; i++ {
				add(i)
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("chapter %q: %w", part, err)
		}
		if err := checkChapter(n); err != nil {
			return nil, err
		}
		add(n)
	}
	slices.Sort(result)
	return result, nil
}
