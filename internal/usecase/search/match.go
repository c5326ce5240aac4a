package search

import "strings"

// containsEither reports whether a contains b or b contains a.
// Empty operands never match.
func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// containsWordsEither is containsEither restricted to whole-word boundaries,
// so "dog walking" matches "dog" but "education" does not match "cat".
func containsWordsEither(a, b string) bool {
	a = strings.Join(strings.Fields(a), " ")
	b = strings.Join(strings.Fields(b), " ")
	if a == "" || b == "" {
		return false
	}
	return containsEither(" "+a+" ", " "+b+" ")
}
