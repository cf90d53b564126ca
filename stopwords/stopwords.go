// Package stopwords filters Arabic function words. A built-in default
// list backs the package-level functions; it is immutable, so those
// functions are safe for concurrent use. Callers that need their own
// vocabulary clone or build a Set, which they alone own and synchronize.
package stopwords

import (
	"sort"
	"strings"
)

// Is reports whether word is in the default stopword list.
func Is(word string) bool {
	_, ok := defaultSet[word]
	return ok
}

// Count returns the number of whitespace-separated tokens of s that are
// default stopwords.
func Count(s string) int {
	n := 0
	for _, w := range strings.Fields(s) {
		if Is(w) {
			n++
		}
	}
	return n
}

// Ratio returns the fraction of tokens of s that are default stopwords,
// or 0 for a blank text.
func Ratio(s string) float64 {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return 0
	}
	n := 0
	for _, w := range tokens {
		if Is(w) {
			n++
		}
	}
	return float64(n) / float64(len(tokens))
}

// Remove drops default-stopword tokens from s and rejoins the rest with
// single spaces.
func Remove(s string) string {
	return strings.Join(Filter(strings.Fields(s)), " ")
}

// Filter returns the tokens that are not default stopwords, preserving
// order.
func Filter(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, w := range tokens {
		if !Is(w) {
			kept = append(kept, w)
		}
	}
	return kept
}

// Default returns a sorted copy of the default stopword list.
func Default() []string {
	words := make([]string, 0, len(defaultSet))
	for w := range defaultSet {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Set is a caller-owned stopword set. The zero value is empty and ready
// to use. A Set is not safe for concurrent mutation; share it read-only
// or guard it yourself.
type Set map[string]struct{}

// NewSet builds a Set from the given words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	s.Add(words...)
	return s
}

// DefaultSet returns a fresh copy of the default list, detached from the
// package-level set.
func DefaultSet() Set {
	s := make(Set, len(defaultSet))
	for w := range defaultSet {
		s[w] = struct{}{}
	}
	return s
}

// Add inserts words into the set.
func (s Set) Add(words ...string) {
	for _, w := range words {
		s[w] = struct{}{}
	}
}

// Delete removes words from the set; absent words are ignored.
func (s Set) Delete(words ...string) {
	for _, w := range words {
		delete(s, w)
	}
}

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Filter returns the tokens not in the set, preserving order.
func (s Set) Filter(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, w := range tokens {
		if !s.Contains(w) {
			kept = append(kept, w)
		}
	}
	return kept
}

// Remove drops set-member tokens from text and rejoins the rest with
// single spaces.
func (s Set) Remove(text string) string {
	return strings.Join(s.Filter(strings.Fields(text)), " ")
}

// Count returns the number of tokens of text that are in the set.
func (s Set) Count(text string) int {
	n := 0
	for _, w := range strings.Fields(text) {
		if s.Contains(w) {
			n++
		}
	}
	return n
}

// Ratio returns the fraction of tokens of text that are in the set, or 0
// for a blank text.
func (s Set) Ratio(text string) float64 {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return 0
	}
	return float64(s.Count(text)) / float64(len(tokens))
}
