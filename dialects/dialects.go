// Package dialects detects the likely Arabic dialect of a text by
// matching its vocabulary against fixed keyword sets for Modern Standard
// Arabic and five regional dialect groups (Egyptian, Gulf, Levantine,
// Maghrebi, Iraqi).
//
// Detection is purely lexical: the score of a dialect is the fraction of
// the text's distinct Arabic words found in that dialect's keyword set.
// All tables are immutable and every function is safe for concurrent use.
package dialects

import (
	"fmt"
	"math"
	"regexp"
	"sort"
)

// ErrUnknownDialect is returned by Words for a key outside the supported
// dialect set.
var ErrUnknownDialect = fmt.Errorf("dialects: unknown dialect")

// Info describes one supported dialect.
type Info struct {
	Key       string // stable identifier ("egyptian", "gulf", ...)
	NameAr    string // Arabic display name
	NameEn    string // English display name
	WordCount int    // size of the keyword set
}

// Score is one ranked detection result.
type Score struct {
	Dialect string   // dialect key
	NameAr  string   // Arabic display name
	NameEn  string   // English display name
	Score   float64  // matched fraction in [0,1], rounded to 4 decimals
	Matched []string // the keywords found in the text, sorted
}

var arabicWordPattern = regexp.MustCompile(`[\x{0600}-\x{06FF}]+`)

// Detect scores s against every dialect and returns the topN best
// matches, highest score first (ties keep registry order: msa, egyptian,
// gulf, levantine, maghrebi, iraqi). A topN below 1 or past the number of
// dialects returns all of them.
func Detect(s string, topN int) []Score {
	words := make(map[string]struct{})
	for _, w := range arabicWordPattern.FindAllString(s, -1) {
		words[w] = struct{}{}
	}

	scores := make([]Score, 0, len(registry))
	for _, d := range registry {
		var matched []string
		for w := range words {
			if _, ok := d.words[w]; ok {
				matched = append(matched, w)
			}
		}
		sort.Strings(matched)

		score := 0.0
		if len(words) > 0 {
			score = float64(len(matched)) / float64(len(words))
		}

		scores = append(scores, Score{
			Dialect: d.key,
			NameAr:  d.nameAr,
			NameEn:  d.nameEn,
			Score:   math.Round(score*10000) / 10000,
			Matched: matched,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if topN < 1 || topN > len(scores) {
		return scores
	}
	return scores[:topN]
}

// Is reports whether s most likely belongs to the given dialect: the
// dialect must rank first with a nonzero score.
func Is(s string, dialect string) bool {
	top := Detect(s, 1)
	return len(top) == 1 && top[0].Dialect == dialect && top[0].Score > 0
}

// Words returns a sorted copy of the keyword set for the given dialect
// key, or ErrUnknownDialect.
func Words(dialect string) ([]string, error) {
	for _, d := range registry {
		if d.key != dialect {
			continue
		}
		words := make([]string, 0, len(d.words))
		for w := range d.words {
			words = append(words, w)
		}
		sort.Strings(words)
		return words, nil
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownDialect, dialect, availableKeys())
}

// List returns all supported dialects in registry order.
func List() []Info {
	infos := make([]Info, len(registry))
	for i, d := range registry {
		infos[i] = Info{
			Key:       d.key,
			NameAr:    d.nameAr,
			NameEn:    d.nameEn,
			WordCount: len(d.words),
		}
	}
	return infos
}

func availableKeys() string {
	keys := ""
	for i, d := range registry {
		if i > 0 {
			keys += ", "
		}
		keys += d.key
	}
	return keys
}
