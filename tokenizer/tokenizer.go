// Package tokenizer splits Arabic text into words, sentences, and
// characters, strips common affixes, and generates word- and
// character-level n-grams.
//
// Word tokenization is script-based: a word is a maximal run of runes
// from the Arabic Unicode blocks, so punctuation and Latin material never
// appear in the output. Affix stripping is a simplified fixed-list
// segmentation, not a morphological analysis.
//
// All functions are pure and safe for concurrent use.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Arabic, Arabic Supplement, and Arabic Extended-A blocks.
	wordPattern = regexp.MustCompile(`[\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}]+`)

	// Western and Arabic sentence-final punctuation, plus newlines.
	sentencePattern = regexp.MustCompile("[.!?؟،؛\n]+")
)

// prefixes and suffixes are matched longest first; a match only strips
// when more than one rune of stem would remain.
var prefixes = []string{
	"وال", "فال", "بال", "كال", "لل", "ال",
	"و", "ف", "ب", "ك", "ل",
}

var suffixes = []string{
	"هم", "هن", "ها", "كم", "كن", "نا", "ه",
	"ون", "ين", "ان", "ات", "ية", "ة", "ي", "ك",
}

// Words returns the Arabic words of s, in order.
func Words(s string) []string {
	return wordPattern.FindAllString(s, -1)
}

// SimpleWords splits s on whitespace, keeping punctuation attached.
func SimpleWords(s string) []string {
	return strings.Fields(s)
}

// Sentences splits s into sentences on terminal punctuation and
// newlines; results are trimmed and empties dropped.
func Sentences(s string) []string {
	var sentences []string
	for _, part := range sentencePattern.Split(s, -1) {
		if part = strings.TrimSpace(part); part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// Chars splits s into single-rune strings. Spaces are dropped unless
// includeSpaces is set; other whitespace always survives.
func Chars(s string, includeSpaces bool) []string {
	chars := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		if r == ' ' && !includeSpaces {
			continue
		}
		chars = append(chars, string(r))
	}
	return chars
}

// RemovePrefix strips the first matching attached particle or article
// from word, longest candidates first. The stem keeps at least two runes;
// shorter results leave word unchanged.
func RemovePrefix(word string) string {
	n := utf8.RuneCountInString(word)
	for _, p := range prefixes {
		if n > utf8.RuneCountInString(p)+1 && strings.HasPrefix(word, p) {
			return word[len(p):]
		}
	}
	return word
}

// RemoveSuffix strips the first matching pronominal or plural suffix from
// word, longest candidates first, under the same stem-length rule as
// RemovePrefix.
func RemoveSuffix(word string) string {
	n := utf8.RuneCountInString(word)
	for _, suf := range suffixes {
		if n > utf8.RuneCountInString(suf)+1 && strings.HasSuffix(word, suf) {
			return word[:len(word)-len(suf)]
		}
	}
	return word
}

// Segmentation is a simplified affix split of a single word.
type Segmentation struct {
	Original string
	Prefix   string
	Stem     string
	Suffix   string
}

// Segment splits word into prefix + stem + suffix using the fixed affix
// lists; at most one prefix and one suffix are stripped.
func Segment(word string) Segmentation {
	seg := Segmentation{Original: word, Stem: word}

	stripped := RemovePrefix(seg.Stem)
	if stripped != seg.Stem {
		seg.Prefix = seg.Stem[:len(seg.Stem)-len(stripped)]
		seg.Stem = stripped
	}

	stripped = RemoveSuffix(seg.Stem)
	if stripped != seg.Stem {
		seg.Suffix = seg.Stem[len(stripped):]
		seg.Stem = stripped
	}

	return seg
}

// NGrams returns the word-level n-grams of s. It returns nil when s has
// fewer than n Arabic words or n is below 1.
func NGrams(s string, n int) [][]string {
	if n < 1 {
		return nil
	}
	words := Words(s)
	if len(words) < n {
		return nil
	}
	grams := make([][]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		grams = append(grams, words[i:i+n])
	}
	return grams
}

// CharNGrams returns the character-level n-grams of s with spaces
// removed first. Counting is by rune, not byte.
func CharNGrams(s string, n int) []string {
	if n < 1 {
		return nil
	}
	runes := []rune(strings.ReplaceAll(s, " ", ""))
	if len(runes) < n {
		return nil
	}
	grams := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+n]))
	}
	return grams
}
