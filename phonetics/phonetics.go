// Package phonetics transliterates Arabic text into three romanization
// schemes: Buckwalter (lossless, one ASCII character per letter),
// Franco-Arab "Arabizi" (the digit-laden chat style), and a simplified
// IPA-like phonetic rendering.
//
// Unmapped runes pass through unchanged in every scheme. All tables are
// immutable and every function is safe for concurrent use.
package phonetics

import (
	"fmt"
	"strings"
)

// ErrUnknownScheme is returned by Transliterate for a scheme name outside
// the three supported ones.
var ErrUnknownScheme = fmt.Errorf("phonetics: unknown transliteration scheme")

// buckwalter is the standard Buckwalter letter mapping. Every target is a
// single ASCII character, which keeps the scheme reversible.
var buckwalter = map[rune]rune{
	'ء': '\'', 'آ': '|', 'أ': '>', 'ؤ': '&', 'إ': '<',
	'ئ': '}', 'ا': 'A', 'ب': 'b', 'ة': 'p', 'ت': 't',
	'ث': 'v', 'ج': 'j', 'ح': 'H', 'خ': 'x', 'د': 'd',
	'ذ': '*', 'ر': 'r', 'ز': 'z', 'س': 's', 'ش': '$',
	'ص': 'S', 'ض': 'D', 'ط': 'T', 'ظ': 'Z', 'ع': 'E',
	'غ': 'g', 'ف': 'f', 'ق': 'q', 'ك': 'k', 'ل': 'l',
	'م': 'm', 'ن': 'n', 'ه': 'h', 'و': 'w', 'ي': 'y',
	'ى': 'Y', 'َ': 'a', 'ُ': 'u', 'ِ': 'i', 'ّ': '~',
	'ْ': 'o', 'ً': 'F', 'ٌ': 'N', 'ٍ': 'K',
	'ٰ': '`', 'ٓ': '#',
}

// buckwalterReverse is built once from the forward table.
var buckwalterReverse = func() map[rune]rune {
	m := make(map[rune]rune, len(buckwalter))
	for ar, latin := range buckwalter {
		m[latin] = ar
	}
	return m
}()

// franco is the Franco-Arab (Arabizi) mapping. Several letters map to
// digits by visual similarity (ع→3, ح→7, خ→5); diacritics mostly vanish.
var franco = map[rune]string{
	'ء': "2", 'آ': "2a", 'أ': "2", 'ؤ': "2", 'إ': "2",
	'ئ': "2", 'ا': "a", 'ب': "b", 'ة': "a", 'ت': "t",
	'ث': "th", 'ج': "g", 'ح': "7", 'خ': "5", 'د': "d",
	'ذ': "z", 'ر': "r", 'ز': "z", 'س': "s", 'ش': "sh",
	'ص': "s", 'ض': "d", 'ط': "t", 'ظ': "z", 'ع': "3",
	'غ': "3'", 'ف': "f", 'ق': "2", 'ك': "k", 'ل': "l",
	'م': "m", 'ن': "n", 'ه': "h", 'و': "w", 'ي': "y",
	'ى': "a",
	'َ': "a", 'ُ': "o", 'ِ': "e", 'ّ': "", 'ْ': "",
	'ً': "an", 'ٌ': "on", 'ٍ': "en",
}

// phonetic is a simplified IPA-like mapping; emphatics carry the
// pharyngealization mark and long vowels the length mark.
var phonetic = map[rune]string{
	'ء': "ʔ", 'آ': "ʔaː", 'أ': "ʔ", 'ؤ': "ʔ", 'إ': "ʔi",
	'ئ': "ʔ", 'ا': "aː", 'ب': "b", 'ة': "a", 'ت': "t",
	'ث': "θ", 'ج': "dʒ", 'ح': "ħ", 'خ': "x", 'د': "d",
	'ذ': "ð", 'ر': "r", 'ز': "z", 'س': "s", 'ش': "ʃ",
	'ص': "sˤ", 'ض': "dˤ", 'ط': "tˤ", 'ظ': "ðˤ", 'ع': "ʕ",
	'غ': "ɣ", 'ف': "f", 'ق': "q", 'ك': "k", 'ل': "l",
	'م': "m", 'ن': "n", 'ه': "h", 'و': "w", 'ي': "j",
	'ى': "aː",
	'َ': "a", 'ُ': "u", 'ِ': "i", 'ّ': "ː", 'ْ': "",
	'ً': "an", 'ٌ': "un", 'ٍ': "in",
}

// ToBuckwalter converts Arabic text to Buckwalter transliteration.
func ToBuckwalter(s string) string {
	return strings.Map(func(r rune) rune {
		if latin, ok := buckwalter[r]; ok {
			return latin
		}
		return r
	}, s)
}

// FromBuckwalter converts Buckwalter transliteration back to Arabic.
func FromBuckwalter(s string) string {
	return strings.Map(func(r rune) rune {
		if ar, ok := buckwalterReverse[r]; ok {
			return ar
		}
		return r
	}, s)
}

// ToFranco converts Arabic text to Franco-Arab (Arabizi).
func ToFranco(s string) string {
	return mapToString(s, franco)
}

// ToPhonetic converts Arabic text to the simplified IPA-like rendering.
func ToPhonetic(s string) string {
	return mapToString(s, phonetic)
}

func mapToString(s string, table map[rune]string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if out, ok := table[r]; ok {
			b.WriteString(out)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Transliterate is the scheme-keyed entry point; scheme is "buckwalter",
// "franco", or "phonetic". Any other scheme returns ErrUnknownScheme.
func Transliterate(s, scheme string) (string, error) {
	switch scheme {
	case "buckwalter":
		return ToBuckwalter(s), nil
	case "franco":
		return ToFranco(s), nil
	case "phonetic":
		return ToPhonetic(s), nil
	}
	return "", fmt.Errorf("%w: %q (available: buckwalter, franco, phonetic)", ErrUnknownScheme, scheme)
}
