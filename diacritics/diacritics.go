// Package diacritics handles Arabic diacritical marks (tashkeel):
// stripping them wholesale or by class, detecting and counting them, and
// picking the diacritized words out of a text.
//
// All functions are pure and safe for concurrent use.
package diacritics

import (
	"fmt"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/rangetable"
)

// The tashkeel marks.
const (
	Fathatan        = 'ً' // ً ARABIC FATHATAN
	Dammatan        = 'ٌ' // ٌ ARABIC DAMMATAN
	Kasratan        = 'ٍ' // ٍ ARABIC KASRATAN
	Fatha           = 'َ' // َ ARABIC FATHA
	Damma           = 'ُ' // ُ ARABIC DAMMA
	Kasra           = 'ِ' // ِ ARABIC KASRA
	Shadda          = 'ّ' // ّ ARABIC SHADDA
	Sukun           = 'ْ' // ْ ARABIC SUKUN
	Maddah          = 'ٓ' // ٓ ARABIC MADDAH ABOVE
	HamzaAbove      = 'ٔ' // ٔ ARABIC HAMZA ABOVE
	HamzaBelow      = 'ٕ' // ٕ ARABIC HAMZA BELOW
	SuperscriptAlef = 'ٰ' // ٰ ARABIC LETTER SUPERSCRIPT ALEF
)

// allMarks lists every mark this package knows, in codepoint order.
var allMarks = []rune{
	Fathatan, Dammatan, Kasratan,
	Fatha, Damma, Kasra,
	Shadda, Sukun, Maddah,
	HamzaAbove, HamzaBelow,
	SuperscriptAlef,
}

// markNames maps each mark to its Arabic display name, used by Stats.
// Marks without an entry report as U+XXXX.
var markNames = map[rune]string{
	Fathatan: "فتحتان (تنوين فتح)",
	Dammatan: "ضمتان (تنوين ضم)",
	Kasratan: "كسرتان (تنوين كسر)",
	Fatha:    "فتحة",
	Damma:    "ضمة",
	Kasra:    "كسرة",
	Shadda:   "شدة",
	Sukun:    "سكون",
	Maddah:   "مدة",
}

// Rune sets for the removal transformers.
var (
	allSet     = runes.In(rangetable.New(allMarks...))
	harakatSet = runes.In(rangetable.New(Fatha, Damma, Kasra))
	tanweenSet = runes.In(rangetable.New(Fathatan, Dammatan, Kasratan))
	shaddaSet  = runes.In(rangetable.New(Shadda))
)

func removeSet(set runes.Set, s string) string {
	out, _, _ := transform.String(runes.Remove(set), s)
	return out
}

// Remove strips all diacritics from s.
func Remove(s string) string {
	return removeSet(allSet, s)
}

// RemoveHarakat strips only the three short vowels (fatha, damma, kasra),
// leaving tanween, shadda, and the rest in place.
func RemoveHarakat(s string) string {
	return removeSet(harakatSet, s)
}

// RemoveTanween strips only the tanween marks.
func RemoveTanween(s string) string {
	return removeSet(tanweenSet, s)
}

// RemoveShadda strips only the shadda mark.
func RemoveShadda(s string) string {
	return removeSet(shaddaSet, s)
}

// Has reports whether s contains any diacritic.
func Has(s string) bool {
	for _, r := range s {
		if allSet.Contains(r) {
			return true
		}
	}
	return false
}

// Count returns the total number of diacritics in s.
func Count(s string) int {
	n := 0
	for _, r := range s {
		if allSet.Contains(r) {
			n++
		}
	}
	return n
}

// Stats returns per-mark counts keyed by the mark's Arabic name; marks
// absent from the text are omitted.
func Stats(s string) map[string]int {
	result := make(map[string]int)
	for _, mark := range allMarks {
		count := strings.Count(s, string(mark))
		if count == 0 {
			continue
		}
		name, ok := markNames[mark]
		if !ok {
			name = fmt.Sprintf("U+%04X", mark)
		}
		result[name] = count
	}
	return result
}

// DiacritizedWords returns the whitespace-separated words of s that carry
// at least one diacritic, in order of occurrence.
func DiacritizedWords(s string) []string {
	var words []string
	for _, w := range strings.Fields(s) {
		if Has(w) {
			words = append(words, w)
		}
	}
	return words
}
