package numerals

// Integer-to-words encoding. The lexical tables below are fixed; entries
// for zero-valued positions are empty strings and are never emitted.

import (
	"fmt"
	"strings"
)

var ones = [10]string{
	"", "واحد", "اثنان", "ثلاثة", "أربعة",
	"خمسة", "ستة", "سبعة", "ثمانية", "تسعة",
}

// teens covers 10 through 19; index is value-10.
var teens = [10]string{
	"عشرة", "أحد عشر", "اثنا عشر", "ثلاثة عشر", "أربعة عشر",
	"خمسة عشر", "ستة عشر", "سبعة عشر", "ثمانية عشر", "تسعة عشر",
}

// tens covers the multiples of ten; indices 0 and 1 are unused (10..19
// are teens).
var tens = [10]string{
	"", "", "عشرون", "ثلاثون", "أربعون",
	"خمسون", "ستون", "سبعون", "ثمانون", "تسعون",
}

// hundreds covers the multiples of one hundred.
var hundreds = [10]string{
	"", "مئة", "مئتان", "ثلاثمئة", "أربعمئة",
	"خمسمئة", "ستمئة", "سبعمئة", "ثمانمئة", "تسعمئة",
}

// scaleTier holds the singular and plural word for one power-of-1000
// magnitude. Tier 0 (units) carries no scale word; the dual is derived
// from the singular, not stored.
type scaleTier struct {
	singular string
	plural   string
}

var scales = [...]scaleTier{
	{},
	{"ألف", "آلاف"},
	{"مليون", "ملايين"},
	{"مليار", "مليارات"},
	{"تريليون", "تريليونات"},
}

const (
	wordZero     = "صفر"
	wordNegative = "سالب"
	conjunction  = "و"

	// maxMagnitude is the first magnitude past the trillion tier; values
	// at or beyond it have no defined scale word.
	maxMagnitude = 1_000_000_000_000_000
)

// ErrUnsupportedMagnitude is returned by NumberToWords when |n| requires
// a scale tier beyond the trillion tier (|n| >= 10^15).
var ErrUnsupportedMagnitude = fmt.Errorf("numerals: magnitude beyond the trillion scale tier")

// NumberToWords converts n to Arabic cardinal words.
//
// Scale words agree grammatically with their base-1000 group: a group of
// exactly 1 yields the bare singular ("ألف"), exactly 2 the dual
// ("ألفان"), 3 through 10 the group words followed by the plural
// ("ثلاثة آلاف"), and anything larger the group words followed by the
// singular ("أحد عشر ألف"). Negative values carry the prefix "سالب".
//
// Magnitudes of 10^15 and above exceed the scale table and return
// ErrUnsupportedMagnitude.
func NumberToWords(n int64) (string, error) {
	if n == 0 {
		return wordZero, nil
	}
	// Also rejects math.MinInt64 before the negation below could overflow.
	if n <= -maxMagnitude || n >= maxMagnitude {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedMagnitude, n)
	}

	negative := n < 0
	if negative {
		n = -n
	}

	// Decompose into base-1000 groups, least significant first; zero
	// groups produce no words at all.
	var groups []string
	for tier := 0; n > 0; tier++ {
		g := int(n % 1000)
		n /= 1000
		if g == 0 {
			continue
		}
		groups = append(groups, tierWords(g, tier))
	}

	// Emit most-significant tier first.
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}

	words := strings.Join(groups, " "+conjunction)
	if negative {
		words = wordNegative + " " + words
	}
	return words, nil
}

// tierWords encodes one nonzero group g in [1,999] at the given tier,
// applying scale-word agreement for tiers above the units.
func tierWords(g, tier int) string {
	if tier == 0 {
		return underThousand(g)
	}
	scale := scales[tier]
	switch {
	case g == 1:
		return scale.singular
	case g == 2:
		return dualOf(scale.singular)
	case g <= 10:
		return underThousand(g) + " " + scale.plural
	default:
		return underThousand(g) + " " + scale.singular
	}
}

// dualOf applies Arabic dual marking to a scale singular: a trailing taa
// marbuta (ة) is replaced by the dual ending, otherwise the ending is
// appended directly ("ألف" → "ألفان").
func dualOf(singular string) string {
	if stem, ok := strings.CutSuffix(singular, "ة"); ok {
		return stem + "ان"
	}
	return singular + "ان"
}

// underThousand encodes g in [1,999]. Fragment order follows Arabic
// reading: the hundreds word first, then either a single teens word or
// the ones word before the tens word ("ثلاثة وعشرون" for 23). Fragments
// join with the conjunction.
func underThousand(g int) string {
	parts := make([]string, 0, 3)

	if h := g / 100; h > 0 {
		parts = append(parts, hundreds[h])
	}

	r := g % 100
	if r >= 10 && r <= 19 {
		parts = append(parts, teens[r-10])
	} else {
		if o := r % 10; o != 0 {
			parts = append(parts, ones[o])
		}
		if t := r / 10; t != 0 {
			parts = append(parts, tens[t])
		}
	}

	return strings.Join(parts, " "+conjunction)
}
