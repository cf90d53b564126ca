// Package numerals converts digit strings between the Western,
// Arabic-Indic, and Eastern Arabic (Persian/Urdu) numeral systems,
// extracts integers embedded in free text, and converts integers to and
// from Arabic cardinal words with grammatical number agreement.
//
// Every function is a pure transform over immutable package-level tables
// and is safe for unsynchronized concurrent use.
package numerals

import (
	"fmt"
	"strings"
)

// System identifies one of the three supported numeral systems. Each
// system is ten consecutive codepoints, one glyph per digit value, so
// cross-system conversion is glyph-for-glyph by value.
type System uint8

const (
	// Western is the ASCII digit range U+0030..U+0039 (0123456789).
	Western System = iota
	// ArabicIndic is U+0660..U+0669 (٠١٢٣٤٥٦٧٨٩).
	ArabicIndic
	// EasternArabic is the extended (Persian/Urdu) range
	// U+06F0..U+06F9 (۰۱۲۳۴۵۶۷۸۹).
	EasternArabic
)

// ErrUnknownSystem is returned by ToSystem when the target is none of the
// three defined numeral systems.
var ErrUnknownSystem = fmt.Errorf("numerals: unknown numeral system")

// zeroGlyphs holds the zero codepoint of each system; digit glyph for
// value v is zeroGlyphs[sys] + v.
var zeroGlyphs = [...]rune{
	Western:       '0',      // U+0030 DIGIT ZERO
	ArabicIndic:   '٠', // U+0660 ARABIC-INDIC DIGIT ZERO
	EasternArabic: '۰', // U+06F0 EXTENDED ARABIC-INDIC DIGIT ZERO
}

// String returns the conventional name of the system.
func (s System) String() string {
	switch s {
	case Western:
		return "Western"
	case ArabicIndic:
		return "ArabicIndic"
	case EasternArabic:
		return "EasternArabic"
	}
	return fmt.Sprintf("System(%d)", uint8(s))
}

// digitValue returns the numeric value of r in whichever system defines
// it, or -1 if r is not a digit of any of the three systems.
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= '٠' && r <= '٩':
		return int(r - '٠')
	case r >= '۰' && r <= '۹':
		return int(r - '۰')
	}
	return -1
}

// ToSystem rewrites every digit in s, whatever its source system, as the
// glyph of equal value in target. All other runes pass through untouched,
// so the transform is total over text content and idempotent. The only
// error is a target outside the three defined systems.
func ToSystem(s string, target System) (string, error) {
	if int(target) >= len(zeroGlyphs) {
		return "", fmt.Errorf("%w: %s", ErrUnknownSystem, target)
	}
	zero := zeroGlyphs[target]
	return strings.Map(func(r rune) rune {
		if v := digitValue(r); v >= 0 {
			return zero + rune(v)
		}
		return r
	}, s), nil
}

// ToWestern converts Arabic-Indic and Eastern Arabic digits in s to
// Western digits in a single pass.
func ToWestern(s string) string {
	out, _ := ToSystem(s, Western)
	return out
}

// ToArabicIndic converts Western and Eastern Arabic digits in s to
// Arabic-Indic digits in a single pass.
func ToArabicIndic(s string) string {
	out, _ := ToSystem(s, ArabicIndic)
	return out
}

// ToEastern converts Western and Arabic-Indic digits in s to Eastern
// Arabic (Persian/Urdu) digits in a single pass.
func ToEastern(s string) string {
	out, _ := ToSystem(s, EasternArabic)
	return out
}
