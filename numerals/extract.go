package numerals

import "math/big"

// ExtractNumbers returns every number embedded in s as an integer, in
// left-to-right order of occurrence, regardless of which numeral system
// spells it. The text is first transcoded to Western digits, then maximal
// contiguous digit runs are parsed base-10. Runs separated by any
// non-digit rune, spaces included, stay separate numbers; "٢٣ و 15"
// yields 23 and 15, never 2315. Leading zeros parse decimally.
//
// Magnitude is unbounded: arbitrarily long digit runs parse exactly,
// which is why results are *big.Int rather than a fixed-width type.
func ExtractNumbers(s string) []*big.Int {
	text := ToWestern(s)

	var nums []*big.Int
	start := -1
	for i, r := range text {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			nums = append(nums, parseDigitRun(text[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		nums = append(nums, parseDigitRun(text[start:]))
	}
	return nums
}

// parseDigitRun parses a non-empty run of ASCII digits. SetString cannot
// fail here; the scanner only hands over [0-9]+.
func parseDigitRun(digits string) *big.Int {
	n := new(big.Int)
	n.SetString(digits, 10)
	return n
}
