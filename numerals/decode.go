package numerals

import "strings"

// wordValues is the reverse lookup used by WordsToNumber, built once at
// package load from the encoding tables. It is lossy by construction:
// besides the under-1000 vocabulary it carries only the two fixed
// thousand forms and the bare million/billion singulars. Dual and plural
// scale forms beyond those are absent and decode to nothing.
var wordValues = buildWordValues()

func buildWordValues() map[string]int64 {
	m := make(map[string]int64, 48)
	for i, w := range ones {
		if w != "" {
			m[w] = int64(i)
		}
	}
	for i, w := range teens {
		m[w] = int64(i) + 10
	}
	for i, w := range tens {
		if w != "" {
			m[w] = int64(i) * 10
		}
	}
	for i, w := range hundreds {
		if w != "" {
			m[w] = int64(i) * 100
		}
	}
	m["ألف"] = 1_000
	m["ألفان"] = 2_000
	m["مليون"] = 1_000_000
	m["مليار"] = 1_000_000_000
	return m
}

// WordsToNumber converts Arabic cardinal words back to an integer.
//
// The conversion is approximate, not validated. The input splits on the
// conjunction separator " و", each part is trimmed and looked up in a
// flat word table, and the matches are summed; unknown parts contribute
// zero, silently, and no error is ever returned. Summation is flat and
// order-independent, so WordsToNumber inverts NumberToWords only for
// single-tier values (0..999) and the fixed forms ألف, ألفان, مليون and
// مليار — composed scale spellings such as "ثلاثة آلاف" under-count.
func WordsToNumber(s string) int64 {
	s = strings.TrimSpace(s)
	if s == wordZero {
		return 0
	}

	var total int64
	for _, part := range strings.Split(s, " "+conjunction) {
		if v, ok := wordValues[strings.TrimSpace(part)]; ok {
			total += v
		}
	}
	return total
}
