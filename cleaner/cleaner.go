// Package cleaner strips noise from Arabic text: URLs, emails, mentions,
// hashtags, HTML tags, emojis, punctuation, repeated characters, and
// excess whitespace, individually or as a configurable pipeline.
//
// All patterns compile once at package load; every function is pure and
// safe for concurrent use.
package cleaner

import (
	"regexp"
	"strings"

	"github.com/boxesandglue/arabictext/diacritics"
	"github.com/boxesandglue/arabictext/normalizer"
)

var (
	urlPattern     = regexp.MustCompile(`(?i)https?://\S+|www\.\S+|ftp://\S+`)
	emailPattern   = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	mentionPattern = regexp.MustCompile(`@[\p{L}\p{N}_]+`)
	hashtagPattern = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
	spacesPattern  = regexp.MustCompile(`\s+`)

	// ASCII punctuation plus the Arabic comma, semicolon, question mark,
	// percent, decimal/thousands separators, guillemets, ellipsis, and
	// en dash.
	punctPattern = regexp.MustCompile("[!\"#$%&'()*+,\\-./:;<=>?@\\[\\\\\\]^_\x60{|}~،؛؟٪٫٬«»…–]")

	// Everything outside the Arabic blocks, whitespace, and digits.
	nonArabicPattern = regexp.MustCompile(`[^\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}\x{FB50}-\x{FDFF}\x{FE70}-\x{FEFF}\s\d]`)

	// The usual emoji blocks; the last two ranges are deliberately broad
	// (dingbats and enclosed symbols sweep in neighboring symbol blocks).
	emojiPattern = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2702}-\x{27B0}\x{24C2}-\x{1F251}]+`)
)

// RemoveURLs strips http(s), www, and ftp links.
func RemoveURLs(s string) string { return urlPattern.ReplaceAllString(s, "") }

// RemoveEmails strips email addresses.
func RemoveEmails(s string) string { return emailPattern.ReplaceAllString(s, "") }

// RemoveMentions strips @username mentions.
func RemoveMentions(s string) string { return mentionPattern.ReplaceAllString(s, "") }

// RemoveHashtags strips #tag hashtags, Arabic tags included.
func RemoveHashtags(s string) string { return hashtagPattern.ReplaceAllString(s, "") }

// RemoveHTMLTags strips anything that looks like an HTML/XML tag.
func RemoveHTMLTags(s string) string { return htmlTagPattern.ReplaceAllString(s, "") }

// RemovePunctuation strips ASCII and Arabic punctuation.
func RemovePunctuation(s string) string { return punctPattern.ReplaceAllString(s, "") }

// RemoveNonArabic strips every rune outside the Arabic Unicode blocks,
// keeping whitespace and ASCII digits.
func RemoveNonArabic(s string) string { return nonArabicPattern.ReplaceAllString(s, "") }

// RemoveEmojis strips emoji and related pictographic symbols.
func RemoveEmojis(s string) string { return emojiPattern.ReplaceAllString(s, "") }

// RemoveExtraSpaces collapses every whitespace run to a single space and
// trims the ends.
func RemoveExtraSpaces(s string) string {
	return strings.TrimSpace(spacesPattern.ReplaceAllString(s, " "))
}

// ReduceRepeated caps runs of the same rune at max consecutive
// occurrences ("هههههه" with max 2 becomes "هه"). A max below 1 is
// treated as 1. Implemented as a rune scan; RE2 has no backreferences.
func ReduceRepeated(s string, max int) string {
	if max < 1 {
		max = 1
	}
	var b strings.Builder
	b.Grow(len(s))
	prev := rune(-1)
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run <= max {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Options selects the cleaning steps for CleanWith.
type Options struct {
	URLs        bool
	Emails      bool
	Mentions    bool
	Hashtags    bool
	HTML        bool
	Emojis      bool
	Punctuation bool
	Diacritics  bool
	Normalize   bool
	Tatweel     bool

	// KeepOnlyArabic additionally drops every non-Arabic rune at the end
	// of the pipeline. Off by default.
	KeepOnlyArabic bool
}

// DefaultOptions enables every step except KeepOnlyArabic.
var DefaultOptions = Options{
	URLs: true, Emails: true, Mentions: true, Hashtags: true,
	HTML: true, Emojis: true, Punctuation: true, Diacritics: true,
	Normalize: true, Tatweel: true,
}

// Clean runs the full default pipeline (see DefaultOptions), always
// ending with whitespace collapsing.
func Clean(s string) string {
	return CleanWith(s, DefaultOptions)
}

// CleanWith runs the selected steps in a fixed order — markup and noise
// first, then diacritics and normalization, punctuation last — and always
// finishes by collapsing whitespace.
func CleanWith(s string, o Options) string {
	if o.HTML {
		s = RemoveHTMLTags(s)
	}
	if o.URLs {
		s = RemoveURLs(s)
	}
	if o.Emails {
		s = RemoveEmails(s)
	}
	if o.Mentions {
		s = RemoveMentions(s)
	}
	if o.Hashtags {
		s = RemoveHashtags(s)
	}
	if o.Emojis {
		s = RemoveEmojis(s)
	}
	if o.Diacritics {
		s = diacritics.Remove(s)
	}
	if o.Normalize {
		s = normalizer.Normalize(s)
	}
	if o.Tatweel {
		s = normalizer.RemoveTatweel(s)
	}
	if o.Punctuation {
		s = RemovePunctuation(s)
	}
	if o.KeepOnlyArabic {
		s = RemoveNonArabic(s)
	}
	return RemoveExtraSpaces(s)
}
