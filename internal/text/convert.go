package text

import "regexp"

// Stats reports how many delimiter pairs a conversion rewrote.
type Stats struct {
	Display int // \[ \] pairs
	Inline  int // \( \) pairs
}

// Total returns the number of rewritten pairs.
func (s Stats) Total() int {
	return s.Display + s.Inline
}

// Convert rewrites \[...\] and then \(...\) spans into $...$.
// Text outside matched spans is returned untouched, and unmatched markers
// are left as they are. It never fails.
func Convert(input string) string {
	out, _ := ConvertWithStats(input)
	return out
}

// ConvertWithStats is Convert plus a count of the pairs it replaced.
// The inline rule runs on the output of the display rule.
func ConvertWithStats(input string) (string, Stats) {
	var stats Stats
	if input == "" {
		return "", stats
	}

	text, n := wrapDollar(DisplayMathRegex, input)
	stats.Display = n

	text, n = wrapDollar(InlineMathRegex, text)
	stats.Inline = n

	return text, stats
}

// wrapDollar swaps the two-byte markers of every match for single dollars.
// The body between the markers is copied byte for byte.
func wrapDollar(re *regexp.Regexp, s string) (string, int) {
	count := 0
	out := re.ReplaceAllStringFunc(s, func(match string) string {
		count++
		body := match[delimiterWidth : len(match)-delimiterWidth]
		return "$" + body + "$"
	})
	return out, count
}
