package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitLines splits text on every line boundary: \n, \r\n, \r, \v, \f,
// the ASCII file/group/record separators, NEL, and U+2028/U+2029.
// A trailing boundary does not yield an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// StripBlankLines drops every line that is empty or whitespace-only and
// joins the rest with \n. Order is preserved.
func StripBlankLines(text string) string {
	lines := SplitLines(text)
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimFunc(line, isBlank) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// isBlank also counts the ASCII unit separator, which is not a line
// break but is whitespace in Unicode's bidi classes.
func isBlank(r rune) bool {
	return r == 0x1f || unicode.IsSpace(r)
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
