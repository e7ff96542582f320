package text

import (
	"reflect"
	"testing"
)

func TestStripBlankLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"blank and whitespace lines", "a\n\n  \nb", "a\nb"},
		{"leading and trailing blanks", "\n\n a \n\t\n", " a "},
		{"only blanks", "\n \n\t\n", ""},
		{"crlf", "a\r\n\r\nb\r\n", "a\nb"},
		{"bare cr", "a\r\rb", "a\nb"},
		{"unicode separators", "a\u2028\u2028b\u2029c", "a\nb\nc"},
		{"form feed and vertical tab", "a\f\vb", "a\nb"},
		{"nbsp-only line is blank", "a\n\u00a0\nb", "a\nb"},
		{"unit separator line is blank", "a\n\x1f\n \x1f\t\nb", "a\nb"},
		{"unit separator beside text kept", "\x1fx", "\x1fx"},
		{"inner spacing kept", "  x = 1  \n\n y ", "  x = 1  \n y "},
		{"no trailing newline added", "a\nb\n", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripBlankLines(tt.input); got != tt.want {
				t.Errorf("StripBlankLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripBlankLines_Idempotent(t *testing.T) {
	inputs := []string{
		"a\n\n  \nb",
		"\r\n\r\nx\r\n",
		"one\u2028\u2028two",
		"",
		"   ",
	}
	for _, in := range inputs {
		once := StripBlankLines(in)
		if twice := StripBlankLines(once); twice != once {
			t.Errorf("StripBlankLines twice on %q = %q, want %q", in, twice, once)
		}
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"a\r\nb", []string{"a", "b"}},
		{"a\r\rb", []string{"a", "", "b"}},
		{"a\x1cb\x1dc\x1ed", []string{"a", "b", "c", "d"}},
		{"a\u0085b", []string{"a", "b"}},
		{"\n", []string{""}},
	}

	for _, tt := range tests {
		got := SplitLines(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitLines(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
