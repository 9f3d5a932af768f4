package applescript

import (
	"strings"
	"testing"
)

// unescape reverses Escape the way the AppleScript interpreter reads a
// double-quoted literal.
func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"quote", `say "hi"`, `say \"hi\"`},
		{"backslash", `C:\temp`, `C:\\temp`},
		{"newline", "a\nb", `a\nb`},
		{"escaped quote", `\"`, `\\\"`},
		{"backslash before n", `\n`, `\\n`},
		{"delimiters untouched", "a|b, c::d", "a|b, c::d"},
		{"tab untouched", "a\tb", "a\tb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscape_RoundTrip(t *testing.T) {
	inputs := []string{
		`\`,
		`"`,
		"\n",
		`\"` + "\n" + `\\`,
		"line one\nline \"two\"\n\\path\\to\\file",
		`ends with backslash\`,
		"\"\"\n\n\\\\",
		"milk, eggs",
	}

	for _, in := range inputs {
		got := unescape(Escape(in))
		if got != in {
			t.Errorf("round trip of %q produced %q", in, got)
		}
	}
}

func TestEscape_NoBareQuoteOrNewline(t *testing.T) {
	out := Escape("a\"b\nc\\\"")
	if strings.Contains(out, "\n") {
		t.Errorf("escaped output contains a raw newline: %q", out)
	}
	for i := 0; i < len(out); i++ {
		if out[i] != '"' {
			continue
		}
		// Count the backslashes in front of the quote; an odd count
		// means the quote is escaped.
		n := 0
		for j := i - 1; j >= 0 && out[j] == '\\'; j-- {
			n++
		}
		if n%2 == 0 {
			t.Errorf("unescaped quote at %d in %q", i, out)
		}
	}
}

func TestQuote(t *testing.T) {
	if got, want := Quote(`a "b"`), `"a \"b\""`; got != want {
		t.Errorf("Quote = %s, want %s", got, want)
	}
}
