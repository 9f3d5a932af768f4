package applescript

import "strings"

// Escape prepares text for embedding inside a double-quoted AppleScript
// string literal. The interpreter turns the result back into the original
// text exactly.
//
// Replacement order matters: backslashes first, so the escapes inserted for
// quotes and newlines are not escaped a second time. Nothing else is touched.
//
// Escape is only for script construction. Output coming back from osascript
// is never unescaped with it.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// Quote escapes s and wraps it in double quotes.
func Quote(s string) string {
	return `"` + Escape(s) + `"`
}
