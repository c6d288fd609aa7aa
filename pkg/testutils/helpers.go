package testutils

import "strings"

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}

// SquashSpaces collapses runs of whitespace so rendered layouts can be
// matched without depending on padding
func SquashSpaces(str string) string {
	return strings.Join(strings.Fields(str), " ")
}
