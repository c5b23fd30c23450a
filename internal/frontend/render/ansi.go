// Package render formats weapons, kill stats, slots and catalog listings as
// terminal text, optionally styled with ANSI colour.
package render

import "fmt"

// ANSI escape code constants for terminal styling.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	White  = "\033[37m"

	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
)

// Colorize wraps text with the given ANSI color code and a reset suffix.
//
// Precondition: color must be a valid ANSI escape sequence.
// Postcondition: Returns text wrapped with the color code and Reset.
func Colorize(color, text string) string {
	return color + text + Reset
}

// Colorf wraps a formatted string with the given ANSI color code.
//
// Precondition: color must be a valid ANSI escape sequence.
// Postcondition: Returns the formatted text wrapped with color and Reset.
func Colorf(color, format string, args ...any) string {
	return color + fmt.Sprintf(format, args...) + Reset
}

// StripANSI removes all ANSI escape sequences from a string.
//
// Postcondition: Returns text with all \033[...m sequences removed.
func StripANSI(s string) string {
	result := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				i = j + 1
				continue
			}
		}
		result = append(result, s[i])
		i++
	}
	return string(result)
}
