// File: toml-cfg/helper.go
package tomlcfg

import "strings"

// isValidKeySegment checks if a name is usable as a bare TOML key.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	// TOML bare keys are sequences of ASCII letters, ASCII digits, underscores, and dashes (A-Za-z0-9_-).
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'

		if !(isLetter || isDigit || r == '_' || r == '-') {
			return false
		}
	}
	return true
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

func toUpper(r rune) rune {
	if isLower(r) {
		return r - ('a' - 'A')
	}
	return r
}

func toLower(r rune) rune {
	if isUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}

// snakeCase converts a Go identifier to its TOML key form: "BufferSize"
// becomes "buffer_size", "WifiSSID" becomes "wifi_ssid". Acronym runs stay
// together; a separator is inserted where a run of uppercase letters ends
// and a lowercase one begins.
func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if !isUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 {
			prevLower := isLower(runes[i-1])
			startsWord := isUpper(runes[i-1]) && i+1 < len(runes) && isLower(runes[i+1])
			if prevLower || startsWord {
				b.WriteByte('_')
			}
		}
		b.WriteRune(toLower(r))
	}
	return b.String()
}

// shoutySnake converts a type name to the generated variable name:
// "Config" becomes "CONFIG", "AppSettings" becomes "APP_SETTINGS".
func shoutySnake(s string) string {
	return strings.ToUpper(snakeCase(s))
}

// pascalCase converts a TOML key to a Go identifier: "buffer_size" becomes
// "BufferSize". Used for builder declarations that don't name the Go field.
func pascalCase(s string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range s {
		switch {
		case r == '_' || r == '-':
			upperNext = true
		case upperNext:
			b.WriteRune(toUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
