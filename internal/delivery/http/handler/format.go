package handler

import (
	"unicode"
	"unicode/utf8"
)

// capitalize turns a sentinel error message into a client-facing one
func capitalize(message string) string {
	r, size := utf8.DecodeRuneInString(message)
	if r == utf8.RuneError {
		return message
	}
	return string(unicode.ToUpper(r)) + message[size:]
}
