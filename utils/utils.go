package utils

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode"
)

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// IndexOfString returns the position of targetString in sliceOfStrings or -1 if it is not there
func IndexOfString(targetString string, sliceOfStrings []string) int {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return i
		}
	}
	return -1
}

// TitleCase lower-cases the input and upper-cases the first letter of every word,
// e.g. "  new YORK city " -> "New York City"
func TitleCase(input string) string {
	words := strings.Fields(strings.ToLower(input))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// GetSignalContext returns a context that is cancelled when an interrupt or termination signal arrives
func GetSignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
