package libs

import (
	"golang.org/x/exp/slices"
	"regexp"
	"strconv"
)

type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return "invalid ARFCN " + strconv.Quote(e.Text)
}

// Check if text looks like a whole number (optional leading minus)
func IsARFCNText(text string) (arfcnIsValid bool) {
	return regexp.MustCompile(`^-?[0-9]+$`).MatchString(text)
}

// Check if rune is typeable in the ARFCN field
func IsARFCNRune(r rune) (runeIsValid bool) {
	return slices.Contains([]rune("-0123456789"), r)
}

// Check if string isn't empty, else return "--"
func PlaceholderTest(element string) string {
	if len(element) > 0 {
		return element
	}
	return "--"
}
