package receipt

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const fallbackPrefix = "REC"

// Prefix derives the receipt prefix from the organization name: letters only, upper case, at most four.
func Prefix(orgName string) string {
	upper := cases.Upper(language.Und).String(orgName)
	letters := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r
		}
		return -1
	}, upper)

	if letters == "" {
		return fallbackPrefix
	}
	if len(letters) > 4 {
		letters = letters[:4]
	}
	return letters
}

func FormatNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%06d", prefix, year, seq)
}
