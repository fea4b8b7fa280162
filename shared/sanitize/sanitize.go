// Package sanitize cleans free text coming from public forms.
package sanitize

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags removes tag-like markup and comments and keeps the raw text between
// them. Entities are not decoded. Every pass only drops bytes, so repeating
// until nothing changes terminates, and stripping the result again returns it
// unchanged.
func StripTags(value string) string {
	for {
		stripped := stripOnce(value)
		if stripped == value {
			return stripped
		}

		value = stripped
	}
}

func stripOnce(value string) string {
	if !strings.ContainsRune(value, '<') {
		return value
	}

	var builder strings.Builder

	tokenizer := html.NewTokenizer(strings.NewReader(value))

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return builder.String()
		case html.TextToken:
			builder.Write(tokenizer.Raw())
		default:
			// tags, comments and doctypes are dropped
		}
	}
}

// Text strips markup and surrounding whitespace.
func Text(value string) string {
	return strings.TrimSpace(StripTags(value))
}

// Digits keeps only ASCII digits, in order.
func Digits(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, value)
}
