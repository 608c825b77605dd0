// Package keywords implements boundary-aware phrase scanning over free text.
// Plain substring search confuses "paid" with "unpaid" and "ug" with "ugly",
// so occurrences only count when the phrase is not glued to surrounding
// letters or digits. Tech tokens like "c++" or "node.js" stay matchable
// because punctuation is a valid boundary.
package keywords

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Occurrences returns the byte offsets of every boundary-delimited,
// case-insensitive occurrence of phrase in text.
func Occurrences(text, phrase string) []int {
	text = strings.ToLower(text)
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return nil
	}

	var offsets []int
	for start := 0; ; {
		idx := strings.Index(text[start:], phrase)
		if idx == -1 {
			break
		}
		abs := start + idx
		if boundedAt(text, abs, len(phrase)) {
			offsets = append(offsets, abs)
		}
		start = abs + 1
	}
	return offsets
}

// LastOccurrence returns the byte offset of the last boundary-delimited
// occurrence of phrase in text, or -1 when absent.
func LastOccurrence(text, phrase string) int {
	offsets := Occurrences(text, phrase)
	if len(offsets) == 0 {
		return -1
	}
	return offsets[len(offsets)-1]
}

// Contains reports whether text contains phrase as a bounded occurrence.
func Contains(text, phrase string) bool {
	return LastOccurrence(text, phrase) != -1
}

// ContainsAny reports whether text contains any of the phrases.
func ContainsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if Contains(text, p) {
			return true
		}
	}
	return false
}

func boundedAt(text string, offset, length int) bool {
	if offset > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:offset])
		if unicode.IsLetter(prev) || unicode.IsDigit(prev) {
			return false
		}
	}
	end := offset + length
	if end < len(text) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(next) || unicode.IsDigit(next) {
			return false
		}
	}
	return true
}
