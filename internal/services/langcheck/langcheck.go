// Package langcheck verifies that a question's script matches the declared
// request language.
package langcheck

import "github.com/Tasheela99/chat-bot/internal/models"

// MatchesDeclared reports whether text is plausible for the declared
// language. This is a presence test, not an exclusivity test: mixed-script
// questions pass as long as one character of the declared script appears.
// Unrecognized language codes are unverifiable and always pass.
func MatchesDeclared(text, lang string) bool {
	switch lang {
	case models.LangEnglish:
		return containsLatinLetter(text)
	case models.LangSinhala:
		return containsInRange(text, 0x0D80, 0x0DFF)
	case models.LangTamil:
		return containsInRange(text, 0x0B80, 0x0BFF)
	default:
		return true
	}
}

func containsLatinLetter(text string) bool {
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

func containsInRange(text string, lo, hi rune) bool {
	for _, r := range text {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}
