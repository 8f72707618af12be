// Package safety screens questions for disallowed terms before any other
// pipeline stage runs.
package safety

import "strings"

// denyList covers all supported languages at once: English terms plus
// Sinhala- and Tamil-script entries. Scoping per language is deliberately
// avoided since users mix scripts freely.
var denyList = []string{
	"fuck", "shit", "bitch", "asshole", "bastard", "damn", "piss", "dick",
	"cunt", "fag", "slut", "whore",
	"පිස්සෝ", "කෙල්ල", "පොන්නයා", "පකයා", "පකී", "පොන්නි",
	"பொன்னையா", "பக்கியா", "பொன்னி", "பக்கி",
}

// ContainsDisallowed reports whether text contains any deny-listed term.
// The check is a case-insensitive substring scan with no side effects.
func ContainsDisallowed(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range denyList {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
