package markov

import "unicode"

// FormatSentences capitalizes the first character of s and every character
// that follows a sentence end, i.e. a '.', '?' or '!' directly followed by
// a space. Characters with no upper-case form are left alone, so applying
// FormatSentences twice gives the same result as applying it once.
func FormatSentences(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}

	runes[0] = unicode.ToUpper(runes[0])
	for i := 0; i+2 < len(runes); i++ {
		switch runes[i] {
		case '.', '?', '!':
			if runes[i+1] == ' ' {
				runes[i+2] = unicode.ToUpper(runes[i+2])
			}
		}
	}

	return string(runes)
}
