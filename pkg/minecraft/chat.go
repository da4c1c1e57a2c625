package minecraft

import "strings"

// ColorChar introduces a legacy formatting code in chat messages.
const ColorChar = '§'

const colorCodes = "0123456789AaBbCcDdEeFfKkLlMmNnOoRrXx"

// TranslateColorCodes replaces alt by ColorChar wherever it is followed by a valid formatting code.
func TranslateColorCodes(alt rune, text string) string {
	runes := []rune(text)
	b := strings.Builder{}
	b.Grow(len(text))
	for i := 0; i < len(runes); i++ {
		if runes[i] == alt && i+1 < len(runes) && strings.ContainsRune(colorCodes, runes[i+1]) {
			b.WriteRune(ColorChar)
			b.WriteRune(toLower(runes[i+1]))
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// StripColorCodes removes all formatting codes from text.
func StripColorCodes(text string) string {
	runes := []rune(text)
	b := strings.Builder{}
	b.Grow(len(text))
	for i := 0; i < len(runes); i++ {
		if runes[i] == ColorChar && i+1 < len(runes) && strings.ContainsRune(colorCodes, runes[i+1]) {
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

func toLower(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}
