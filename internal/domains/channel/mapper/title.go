package mapper

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	MaxTitleLength = 50
	FallbackTitle  = "Room"
)

var transliteration = map[rune]string{
	// Cyrillic
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e", 'ж': "zh", 'з': "z",
	'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r",
	'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh",
	'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	'і': "i", 'ї': "yi", 'є': "ye", 'ґ': "g",
	// Greek
	'α': "a", 'β': "v", 'γ': "g", 'δ': "d", 'ε': "e", 'ζ': "z", 'η': "i", 'θ': "th", 'ι': "i",
	'κ': "k", 'λ': "l", 'μ': "m", 'ν': "n", 'ξ': "x", 'ο': "o", 'π': "p", 'ρ': "r", 'σ': "s",
	'ς': "s", 'τ': "t", 'υ': "y", 'φ': "f", 'χ': "ch", 'ψ': "ps", 'ω': "o",
	// Latin letters without a decomposition
	'ß': "ss", 'æ': "ae", 'ø': "o", 'œ': "oe", 'ł': "l", 'đ': "d", 'þ': "th",
}

func transliterate(raw string) string {
	var builder strings.Builder

	for _, char := range raw {
		lower := unicode.ToLower(char)

		latin, ok := transliteration[lower]
		if !ok {
			// accented Greek and Cyrillic letters are looked up by their base letter
			latin, ok = transliteration[baseLetter(lower)]
		}

		if !ok {
			builder.WriteRune(char)

			continue
		}

		if lower != char && latin != "" {
			latin = strings.ToUpper(latin[:1]) + latin[1:]
		}

		builder.WriteString(latin)
	}

	return builder.String()
}

func baseLetter(char rune) rune {
	decomposed := []rune(norm.NFD.String(string(char)))
	if len(decomposed) == 0 {
		return char
	}

	return decomposed[0]
}

func foldDiacritics(raw string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), raw)
	if err != nil {
		return raw
	}

	return folded
}

func allowed(char rune) bool {
	return (char >= 'a' && char <= 'z') ||
		(char >= 'A' && char <= 'Z') ||
		(char >= '0' && char <= '9') ||
		char == ' ' || char == '-'
}

// NormalizeTitle turns any room name into a title the channel manager accepts: Latin letters,
// digits, spaces and hyphens only, at most MaxTitleLength characters and never empty.
func NormalizeTitle(raw string) string {
	text := foldDiacritics(transliterate(raw))

	var builder strings.Builder

	for _, char := range text {
		switch {
		case unicode.IsSpace(char):
			builder.WriteRune(' ')
		case allowed(char):
			builder.WriteRune(char)
		}
	}

	title := strings.Join(strings.Fields(builder.String()), " ")

	if len(title) > MaxTitleLength {
		title = strings.TrimRight(title[:MaxTitleLength], " -")
	}

	title = strings.Trim(title, "-")
	title = strings.TrimSpace(title)

	if title == "" {
		return FallbackTitle
	}

	return title
}

// SameTitle compares two titles the way the channel manager deduplicates room types.
func SameTitle(left, right string) bool {
	return strings.EqualFold(NormalizeTitle(left), NormalizeTitle(right))
}
