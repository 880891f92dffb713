/*
Package tokenize turns raw text into the words and character n-grams the rest
of wordgram works with.

Text is expected to go through Sanitize first: it lowercases and strips
diacritics (including Hebrew points and cantillation) so that "Héllö" and
"hello" produce the same grams.

	clean := tokenize.Sanitize("Héllö, World")
	words := tokenize.Words(clean)         // [hello world]
	grams := tokenize.NGrams(clean, 2)     // [he el ll lo wo or rl ld]

N-grams never cross whitespace or punctuation. StrictNGrams additionally
rejects grams containing symbols such as '#', '$' or '-'.
*/
package tokenize

import (
	"strings"
	"unicode"
)

// Punctuations are the characters that mark the start and end of sentences.
const Punctuations = ".,;:!?‽¡¿⸘()[]{}<>’'«»…\"\n\t\r"

// WordSeparators are the characters (besides whitespace) that split words.
const WordSeparators = "—.,;:!?‽¡¿⸘()[]{}<>«»…\""

// Symbols are non-letter characters that may be glued to words, like "#tag" or "5%".
const Symbols = "~`@#$%^&*_+=|\\/-"

// HasPunctuation reports whether text contains any of Punctuations.
func HasPunctuation(text string) bool {
	return strings.ContainsAny(text, Punctuations)
}

// HasSymbols reports whether text contains any of Symbols.
func HasSymbols(text string) bool {
	return strings.ContainsAny(text, Symbols)
}

// HasSpace reports whether text contains unicode whitespace.
func HasSpace(text string) bool {
	return strings.IndexFunc(text, unicode.IsSpace) != -1
}

// IsWordSeparator reports whether r splits two words.
func IsWordSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(WordSeparators, r)
}

// Words extracts the words of text, in order, duplicates included.
func Words(text string) []string {
	fields := strings.FieldsFunc(text, IsWordSeparator)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		words = append(words, field)
	}
	return words
}

// NGrams returns every window of size runes in text that contains neither
// whitespace nor punctuation.
func NGrams(text string, size int) []string {
	return ngrams(text, size, func(gram string) bool {
		return HasPunctuation(gram) || HasSpace(gram)
	})
}

// StrictNGrams is NGrams that also rejects windows containing Symbols.
func StrictNGrams(text string, size int) []string {
	return ngrams(text, size, func(gram string) bool {
		return HasPunctuation(gram) || HasSpace(gram) || HasSymbols(gram)
	})
}

func ngrams(text string, size int, reject func(string) bool) []string {
	if size < 1 {
		return []string{}
	}
	runes := []rune(text)
	if len(runes) < size {
		return []string{}
	}

	grams := make([]string, 0, len(runes)-size+1)
	for i := 0; i+size <= len(runes); i++ {
		gram := string(runes[i : i+size])
		if reject(gram) {
			continue
		}
		grams = append(grams, gram)
	}
	return grams
}

// WordNGrams returns sliding windows of size consecutive words.
// Sentence punctuation is not treated as a boundary.
func WordNGrams(text string, size int) [][]string {
	words := Words(text)
	if size < 1 || len(words) < size {
		return [][]string{}
	}
	windows := make([][]string, 0, len(words)-size+1)
	for i := 0; i+size <= len(words); i++ {
		window := make([]string, size)
		copy(window, words[i:i+size])
		windows = append(windows, window)
	}
	return windows
}

// Collections splits each word into its own n-gram sequence.
func Collections(words []string, size int) [][]string {
	collections := make([][]string, 0, len(words))
	for _, word := range words {
		collections = append(collections, NGrams(word, size))
	}
	return collections
}
