package redaction

import "unicode"

// MaxChunkLength is the default window, in runes, sent to the detector as
// one document.
const MaxChunkLength = 5000

// Chunk splits text into segments of at most maxLen runes whose
// concatenation is exactly text. Splits prefer a sentence terminator in the
// second half of the window, then the last whitespace, then a hard cut.
func Chunk(text string, maxLen int) []string {
	if maxLen < 1 {
		maxLen = 1
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(runes) > maxLen {
		cut := splitPoint(runes, maxLen)
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

// splitPoint returns the length of the next chunk. runes is longer than
// maxLen, so runes[maxLen] is always addressable.
func splitPoint(runes []rune, maxLen int) int {
	half := maxLen / 2
	for i := maxLen - 1; i >= half; i-- {
		if !isTerminator(runes[i]) {
			continue
		}
		if i+1 == len(runes) || unicode.IsSpace(runes[i+1]) {
			return i + 1
		}
	}

	for i := maxLen - 1; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return i + 1
		}
	}

	return maxLen
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
