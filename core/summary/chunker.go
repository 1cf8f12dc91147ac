// ABOUTME: Text chunker splits long text into bounded, sentence-aligned segments
// ABOUTME: Keeps every summarization engine call under the model's input ceiling

package summary

import "strings"

const sentenceDelimiter = ". "

// Normalize collapses all runs of whitespace into single spaces.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Chunk splits text into sentence-aligned chunks of at most maxChars
// characters. Sentences are accumulated first-fit; when adding the next
// sentence would exceed the bound the current chunk is flushed and a new one
// starts with that sentence. A single sentence longer than maxChars becomes a
// chunk of its own. No chunk is ever empty.
func Chunk(text string, maxChars int) []string {
	text = Normalize(text)
	if len(text) <= maxChars {
		return []string{text}
	}

	var chunks []string
	var current []string

	for _, sentence := range strings.Split(text, sentenceDelimiter) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		candidate := strings.Join(append(append([]string{}, current...), sentence), sentenceDelimiter)
		if len(candidate) <= maxChars {
			current = append(current, sentence)
			continue
		}

		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, sentenceDelimiter))
		}
		current = []string{sentence}
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, sentenceDelimiter))
	}

	return chunks
}
