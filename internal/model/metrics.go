package model

import "strings"

// TextMetrics holds the deterministic size measurements of a submitted
// conversation. Derived fresh on every evaluation, never persisted on its own.
type TextMetrics struct {
	CharCount int `json:"char_count" bson:"charCount"`
	WordCount int `json:"word_count" bson:"wordCount"`
	LineCount int `json:"line_count" bson:"lineCount"`
}

// ComputeMetrics measures a raw conversation string.
// CharCount is the exact length of the untrimmed input. Word and line counts
// ignore empty tokens, so the empty (or all-whitespace) string yields zero
// for both rather than the single empty token a naive split would produce.
func ComputeMetrics(raw string) TextMetrics {
	m := TextMetrics{CharCount: len(raw)}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return m
	}

	m.WordCount = len(strings.Fields(trimmed))

	for _, line := range strings.Split(trimmed, "\n") {
		if strings.TrimSpace(line) != "" {
			m.LineCount++
		}
	}
	return m
}
