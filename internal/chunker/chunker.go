// Package chunker splits long transcript text into overlapping windows
// sized to fit a single model call.
package chunker

import "strings"

const (
	DefaultMaxLength = 15000
	DefaultOverlap   = 800
)

// Chunk is one window over the source text. Start and End are rune
// offsets of the untrimmed window; Text has surrounding whitespace
// removed.
type Chunk struct {
	Index int
	Text  string
	Start int
	End   int
}

type Chunker struct {
	maxLength int
	overlap   int
}

// New creates a chunker with the given window size and overlap. A
// negative overlap is treated as zero.
func New(maxLength, overlap int) *Chunker {
	if overlap < 0 {
		overlap = 0
	}
	return &Chunker{
		maxLength: maxLength,
		overlap:   overlap,
	}
}

// Split cuts text into sequential windows of at most maxLength runes,
// each overlapping the previous by the configured amount. Windows that
// trim to empty are dropped without shifting later window positions.
// The final window always ends exactly at the end of the text.
func (c *Chunker) Split(text string) []Chunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	n := len(runes)

	maxLength := c.maxLength
	if maxLength <= 0 {
		maxLength = n
	}

	var chunks []Chunk
	start := 0
	for start < n {
		end := start + maxLength
		if end > n {
			end = n
		}

		window := strings.TrimSpace(string(runes[start:end]))
		if window != "" {
			chunks = append(chunks, Chunk{
				Index: len(chunks),
				Text:  window,
				Start: start,
				End:   end,
			})
		}

		if end == n {
			break
		}

		// Overlap at or above the window size would otherwise stall here.
		next := end - c.overlap
		if next <= start {
			next = end
		}
		start = next
	}

	return chunks
}
