package chunker

import (
	"strings"
	"testing"
)

func TestSplitEmpty(t *testing.T) {
	c := New(DefaultMaxLength, DefaultOverlap)

	if got := c.Split(""); got != nil {
		t.Errorf("Split(\"\") = %v, want nil", got)
	}
	if got := c.Split("   \n\t  "); got != nil {
		t.Errorf("Split(whitespace) = %v, want nil", got)
	}
}

func TestSplitSingleChunk(t *testing.T) {
	c := New(DefaultMaxLength, DefaultOverlap)

	chunks := c.Split("  hello world  ")
	if len(chunks) != 1 {
		t.Fatalf("len(chunks) = %d, want 1", len(chunks))
	}
	if chunks[0].Text != "hello world" {
		t.Errorf("Text = %q, want %q", chunks[0].Text, "hello world")
	}
	if chunks[0].Start != 0 || chunks[0].End != 15 {
		t.Errorf("window = [%d,%d), want [0,15)", chunks[0].Start, chunks[0].End)
	}
}

func TestSplitWindowGeometry(t *testing.T) {
	c := New(15000, 800)
	text := strings.Repeat("a", 40000)

	chunks := c.Split(text)
	if len(chunks) != 3 {
		t.Fatalf("len(chunks) = %d, want 3", len(chunks))
	}

	wantStarts := []int{0, 14200, 28400}
	for i, want := range wantStarts {
		if chunks[i].Start != want {
			t.Errorf("chunks[%d].Start = %d, want %d", i, chunks[i].Start, want)
		}
		if chunks[i].Index != i {
			t.Errorf("chunks[%d].Index = %d, want %d", i, chunks[i].Index, i)
		}
	}
	if chunks[2].End != 40000 {
		t.Errorf("last End = %d, want 40000", chunks[2].End)
	}
}

func TestSplitCoversInput(t *testing.T) {
	tests := []struct {
		name      string
		maxLength int
		overlap   int
		size      int
	}{
		{"with overlap", 100, 20, 1234},
		{"no overlap", 100, 0, 1000},
		{"window larger than input", 5000, 100, 321},
		{"exact multiple", 100, 0, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Repeat("x", tt.size)
			chunks := New(tt.maxLength, tt.overlap).Split(text)
			if len(chunks) == 0 {
				t.Fatal("expected at least one chunk")
			}

			covered := make([]bool, tt.size)
			for _, ch := range chunks {
				for i := ch.Start; i < ch.End; i++ {
					covered[i] = true
				}
			}
			for i, ok := range covered {
				if !ok {
					t.Fatalf("position %d not covered by any chunk", i)
				}
			}
			if last := chunks[len(chunks)-1]; last.End != tt.size {
				t.Errorf("last End = %d, want %d", last.End, tt.size)
			}
		})
	}
}

func TestSplitOverlapAtWindowSize(t *testing.T) {
	// Overlap >= window size must still make forward progress.
	c := New(5, 10)
	text := strings.Repeat("b", 23)

	chunks := c.Split(text)
	if len(chunks) != 5 {
		t.Fatalf("len(chunks) = %d, want 5", len(chunks))
	}
	for i := 1; i < len(chunks); i++ {
		if chunks[i].Start <= chunks[i-1].Start {
			t.Fatalf("chunks[%d].Start = %d, no forward progress from %d",
				i, chunks[i].Start, chunks[i-1].Start)
		}
	}
	if chunks[4].End != 23 {
		t.Errorf("last End = %d, want 23", chunks[4].End)
	}
}

func TestSplitDropsBlankWindow(t *testing.T) {
	// Middle window is all spaces; it is dropped but the third window
	// keeps its original position.
	c := New(5, 0)
	text := "aaaaa" + "     " + "bbbbb"

	chunks := c.Split(text)
	if len(chunks) != 2 {
		t.Fatalf("len(chunks) = %d, want 2", len(chunks))
	}
	if chunks[0].Text != "aaaaa" || chunks[1].Text != "bbbbb" {
		t.Errorf("texts = %q, %q", chunks[0].Text, chunks[1].Text)
	}
	if chunks[1].Start != 10 {
		t.Errorf("chunks[1].Start = %d, want 10", chunks[1].Start)
	}
	if chunks[1].Index != 1 {
		t.Errorf("chunks[1].Index = %d, want 1", chunks[1].Index)
	}
}

func TestSplitRuneOffsets(t *testing.T) {
	// Offsets count runes, not bytes.
	c := New(4, 0)
	text := "日本語のテキスト"

	chunks := c.Split(text)
	if len(chunks) != 2 {
		t.Fatalf("len(chunks) = %d, want 2", len(chunks))
	}
	if chunks[0].Text != "日本語の" {
		t.Errorf("chunks[0].Text = %q", chunks[0].Text)
	}
	if chunks[1].Start != 4 || chunks[1].End != 8 {
		t.Errorf("chunks[1] window = [%d,%d), want [4,8)", chunks[1].Start, chunks[1].End)
	}
}

func TestSplitNonPositiveMaxLength(t *testing.T) {
	c := New(0, 0)

	chunks := c.Split("entire text in one piece")
	if len(chunks) != 1 {
		t.Fatalf("len(chunks) = %d, want 1", len(chunks))
	}
	if chunks[0].Text != "entire text in one piece" {
		t.Errorf("Text = %q", chunks[0].Text)
	}
}
