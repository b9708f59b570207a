package renderer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/report-flow/internal/logger"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		kind lineKind
		text string
	}{
		{"# Production Control", lineHeading, "Production Control"},
		{"## Import Files", lineHeading, "Import Files"},
		{"PROJECT MANAGEMENT", lineHeading, "PROJECT MANAGEMENT"},
		{"Estimating", lineHeading, "Estimating"},
		{"Next Steps for Purchasing", lineHeading, "Next Steps for Purchasing"},
		{"Review of Import Mapping", lineHeading, "Review of Import Mapping"},

		{"• Reviewed the accessory catalog setup.", lineBullet, "Reviewed the accessory catalog setup."},
		{"- Configured labor codes for fabrication.", lineBullet, "Configured labor codes for fabrication."},
		{"* Walked through the schedule import.", lineBullet, "Walked through the schedule import."},

		{"We reviewed the import mapping", linePlain, "We reviewed the import mapping"},
		{"The team agreed to revisit this next week.", linePlain, "The team agreed to revisit this next week."},
		{"Monday's focus was estimating and purchasing", linePlain, "Monday's focus was estimating and purchasing"},
		{"This Ends With Punctuation.", linePlain, "This Ends With Punctuation."},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			kind, text := classifyLine(tt.line)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.text, text)
		})
	}
}

func TestClassifyLineLongTitleCaseIsProse(t *testing.T) {
	long := "A Very Long Line That Keeps Going Well Past The Point Where Any Reasonable Report Would Use A Heading Because It Is Really A Sentence"
	kind, _ := classifyLine(long)
	assert.Equal(t, linePlain, kind)
}

func TestIsTitleCase(t *testing.T) {
	assert.True(t, isTitleCase("Production Control"))
	assert.True(t, isTitleCase("Review of Import Mapping"))
	assert.False(t, isTitleCase("We reviewed the import mapping"))
	assert.False(t, isTitleCase("lowercase start Line"))
	assert.False(t, isTitleCase("---"))
}

func TestRender(t *testing.T) {
	r := New(logger.New("error"))
	out := filepath.Join(t.TempDir(), "report.docx")

	report := Report{
		Title:   "Weekly Engagement Summary",
		Date:    time.Date(2025, 8, 22, 10, 0, 0, 0, time.UTC),
		Opening: "Thank you for the opportunity to work with your team this week.",
		Body: "PROJECT MANAGEMENT\n" +
			"• Reviewed the **drawing log** workflow.\n" +
			"• Confirmed the RFI process.\n" +
			"\n" +
			"Estimating\n" +
			"The current estimate template was walked through end to end.\n",
		Closing: "Please reach out with any questions.",
		Author:  "Jordan Avery",
	}

	require.NoError(t, r.Render(context.Background(), report, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderDegradedFraming(t *testing.T) {
	// Opening and closing may be empty when framing calls failed; the
	// report is still produced.
	r := New(logger.New("error"))
	out := filepath.Join(t.TempDir(), "report.docx")

	report := Report{
		Date: time.Date(2025, 8, 22, 10, 0, 0, 0, time.UTC),
		Body: "TOPIC\n• single bullet\n",
	}

	require.NoError(t, r.Render(context.Background(), report, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
