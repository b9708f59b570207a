package renderer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName        = "Calibri"
	fontSize        = 11
	headingFontSize = 12
	titleFontSize   = 16

	// Heading candidates longer than this are treated as prose.
	maxHeadingLength = 80
)

var (
	reMarkdownHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold            = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// Render writes the report as a .docx file: date line, opening
// paragraph, classified body (headings, bullets, prose), closing
// paragraph and signature.
func (r *implRenderer) Render(ctx context.Context, report Report, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	if report.Title != "" {
		addStyledRun(doc.AddParagraph(""), report.Title, true, titleFontSize)
		doc.AddParagraph("")
	}

	addStyledRun(doc.AddParagraph(""), report.Date.Format("January 02, 2006"), false, fontSize)
	doc.AddParagraph("")

	if report.Opening != "" {
		addParagraphBlock(doc, report.Opening)
		doc.AddParagraph("")
	}

	writeBody(doc, report.Body)

	if report.Closing != "" {
		doc.AddParagraph("")
		addParagraphBlock(doc, report.Closing)
	}

	doc.AddParagraph("")
	addStyledRun(doc.AddParagraph(""), "Sincerely,", false, fontSize)
	if report.Author != "" {
		addStyledRun(doc.AddParagraph(""), report.Author, false, fontSize)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	r.logger.Info(ctx, "Report written: %s", outputPath)
	return nil
}

type lineKind int

const (
	linePlain lineKind = iota
	lineHeading
	lineBullet
)

// classifyLine decides how one body line is rendered. Headings are
// markdown-style, mostly-uppercase short lines, or short title-case
// lines without terminal punctuation; bullet markers win over the
// heading check.
func classifyLine(line string) (lineKind, string) {
	if m := reMarkdownHeading.FindStringSubmatch(line); m != nil {
		return lineHeading, strings.TrimSpace(m[2])
	}
	if text, ok := bulletText(line); ok {
		return lineBullet, text
	}
	if isHeading(line) {
		return lineHeading, line
	}
	return linePlain, line
}

func bulletText(line string) (string, bool) {
	for _, marker := range []string{"•", "-", "*"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimLeft(line, "•-* ")), true
		}
	}
	return "", false
}

func isHeading(line string) bool {
	runes := []rune(line)
	if len(runes) == 0 || len(runes) > maxHeadingLength {
		return false
	}
	if strings.ContainsRune(".!?,;:", runes[len(runes)-1]) {
		return false
	}

	var letters, upper int
	for _, r := range runes {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return false
	}
	if float64(upper)/float64(letters) >= 0.6 {
		return true
	}

	return isTitleCase(line)
}

// isTitleCase reports whether the first word is capitalized and at
// least three quarters of the words are, letting connectors like "of"
// and "for" stay lowercase.
func isTitleCase(line string) bool {
	var counted, capitalized int
	for i, word := range strings.Fields(line) {
		first, ok := firstLetter(word)
		if !ok {
			continue
		}
		if i == 0 && !unicode.IsUpper(first) {
			return false
		}
		counted++
		if unicode.IsUpper(first) {
			capitalized++
		}
	}
	if counted == 0 {
		return false
	}
	return float64(capitalized)/float64(counted) >= 0.75
}

func firstLetter(word string) (rune, bool) {
	for _, r := range word {
		if unicode.IsLetter(r) {
			return r, true
		}
	}
	return 0, false
}

func writeBody(doc *docx.RootDoc, body string) {
	first := true
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || line == "---" {
			continue
		}

		kind, text := classifyLine(line)
		switch kind {
		case lineHeading:
			if !first {
				doc.AddParagraph("")
			}
			addStyledRun(doc.AddParagraph(""), text, true, headingFontSize)
		case lineBullet:
			addRichText(doc.AddParagraph(""), "• "+text)
		default:
			addRichText(doc.AddParagraph(""), text)
		}
		first = false
	}
}

// addParagraphBlock writes a framing block line by line so model output
// with embedded newlines renders as separate paragraphs.
func addParagraphBlock(doc *docx.RootDoc, text string) {
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		addRichText(doc.AddParagraph(""), line)
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(cleanMarkdownInline(text)).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText renders **bold** spans as bold runs and strips leftover
// inline markdown from everything else.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
