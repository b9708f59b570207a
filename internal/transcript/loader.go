package transcript

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// vttProtocolPrefixes mark lines carrying WebVTT metadata rather than
// spoken text.
var vttProtocolPrefixes = []string{"WEBVTT", "NOTE", "STYLE", "REGION"}

// Supported reports whether path has a transcript extension this loader
// understands.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt", ".vtt", ".txt":
		return true
	}
	return false
}

// Day derives the day identity from a file path: the base name without
// its extension.
func Day(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads one raw file and normalizes it to plain text. Timed-caption
// formats lose their cue indexes, timestamp lines and protocol headers;
// plain text passes through unchanged apart from outer trimming.
func (l *implLoader) Load(ctx context.Context, path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read transcript: %w", err)
	}

	var content string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		content = stripTimedLines(string(data), nil)
	case ".vtt":
		content = stripTimedLines(string(data), vttProtocolPrefixes)
	case ".txt":
		content = strings.TrimSpace(string(data))
	default:
		return Document{}, fmt.Errorf("unsupported transcript format %q", filepath.Ext(path))
	}

	l.logger.Debug(ctx, "Normalized %s (%d bytes)", path, len(content))

	return Document{Day: Day(path), Path: path, Content: content}, nil
}

// Discover loads every supported file in the transcripts directory.
// Files sharing a stem are combined into one Document for that day.
// Returned Documents are sorted by day identity.
func (l *implLoader) Discover(ctx context.Context) ([]Document, error) {
	names, err := l.listSupported()
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]string)
	var days []string
	for _, name := range names {
		day := Day(name)
		if _, ok := groups[day]; !ok {
			days = append(days, day)
		}
		groups[day] = append(groups[day], name)
	}
	sort.Strings(days)

	var docs []Document
	for _, day := range days {
		docs = append(docs, l.loadGroup(ctx, day, groups[day]))
	}

	return docs, nil
}

// FindByDay locates raw files whose name contains the day selector and
// loads the matched day's full group, so a resumed day sees the same
// combined content a full run would produce. The returned Document
// carries the matched day's full identity, which may be longer than the
// selector.
func (l *implLoader) FindByDay(ctx context.Context, day string) (Document, bool, error) {
	names, err := l.listSupported()
	if err != nil {
		return Document{}, false, err
	}

	var identity string
	distinct := make(map[string]bool)
	for _, name := range names {
		if !strings.Contains(name, day) {
			continue
		}
		if identity == "" {
			identity = Day(name)
		}
		distinct[Day(name)] = true
	}
	if identity == "" {
		return Document{}, false, nil
	}
	if len(distinct) > 1 {
		l.logger.Warn(ctx, "Day %q matches %d distinct days, using %q", day, len(distinct), identity)
	}

	var group []string
	for _, name := range names {
		if Day(name) == identity {
			group = append(group, name)
		}
	}

	return l.loadGroup(ctx, identity, group), true, nil
}

// loadGroup normalizes every file for one day and combines the non-empty
// results in name order, separated by blank lines. Unreadable files are
// skipped with a warning so one bad file cannot take the rest of the day
// with it; a day whose files all fail comes back as an empty Document.
func (l *implLoader) loadGroup(ctx context.Context, day string, names []string) Document {
	var sections []string
	var firstPath string
	for _, name := range names {
		path := filepath.Join(l.dir, name)
		if firstPath == "" {
			firstPath = path
		}

		doc, err := l.Load(ctx, path)
		if err != nil {
			l.logger.Warn(ctx, "Skipping unreadable transcript %s: %v", name, err)
			continue
		}
		if doc.Content == "" {
			l.logger.Warn(ctx, "%s contained no usable text, skipping", name)
			continue
		}
		sections = append(sections, doc.Content)
	}

	if len(names) > 1 {
		l.logger.Debug(ctx, "Combined %d files for day %q", len(names), day)
	}

	return Document{
		Day:     day,
		Path:    firstPath,
		Content: strings.Join(sections, "\n\n"),
	}
}

func (l *implLoader) listSupported() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read transcripts dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !Supported(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// stripTimedLines keeps spoken text only: cue indexes, timestamp lines,
// blank lines and any line starting with a protocol prefix are removed.
func stripTimedLines(raw string, protocolPrefixes []string) string {
	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		s := strings.TrimSpace(line)
		if s == "" || isDigits(s) || strings.Contains(s, "-->") {
			continue
		}
		if hasAnyPrefix(s, protocolPrefixes) {
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, "\n")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
