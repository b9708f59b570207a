package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/report-flow/internal/gateway"
	"github.com/nguyentantai21042004/report-flow/internal/prompts"
)

// synthesizeMaster is the reduce step: it folds every persisted daily
// summary into a single master narrative. Each section is tagged with
// the day identity so the model can attribute topics across the week.
func (p *implPipeline) synthesizeMaster(ctx context.Context) (string, int, error) {
	dailies, err := p.store.LoadDailies(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("load daily summaries: %w", err)
	}
	if len(dailies) == 0 {
		return "", 0, &StageError{Stage: gateway.StageMaster, Kind: ErrEmptyContent,
			Err: fmt.Errorf("no daily summaries available")}
	}

	sections := make([]string, len(dailies))
	for i, d := range dailies {
		sections[i] = fmt.Sprintf("=== %s ===\n%s", d.Day, d.Content)
	}

	p.logger.Info(ctx, "Synthesizing master summary from %d daily summaries", len(dailies))

	master, err := p.generate(ctx, gateway.StageMaster,
		p.prompts.Get(ctx, prompts.NameMaster),
		prompts.MasterUser(strings.Join(sections, "\n\n\n")))
	if err != nil {
		return "", 0, &StageError{Stage: gateway.StageMaster, Kind: ErrGeneration, Err: err}
	}
	return strings.TrimSpace(master), len(dailies), nil
}

// generateFraming produces the opening and closing paragraphs from
// excerpts of the master summary. Framing failures never abort the run;
// the report is rendered without the failed paragraph and the failure
// is surfaced as a warning.
func (p *implPipeline) generateFraming(ctx context.Context, master string) (string, string, []string) {
	var warnings []string

	opening, err := p.generate(ctx, gateway.StageOpening,
		p.prompts.Get(ctx, prompts.NameOpening),
		prompts.OpeningUser(leadingExcerpt(master, 3000)))
	if err != nil {
		p.logger.Warn(ctx, "Opening paragraph failed, report will omit it: %v", err)
		warnings = append(warnings, fmt.Sprintf("opening paragraph: %v", err))
		opening = ""
	}

	closing, err := p.generate(ctx, gateway.StageClosing,
		p.prompts.Get(ctx, prompts.NameClosing),
		prompts.ClosingUser(bracketExcerpt(master, 2000, 1000)))
	if err != nil {
		p.logger.Warn(ctx, "Closing paragraph failed, report will omit it: %v", err)
		warnings = append(warnings, fmt.Sprintf("closing paragraph: %v", err))
		closing = ""
	}

	return strings.TrimSpace(opening), strings.TrimSpace(closing), warnings
}

// leadingExcerpt returns at most n leading runes of s.
func leadingExcerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// bracketExcerpt returns the leading and trailing slices of s joined by
// an ellipsis line, or s itself when it is short enough to keep whole.
func bracketExcerpt(s string, lead, trail int) string {
	runes := []rune(s)
	if len(runes) <= lead+trail {
		return s
	}
	return string(runes[:lead]) + "\n...\n" + string(runes[len(runes)-trail:])
}
