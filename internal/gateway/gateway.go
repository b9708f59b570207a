package gateway

import (
	"context"
	"fmt"
)

func (g *implGateway) Generate(ctx context.Context, stage, systemPrompt, userPrompt string) (string, error) {
	b, ok := g.routes[stage]
	if !ok {
		return "", fmt.Errorf("%w: no backend routed for stage %q", ErrConfiguration, stage)
	}

	g.logger.Debug(ctx, "Calling %s (%s) for stage %s, %d prompt bytes",
		b.Name(), b.Model(), stage, len(systemPrompt)+len(userPrompt))

	text, err := b.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("backend %s: %w", b.Name(), err)
	}
	return text, nil
}

// Routes describes the stage routing for startup logging.
func (g *implGateway) Routes() map[string]string {
	out := make(map[string]string, len(g.routes))
	for stage, b := range g.routes {
		out[stage] = fmt.Sprintf("%s (%s)", b.Name(), b.Model())
	}
	return out
}
