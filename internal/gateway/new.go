package gateway

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/report-flow/internal/config"
	"github.com/nguyentantai21042004/report-flow/internal/logger"
)

type implGateway struct {
	routes map[string]Backend
	logger logger.Logger
}

// New builds every configured backend and the stage routing table.
// Credential presence is checked here, once, so a run that cannot
// complete fails before any document work is started.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Gateway, error) {
	backends := make(map[string]Backend, len(cfg.Backends))
	for name, bc := range cfg.Backends {
		key := os.Getenv(bc.APIKeyEnv)
		if key == "" {
			return nil, fmt.Errorf("%w: backend %q: environment variable %s is not set",
				ErrConfiguration, name, bc.APIKeyEnv)
		}

		switch bc.Provider {
		case config.ProviderOpenAI:
			backends[name] = newOpenAIBackend(name, bc.Model, key, bc.BaseURL)
		case config.ProviderGemini:
			b, err := newGeminiBackend(ctx, name, bc.Model, key)
			if err != nil {
				return nil, fmt.Errorf("backend %q: %w", name, err)
			}
			backends[name] = b
		default:
			return nil, fmt.Errorf("%w: backend %q: unknown provider %q",
				ErrConfiguration, name, bc.Provider)
		}
	}

	routes := make(map[string]Backend, 5)
	for stage, backendName := range map[string]string{
		StageDaily:    cfg.Routing.Daily,
		StageCompress: cfg.Routing.Compress,
		StageMaster:   cfg.Routing.Master,
		StageOpening:  cfg.Routing.Opening,
		StageClosing:  cfg.Routing.Closing,
	} {
		b, ok := backends[backendName]
		if !ok {
			return nil, fmt.Errorf("%w: stage %q routed to unknown backend %q",
				ErrConfiguration, stage, backendName)
		}
		routes[stage] = b
	}

	return &implGateway{
		routes: routes,
		logger: log,
	}, nil
}
