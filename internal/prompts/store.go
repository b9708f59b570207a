package prompts

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/report-flow/internal/logger"
)

// Store resolves stage prompts, preferring operator override files over
// the built-in defaults.
type Store struct {
	dir    string
	logger logger.Logger
}

// NewStore creates a prompt store reading overrides from dir. An empty
// dir disables overrides.
func NewStore(dir string, log logger.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: log,
	}
}

// Get returns the prompt text for name. When <dir>/<name>.txt exists and
// is non-empty it wins; otherwise the built-in default is returned. An
// unknown name yields an empty string.
func (s *Store) Get(ctx context.Context, name string) string {
	if s.dir != "" {
		path := filepath.Join(s.dir, name+".txt")
		data, err := os.ReadFile(path)
		if err == nil {
			text := strings.TrimSpace(string(data))
			if text != "" {
				s.logger.Info(ctx, "Using prompt override: %s", path)
				return text
			}
			s.logger.Warn(ctx, "Prompt override %s is empty, using built-in default", path)
		}
	}
	return defaults[name]
}
