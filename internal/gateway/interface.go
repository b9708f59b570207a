package gateway

import (
	"context"
	"errors"
)

// Pipeline stages a Gateway call can be routed for.
const (
	StageDaily    = "daily"
	StageCompress = "compress"
	StageMaster   = "master"
	StageOpening  = "opening"
	StageClosing  = "closing"
)

// ErrConfiguration marks startup failures such as a missing credential
// or an unresolvable route. These are always detected before any
// document is touched.
var ErrConfiguration = errors.New("configuration error")

// Backend is one bound text-generation endpoint. Generate sends a
// two-role (system, user) exchange and returns the response text.
type Backend interface {
	Name() string
	Model() string
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Gateway routes each stage's calls to its configured Backend.
type Gateway interface {
	Generate(ctx context.Context, stage, systemPrompt, userPrompt string) (string, error)
	Routes() map[string]string
}
