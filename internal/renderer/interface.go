package renderer

import (
	"context"
	"time"
)

// Report is the assembled content handed to the renderer. Opening and
// Closing may be empty when framing generation was degraded; the body
// is always present.
type Report struct {
	Title   string
	Date    time.Time
	Opening string
	Body    string
	Closing string
	Author  string
}

// Renderer lays a finished report out as a document file.
type Renderer interface {
	Render(ctx context.Context, report Report, outputPath string) error
}
