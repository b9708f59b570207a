package transcript

import "context"

// Document is one source transcript normalized to plain text. Day is the
// stable identity derived from the originating file name (its stem).
type Document struct {
	Day     string
	Path    string
	Content string
}

// Loader produces normalized Documents from raw caption and text files.
type Loader interface {
	Load(ctx context.Context, path string) (Document, error)
	Discover(ctx context.Context) ([]Document, error)
	FindByDay(ctx context.Context, day string) (Document, bool, error)
}
