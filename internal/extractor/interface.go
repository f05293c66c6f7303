package extractor

import "context"

// Extractor pulls text out of one stored file.
// An empty string with a nil error means the file holds no text.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}
