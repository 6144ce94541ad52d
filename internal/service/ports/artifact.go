package ports

import (
	"context"
	"io"
)

type ArtifactStore interface {
	Upload(ctx context.Context, sessionID string, r io.Reader, filename string) (string, error)
	URL(ref string) string
}
