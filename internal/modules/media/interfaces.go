package media

import (
	"context"
	"io"

	"candidateportal/internal/domain"
)

// ObjectStore is the read side of the chunked object store: descriptor
// lookup for header construction, then lazy byte streams for the body.
type ObjectStore interface {
	Describe(ctx context.Context, bucket, fileID string) (*domain.FileDescriptor, error)
	Open(ctx context.Context, bucket, fileID string) (io.ReadCloser, error)
	OpenRange(ctx context.Context, bucket, fileID string, start, end int64) (io.ReadCloser, error)
}
