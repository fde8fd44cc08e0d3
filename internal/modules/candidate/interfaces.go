package candidate

import (
	"context"

	"candidateportal/internal/domain"
)

// CandidateRepository is the candidate record store. It exclusively owns the
// Candidate entity; this module only requests mutation through it.
type CandidateRepository interface {
	Create(ctx context.Context, c *domain.Candidate) error
	GetByID(ctx context.Context, id string) (*domain.Candidate, error)
	SetVideoFileID(ctx context.Context, id, fileID string) error
}

// FileStore is the write side of the chunked object store.
type FileStore interface {
	Put(ctx context.Context, bucket, filename, contentType string, metadata map[string]string, data []byte) (string, error)
}
