package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"candidateportal/internal/domain"
)

// DefaultChunkSize is 255 KiB, the GridFS default the original store used.
const DefaultChunkSize = 255 * 1024

// Store is a bucketed, append-only chunked object store over a relational
// database. Objects are split into fixed-size chunk rows; the descriptor row
// is written last and is the only thing lookups consult, so a partially
// written object is never visible.
type Store struct {
	db        *gorm.DB
	chunkSize int
}

func NewStore(db *gorm.DB, chunkSize int) *Store {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Store{db: db, chunkSize: chunkSize}
}

// Put stores data under a fresh file ID in the given bucket. Chunks are
// inserted in sequence order, the descriptor after the last chunk. If any
// insert fails the descriptor is never written and the caller must treat the
// object as absent; already-inserted chunks are orphaned, not discoverable.
func (s *Store) Put(ctx context.Context, bucket, filename, contentType string, metadata map[string]string, data []byte) (string, error) {
	fileID := uuid.New().String()
	now := time.Now().UTC()

	seq := 0
	for off := 0; off < len(data); off += s.chunkSize {
		end := off + s.chunkSize
		if end > len(data) {
			end = len(data)
		}
		chunk := domain.FileChunk{
			Bucket:    bucket,
			FileID:    fileID,
			Seq:       seq,
			Data:      data[off:end],
			CreatedAt: now,
		}
		if err := s.db.WithContext(ctx).Create(&chunk).Error; err != nil {
			return "", fmt.Errorf("write chunk %d of %s/%s: %w", seq, bucket, fileID, err)
		}
		seq++
	}

	desc := domain.FileDescriptor{
		ID:          fileID,
		Bucket:      bucket,
		Filename:    filename,
		ContentType: contentType,
		Length:      int64(len(data)),
		ChunkSize:   s.chunkSize,
		ChunkCount:  seq,
		Metadata:    metadata,
		CreatedAt:   now,
	}
	if err := s.db.WithContext(ctx).Create(&desc).Error; err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return "", fmt.Errorf("duplicate file id %s: %w", fileID, err)
		}
		return "", fmt.Errorf("commit descriptor %s/%s: %w", bucket, fileID, err)
	}

	return fileID, nil
}

// Describe returns the committed descriptor for a file, or ErrFileNotFound.
func (s *Store) Describe(ctx context.Context, bucket, fileID string) (*domain.FileDescriptor, error) {
	var desc domain.FileDescriptor
	err := s.db.WithContext(ctx).
		Where("bucket = ? AND id = ?", bucket, fileID).
		First(&desc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("describe %s/%s: %w", bucket, fileID, err)
	}
	return &desc, nil
}

// Exists reports whether a committed descriptor exists for the file.
func (s *Store) Exists(ctx context.Context, bucket, fileID string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&domain.FileDescriptor{}).
		Where("bucket = ? AND id = ?", bucket, fileID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("lookup %s/%s: %w", bucket, fileID, err)
	}
	return n > 0, nil
}

// Open returns a reader over the whole object. Chunks are fetched lazily,
// one at a time, as the reader is drained.
func (s *Store) Open(ctx context.Context, bucket, fileID string) (io.ReadCloser, error) {
	desc, err := s.Describe(ctx, bucket, fileID)
	if err != nil {
		return nil, err
	}
	if desc.Length == 0 {
		return &chunkReader{remaining: 0}, nil
	}
	return s.OpenRange(ctx, bucket, fileID, 0, desc.Length-1)
}

// OpenRange returns a reader over bytes [start, end] of the object, both
// inclusive. The first and last overlapping chunks are located by offset
// arithmetic and their payloads trimmed; everything in between streams whole.
func (s *Store) OpenRange(ctx context.Context, bucket, fileID string, start, end int64) (io.ReadCloser, error) {
	desc, err := s.Describe(ctx, bucket, fileID)
	if err != nil {
		return nil, err
	}
	if start < 0 || start > end || start >= desc.Length || end >= desc.Length {
		return nil, ErrInvalidRange
	}
	return &chunkReader{
		ctx:       ctx,
		db:        s.db,
		bucket:    bucket,
		fileID:    fileID,
		seq:       int(start / int64(desc.ChunkSize)),
		lastSeq:   int(end / int64(desc.ChunkSize)),
		skip:      int(start % int64(desc.ChunkSize)),
		remaining: end - start + 1,
	}, nil
}
