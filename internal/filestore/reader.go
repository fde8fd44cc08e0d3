package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"

	"candidateportal/internal/domain"
)

// chunkReader streams an object one chunk row at a time, in sequence order.
// It is a forward-only, non-restartable reader: once drained or closed it
// cannot be rewound.
type chunkReader struct {
	ctx       context.Context
	db        *gorm.DB
	bucket    string
	fileID    string
	seq       int   // next chunk to fetch
	lastSeq   int   // last chunk overlapping the range
	skip      int   // bytes to drop from the front of the first chunk
	remaining int64 // bytes left to emit
	buf       []byte
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.remaining <= 0 && len(r.buf) == 0 {
		return 0, io.EOF
	}
	if len(r.buf) == 0 {
		if r.seq > r.lastSeq {
			// Descriptor promised more bytes than the chunks hold.
			return 0, fmt.Errorf("file %s/%s: %w", r.bucket, r.fileID, io.ErrUnexpectedEOF)
		}
		var chunk domain.FileChunk
		err := r.db.WithContext(r.ctx).
			Where("bucket = ? AND file_id = ? AND seq = ?", r.bucket, r.fileID, r.seq).
			First(&chunk).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("file %s/%s: chunk %d missing: %w", r.bucket, r.fileID, r.seq, io.ErrUnexpectedEOF)
		}
		if err != nil {
			return 0, fmt.Errorf("read chunk %d of %s/%s: %w", r.seq, r.bucket, r.fileID, err)
		}
		r.seq++

		b := chunk.Data
		if r.skip > 0 {
			if r.skip >= len(b) {
				return 0, fmt.Errorf("file %s/%s: chunk %d shorter than offset: %w", r.bucket, r.fileID, r.seq-1, io.ErrUnexpectedEOF)
			}
			b = b[r.skip:]
			r.skip = 0
		}
		if int64(len(b)) > r.remaining {
			b = b[:r.remaining]
		}
		r.buf = b
	}

	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	r.remaining -= int64(n)
	return n, nil
}

// Close abandons the stream. Safe to call mid-read (client disconnect).
func (r *chunkReader) Close() error {
	r.remaining = 0
	r.buf = nil
	return nil
}
