package domain

import "time"

// Logical buckets of the object store. Each bucket carries its own upload
// policy (content types, max size) enforced by the upload pipeline.
const (
	ResumeBucket = "resumes"
	VideoBucket  = "videos"
)

// FileDescriptor is the committed metadata record for one stored object.
// It is written after every chunk of the object is durable, so a descriptor
// row is the unit of visibility: no descriptor, no file.
type FileDescriptor struct {
	ID          string            `gorm:"column:id;primaryKey" json:"id"`
	Bucket      string            `gorm:"column:bucket;size:32;not null" json:"bucket"`
	Filename    string            `gorm:"column:filename" json:"filename"`
	ContentType string            `gorm:"column:content_type" json:"contentType"`
	Length      int64             `gorm:"column:length;not null" json:"length"`
	ChunkSize   int               `gorm:"column:chunk_size;not null" json:"chunkSize"`
	ChunkCount  int               `gorm:"column:chunk_count;not null" json:"chunkCount"`
	Metadata    map[string]string `gorm:"column:metadata;serializer:json" json:"metadata,omitempty"`
	CreatedAt   time.Time         `gorm:"column:created_at" json:"createdAt"`
}

func (FileDescriptor) TableName() string { return "file_descriptors" }

// FileChunk holds one bounded fragment of an object's bytes. Chunks are
// write-once; a chunk row without a matching descriptor is orphaned garbage
// and is never served.
type FileChunk struct {
	ID        uint64    `gorm:"column:id;primaryKey"`
	Bucket    string    `gorm:"column:bucket;size:32;not null;uniqueIndex:idx_bucket_file_seq"`
	FileID    string    `gorm:"column:file_id;size:36;not null;uniqueIndex:idx_bucket_file_seq"`
	Seq       int       `gorm:"column:seq;not null;uniqueIndex:idx_bucket_file_seq"`
	Data      []byte    `gorm:"column:data;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (FileChunk) TableName() string { return "file_chunks" }

// UploadedFile is the boundary value for an inbound multipart file: the
// handler converts the framework's file header into this before anything
// else sees it.
type UploadedFile struct {
	ContentType  string
	DeclaredName string
	SizeBytes    int64
	Data         []byte
}
