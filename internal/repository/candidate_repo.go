package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"candidateportal/internal/domain"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) Create(ctx context.Context, c *domain.Candidate) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create candidate: %w", err)
	}
	return nil
}

func (r *CandidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	var c domain.Candidate
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCandidateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get candidate %s: %w", id, err)
	}
	return &c, nil
}

// SetVideoFileID links a stored video to the candidate. The column is written
// unconditionally: a later upload for the same candidate wins.
func (r *CandidateRepository) SetVideoFileID(ctx context.Context, id, fileID string) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Candidate{}).
		Where("id = ?", id).
		Update("video_file_id", fileID)
	if res.Error != nil {
		return fmt.Errorf("set video for candidate %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCandidateNotFound
	}
	return nil
}
