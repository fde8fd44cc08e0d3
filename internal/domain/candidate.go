package domain

import (
	"errors"
	"time"
)

var ErrCandidateNotFound = errors.New("candidate not found")

// Candidate is the applicant record. A candidate is only ever created with a
// resume already stored, so ResumeFileID is never empty in a persisted row.
// VideoFileID starts empty and is linked once the applicant records a video.
type Candidate struct {
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	FirstName       string    `gorm:"column:first_name" json:"firstName"`
	LastName        string    `gorm:"column:last_name" json:"lastName"`
	PositionApplied string    `gorm:"column:position_applied" json:"positionApplied"`
	CurrentPosition string    `gorm:"column:current_position" json:"currentPosition"`
	ExperienceYears float64   `gorm:"column:experience_years" json:"experienceYears"`
	ResumeFileID    string    `gorm:"column:resume_file_id" json:"resumeFileId"`
	VideoFileID     *string   `gorm:"column:video_file_id" json:"videoFileId,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Candidate) TableName() string { return "candidates" }
