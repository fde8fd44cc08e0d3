package candidate

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"candidateportal/internal/domain"
)

const (
	MaxResumeSize = 5 * 1024 * 1024
	MaxVideoSize  = 200 * 1024 * 1024
)

// AllowedVideoTypes lists the container formats the recorder produces. The
// 90-second duration cap is enforced client-side; here only bytes and type.
var AllowedVideoTypes = map[string]bool{
	"video/webm":       true,
	"video/mp4":        true,
	"video/x-matroska": true,
}

type Service struct {
	repo  CandidateRepository
	files FileStore
}

func NewService(repo CandidateRepository, files FileStore) *Service {
	return &Service{repo: repo, files: files}
}

// CreateWithResume validates the form fields and the resume, stores the
// resume, then creates the candidate row linked to it. Validation happens
// before any durable write; a candidate row never exists without a resume.
func (s *Service) CreateWithResume(ctx context.Context, req CreateCandidateRequest, resume domain.UploadedFile) (*domain.Candidate, error) {
	if strings.TrimSpace(req.FirstName) == "" ||
		strings.TrimSpace(req.LastName) == "" ||
		strings.TrimSpace(req.PositionApplied) == "" ||
		strings.TrimSpace(req.CurrentPosition) == "" ||
		strings.TrimSpace(req.ExperienceYears) == "" {
		return nil, ErrValidation
	}

	exp, err := strconv.ParseFloat(strings.TrimSpace(req.ExperienceYears), 64)
	if err != nil || math.IsNaN(exp) || math.IsInf(exp, 0) || exp < 0 {
		return nil, ErrInvalidExperience
	}

	if resume.SizeBytes == 0 {
		return nil, ErrMissingFile
	}
	if resume.ContentType != "application/pdf" {
		return nil, ErrInvalidFileType
	}
	if resume.SizeBytes > MaxResumeSize {
		return nil, ErrFileTooLarge
	}

	filename := resume.DeclaredName
	if filename == "" {
		filename = "resume.pdf"
	}

	fileID, err := s.files.Put(ctx, domain.ResumeBucket, filename, resume.ContentType,
		map[string]string{"fieldname": "resume"}, resume.Data)
	if err != nil {
		return nil, err
	}

	c := &domain.Candidate{
		ID:              uuid.New().String(),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		PositionApplied: req.PositionApplied,
		CurrentPosition: req.CurrentPosition,
		ExperienceYears: exp,
		ResumeFileID:    fileID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AttachVideo stores a video for an existing candidate and links it. The
// candidate must exist before anything is written. A second upload replaces
// the link (last writer wins); the superseded file becomes orphaned.
func (s *Service) AttachVideo(ctx context.Context, candidateID string, video domain.UploadedFile) (string, error) {
	if _, err := s.repo.GetByID(ctx, candidateID); err != nil {
		return "", err
	}

	if video.SizeBytes == 0 {
		return "", ErrMissingFile
	}
	if !AllowedVideoTypes[video.ContentType] {
		return "", ErrInvalidFileType
	}
	if video.SizeBytes > MaxVideoSize {
		return "", ErrFileTooLarge
	}

	filename := video.DeclaredName
	if filename == "" {
		filename = "video.webm"
	}

	fileID, err := s.files.Put(ctx, domain.VideoBucket, filename, video.ContentType,
		map[string]string{"candidateId": candidateID}, video.Data)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetVideoFileID(ctx, candidateID, fileID); err != nil {
		return "", err
	}
	return fileID, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	return s.repo.GetByID(ctx, id)
}
