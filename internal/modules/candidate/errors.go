package candidate

import "errors"

var (
	ErrValidation        = errors.New("all fields are required")
	ErrInvalidExperience = errors.New("invalid experience")
	ErrMissingFile       = errors.New("file is required")
	ErrInvalidFileType   = errors.New("file type is not allowed")
	ErrFileTooLarge      = errors.New("file exceeds maximum allowed size")
)
