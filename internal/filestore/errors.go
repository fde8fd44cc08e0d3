package filestore

import "errors"

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidRange = errors.New("invalid range")
)
