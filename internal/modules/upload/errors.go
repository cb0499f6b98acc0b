package upload

import "errors"

var (
	ErrEmptyFile        = errors.New("file is empty")
	ErrFileTooLarge     = errors.New("file is too large")
	ErrInvalidMimeType  = errors.New("file type is not allowed")
	ErrStoreUnavailable = errors.New("image storage is not configured")
)
