package attachment

import "errors"

// Service errors
var (
	ErrEmptyAttachment = errors.New("attachment has no stored reference and no data")
	ErrUploadFailed    = errors.New("attachment upload failed")
)
