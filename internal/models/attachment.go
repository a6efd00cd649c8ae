package models

// AttachmentInput is the three-state attachment field carried by wallet and
// transaction drafts:
//
//   - a nil *AttachmentInput leaves the stored reference untouched,
//   - a non-nil zero value clears it,
//   - URL set means an already-stored reference (returned unchanged),
//   - Data set means a pending upload.
type AttachmentInput struct {
	URL         string `json:"url,omitempty"`
	Data        []byte `json:"data,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// IsEmpty reports whether the input carries neither a stored reference nor
// pending bytes, i.e. an explicit clear.
func (a *AttachmentInput) IsEmpty() bool {
	return a.URL == "" && len(a.Data) == 0
}
