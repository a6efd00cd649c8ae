// Package attachment resolves receipt and icon image references. A
// reference is either an already-stored URL, returned unchanged, or pending
// bytes that get uploaded to the attachment store first.
package attachment

import (
	"context"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// Destination folders inside the attachment store.
const (
	FolderWallets      = "wallets"
	FolderTransactions = "transactions"
	FolderUsers        = "users"
)

// Resolver turns an AttachmentInput into a stored URL.
type Resolver interface {
	Resolve(ctx context.Context, in *models.AttachmentInput, folder string) (string, error)
}

// Uploader is the transport to the attachment store.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type service struct {
	uploader Uploader
}

func NewResolver(uploader Uploader) Resolver {
	if uploader == nil {
		panic("uploader is required")
	}
	return &service{uploader: uploader}
}

// Resolve is idempotent for stored references: an input that already
// carries a URL comes back unchanged with no upload call.
func (s *service) Resolve(ctx context.Context, in *models.AttachmentInput, folder string) (string, error) {
	if in == nil || in.IsEmpty() {
		return "", ErrEmptyAttachment
	}
	if in.URL != "" {
		return in.URL, nil
	}

	key := fmt.Sprintf("%s/%s", folder, uuid.NewString())
	url, err := s.uploader.Upload(ctx, key, in.ContentType, in.Data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return url, nil
}
