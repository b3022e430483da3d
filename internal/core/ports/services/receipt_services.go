package services

import (
	"context"
	"io"
)

// ReceiptFile is an uploaded receipt before it is stored.
type ReceiptFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ReceiptUploader stores a receipt and returns a URL for it.
type ReceiptUploader interface {
	Upload(ctx context.Context, workplaceID string, file ReceiptFile) (string, error)
}
