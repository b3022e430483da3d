package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/SscSPs/lending_ledger_app/internal/apperrors"
	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
)

// MaxReceiptSize is the largest receipt accepted, in bytes.
const MaxReceiptSize = 5 << 20

var allowedReceiptExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"pdf":  true,
	"webp": true,
}

// ValidateReceipt checks extension and size before anything is uploaded.
func ValidateReceipt(file portssvc.ReceiptFile) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if !allowedReceiptExtensions[ext] {
		return fmt.Errorf("%w: receipt must be one of jpg, jpeg, png, pdf or webp, got %q", apperrors.ErrValidation, ext)
	}
	if file.Size <= 0 {
		return fmt.Errorf("%w: receipt is empty", apperrors.ErrValidation)
	}
	if file.Size > MaxReceiptSize {
		return fmt.Errorf("%w: receipt is %d bytes, limit is 5 MB", apperrors.ErrValidation, file.Size)
	}
	if file.Content == nil {
		return fmt.Errorf("%w: receipt has no content", apperrors.ErrValidation)
	}
	return nil
}
