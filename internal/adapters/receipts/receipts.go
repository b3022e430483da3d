// Package receipts stores uploaded transaction receipts.
package receipts

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// objectName builds a unique, workplace scoped object name that keeps the
// original extension.
func objectName(workplaceID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join("receipts", workplaceID, uuid.NewString()+ext)
}
