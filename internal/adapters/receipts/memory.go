package receipts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
)

// MemoryStore keeps receipts in process memory. It is meant for local
// development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string][]byte
}

// NewMemoryStore creates an empty store whose URLs start with baseURL.
func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{baseURL: baseURL, objects: make(map[string][]byte)}
}

var _ portssvc.ReceiptUploader = (*MemoryStore)(nil)

func (s *MemoryStore) Upload(ctx context.Context, workplaceID string, file portssvc.ReceiptFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file.Content); err != nil {
		return "", fmt.Errorf("failed to read receipt %s: %w", file.Filename, err)
	}

	name := objectName(workplaceID, file.Filename)
	s.mu.Lock()
	s.objects[name] = buf.Bytes()
	s.mu.Unlock()
	return s.baseURL + "/" + name, nil
}

// Get returns a stored receipt by its object name.
func (s *MemoryStore) Get(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.objects[name]
	return b, ok
}
