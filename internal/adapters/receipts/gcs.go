package receipts

import (
	"context"
	"fmt"
	"net/url"
	"time"

	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/middleware"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/storage/v1"
)

// ObjectInserter stores one object. It is satisfied by the GCS JSON API
// through gcsInserter and replaced in tests.
type ObjectInserter interface {
	Insert(ctx context.Context, bucket string, object *storage.Object, file portssvc.ReceiptFile) (*storage.Object, error)
}

type gcsInserter struct {
	svc *storage.Service
}

func (g gcsInserter) Insert(ctx context.Context, bucket string, object *storage.Object, file portssvc.ReceiptFile) (*storage.Object, error) {
	return g.svc.Objects.Insert(bucket, object).Media(file.Content).Context(ctx).Do()
}

// GCSStore uploads receipts to a Google Cloud Storage bucket.
type GCSStore struct {
	inserter ObjectInserter
	bucket   string
	cacheTTL time.Duration
}

// NewGCSStore authenticates with application default credentials and
// returns a store writing to bucket.
func NewGCSStore(ctx context.Context, bucket string, cacheTTL time.Duration) (*GCSStore, error) {
	ts, err := google.DefaultTokenSource(ctx, storage.DevstorageReadWriteScope)
	if err != nil {
		return nil, fmt.Errorf("failed to find google credentials: %w", err)
	}
	svc, err := storage.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return NewGCSStoreWithInserter(gcsInserter{svc: svc}, bucket, cacheTTL), nil
}

// NewGCSStoreWithInserter builds a store on a custom inserter.
func NewGCSStoreWithInserter(inserter ObjectInserter, bucket string, cacheTTL time.Duration) *GCSStore {
	return &GCSStore{inserter: inserter, bucket: bucket, cacheTTL: cacheTTL}
}

var _ portssvc.ReceiptUploader = (*GCSStore)(nil)

func (s *GCSStore) Upload(ctx context.Context, workplaceID string, file portssvc.ReceiptFile) (string, error) {
	object := &storage.Object{
		Name:         objectName(workplaceID, file.Filename),
		ContentType:  file.ContentType,
		CacheControl: fmt.Sprintf("private, max-age=%d", int(s.cacheTTL.Seconds())),
		Metadata: map[string]string{
			"workplace_id":      workplaceID,
			"original_filename": file.Filename,
		},
	}

	stored, err := s.inserter.Insert(ctx, s.bucket, object, file)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", object.Name, s.bucket, err)
	}

	middleware.GetLoggerFromCtx(ctx).DebugContext(ctx, "Receipt stored",
		"bucket", s.bucket, "object", stored.Name, "size", stored.Size)
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, (&url.URL{Path: stored.Name}).EscapedPath()), nil
}
