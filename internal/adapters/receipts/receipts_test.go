package receipts

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/storage/v1"
)

type fakeInserter struct {
	bucket string
	object *storage.Object
	body   string
	err    error
}

func (f *fakeInserter) Insert(_ context.Context, bucket string, object *storage.Object, file portssvc.ReceiptFile) (*storage.Object, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(file.Content)
	f.bucket, f.object, f.body = bucket, object, string(b)
	return &storage.Object{Name: object.Name, Size: uint64(len(b))}, nil
}

func receipt(name, body string) portssvc.ReceiptFile {
	return portssvc.ReceiptFile{Filename: name, ContentType: "application/pdf", Size: int64(len(body)), Content: strings.NewReader(body)}
}

func TestMemoryStore_Upload(t *testing.T) {
	store := NewMemoryStore("memory://local")

	url, err := store.Upload(context.Background(), "wp-1", receipt("Scan.PDF", "%PDF-1.7"))

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "memory://local/receipts/wp-1/"))
	assert.True(t, strings.HasSuffix(url, ".pdf"))

	body, ok := store.Get(strings.TrimPrefix(url, "memory://local/"))
	require.True(t, ok)
	assert.Equal(t, "%PDF-1.7", string(body))
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryStore("memory://local").Upload(ctx, "wp-1", receipt("a.png", "x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGCSStore_Upload(t *testing.T) {
	fake := &fakeInserter{}
	store := NewGCSStoreWithInserter(fake, "receipts-bucket", time.Hour)

	url, err := store.Upload(context.Background(), "wp-1", receipt("r.pdf", "content"))

	require.NoError(t, err)
	assert.Equal(t, "receipts-bucket", fake.bucket)
	assert.Equal(t, "content", fake.body)
	assert.Equal(t, "private, max-age=3600", fake.object.CacheControl)
	assert.Equal(t, "wp-1", fake.object.Metadata["workplace_id"])
	assert.Equal(t, "https://storage.googleapis.com/receipts-bucket/"+fake.object.Name, url)
}

func TestGCSStore_UploadError(t *testing.T) {
	store := NewGCSStoreWithInserter(&fakeInserter{err: errors.New("403")}, "b", time.Hour)

	_, err := store.Upload(context.Background(), "wp-1", receipt("r.pdf", "content"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket b")
}
