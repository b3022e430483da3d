package notify

import (
	"context"
	"log/slog"
	"testing"

	portssvc "github.com/SscSPs/lending_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/lending_ledger_app/internal/middleware"
	"github.com/SscSPs/lending_ledger_app/internal/platform/analytics"
	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePosthog embeds the client interface so only the used methods need bodies.
type fakePosthog struct {
	posthog.Client
	captured []posthog.Capture
}

func (f *fakePosthog) Enqueue(msg posthog.Message) error {
	if c, ok := msg.(posthog.Capture); ok {
		f.captured = append(f.captured, c)
	}
	return nil
}

func (f *fakePosthog) Close() error { return nil }

type recorder struct {
	kinds []portssvc.NotificationKind
}

func (r *recorder) Notify(_ context.Context, _ string, kind portssvc.NotificationKind) {
	r.kinds = append(r.kinds, kind)
}

func TestPosthogNotifier_AttributesUser(t *testing.T) {
	fake := &fakePosthog{}
	n := NewPosthogNotifier(analytics.NewPosthogClientWrapper(fake, slog.Default()))
	ctx := middleware.WithUserID(context.Background(), "user-1")

	n.Notify(ctx, "Transaction created.", portssvc.NotifySuccess)
	n.Notify(context.Background(), "Recompute failed.", portssvc.NotifyError)

	require.Len(t, fake.captured, 2)
	assert.Equal(t, "user-1", fake.captured[0].DistinctId)
	assert.Equal(t, PosthogEvent, fake.captured[0].Event)
	assert.Equal(t, "success", fake.captured[0].Properties["kind"])
	assert.Equal(t, "system", fake.captured[1].DistinctId)
}

func TestPosthogNotifier_DisabledIsNoop(t *testing.T) {
	n := NewPosthogNotifier(analytics.InitializePosthogClient("", "", slog.Default()))
	assert.NotPanics(t, func() {
		n.Notify(context.Background(), "ignored", portssvc.NotifyInfo)
	})
}

func TestMulti_FansOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	Multi{a, LogNotifier{}, b}.Notify(context.Background(), "x", portssvc.NotifyError)

	assert.Equal(t, []portssvc.NotificationKind{portssvc.NotifyError}, a.kinds)
	assert.Equal(t, []portssvc.NotificationKind{portssvc.NotifyError}, b.kinds)
}
