package ban

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"sr_store_bot/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

type fakeStore struct {
	doc   *storage.UsersDoc
	saves int
}

func (f *fakeStore) LoadUsers(_ context.Context) *storage.UsersDoc { return f.doc }

func (f *fakeStore) SaveUsers(_ context.Context, doc *storage.UsersDoc) {
	f.doc = doc
	f.saves++
}

type notifications struct {
	sent []string
	err  error
}

func (n *notifications) notify(_ context.Context, _ int64, text string) error {
	n.sent = append(n.sent, text)
	return n.err
}

func newService(store *fakeStore, n *notifications, now time.Time) *Service {
	svc := New(store, n.notify, newNoopLogger())
	svc.now = func() time.Time { return now }
	return svc
}

func millis(t time.Time) *int64 {
	ms := t.UnixMilli()
	return &ms
}

func TestCheckAccessAllowed(t *testing.T) {
	now := time.Now()
	store := &fakeStore{doc: &storage.UsersDoc{Users: []*storage.User{
		{ID: 1},
		{ID: 2, Ban: storage.ClearedBan()},
	}}}
	svc := newService(store, &notifications{}, now)

	assert.True(t, svc.CheckAccess(context.Background(), 1).Allowed)
	assert.True(t, svc.CheckAccess(context.Background(), 2).Allowed)
	// незнакомый id тоже проходит
	assert.True(t, svc.CheckAccess(context.Background(), 999).Allowed)
	assert.Zero(t, store.saves)
}

func TestCheckAccessDenied(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{doc: &storage.UsersDoc{Users: []*storage.User{
		{ID: 1, Ban: &storage.Ban{Status: true, Until: millis(now.Add(24 * time.Hour)), Reason: "спам"}},
		{ID: 2, Ban: &storage.Ban{Status: true, Until: nil, Reason: "чит"}},
	}}}
	svc := newService(store, &notifications{}, now)

	timed := svc.CheckAccess(context.Background(), 1)
	assert.False(t, timed.Allowed)
	assert.Contains(t, timed.Message, "спам")
	assert.Contains(t, timed.Message, "до 2026-01-1")

	permanent := svc.CheckAccess(context.Background(), 2)
	assert.False(t, permanent.Allowed)
	assert.Contains(t, permanent.Message, "навсегда")

	assert.Zero(t, store.saves)
}

func TestCheckAccessAutoExpiry(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{doc: &storage.UsersDoc{Users: []*storage.User{
		{ID: 1, Ban: &storage.Ban{Status: true, Until: millis(now.Add(-time.Hour)), Reason: "спам"}},
	}}}
	svc := newService(store, &notifications{}, now)

	// истёкшая блокировка снимается, сохраняется и пропускает тем же вызовом
	d := svc.CheckAccess(context.Background(), 1)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, store.saves)

	ban := store.doc.Find(1).Ban
	require.NotNil(t, ban)
	assert.False(t, ban.Status)
	assert.Nil(t, ban.Until)
	assert.Empty(t, ban.Reason)

	// повторная проверка уже без записи
	assert.True(t, svc.CheckAccess(context.Background(), 1).Allowed)
	assert.Equal(t, 1, store.saves)
}

func TestApplyTimed(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{doc: &storage.UsersDoc{Users: []*storage.User{{ID: 5, Login: "bob"}}}}
	n := &notifications{}
	svc := newService(store, n, now)

	user, err := svc.Apply(context.Background(), "@bob", 3, "спам", storage.BanIssuer{ID: 1, Login: "root"})
	require.NoError(t, err)
	assert.Equal(t, 1, store.saves)

	ban := user.Ban
	require.NotNil(t, ban)
	assert.True(t, ban.Status)
	require.NotNil(t, ban.Until)
	assert.Equal(t, now.Add(3*24*time.Hour).UnixMilli(), *ban.Until)
	assert.Equal(t, "спам", ban.Reason)
	require.NotNil(t, ban.By)
	assert.Equal(t, int64(1), ban.By.ID)

	require.Len(t, n.sent, 1)
	assert.Contains(t, n.sent[0], "3 дней")
	assert.Contains(t, n.sent[0], "спам")
}

func TestApplyPermanent(t *testing.T) {
	store := &fakeStore{doc: &storage.UsersDoc{Users: []*storage.User{{ID: 5, Login: "bob"}}}}
	n := &notifications{}
	svc := newService(store, n, time.Now())

	user, err := svc.Apply(context.Background(), "5", -1, "чит", storage.BanIssuer{ID: 1})
	require.NoError(t, err)
	assert.True(t, user.Ban.Status)
	assert.Nil(t, user.Ban.Until)

	require.Len(t, n.sent, 1)
	assert.Contains(t, n.sent[0], "навсегда")
}

func TestApplyNotificationFailureDoesNotRevert(t *testing.T) {
	store := &fakeStore{doc: &storage.UsersDoc{Users: []*storage.User{{ID: 5, Login: "bob"}}}}
	n := &notifications{err: errors.New("bot was blocked by the user")}
	svc := newService(store, n, time.Now())

	user, err := svc.Apply(context.Background(), "@bob", 1, "спам", storage.BanIssuer{ID: 1})
	require.NoError(t, err)
	assert.True(t, user.Ban.Status)
	assert.Equal(t, 1, store.saves)
}

func TestApplyUserNotFound(t *testing.T) {
	store := &fakeStore{doc: &storage.UsersDoc{Users: []*storage.User{{ID: 5, Login: "bob"}}}}
	svc := newService(store, &notifications{}, time.Now())

	_, err := svc.Apply(context.Background(), "@nobody", 1, "спам", storage.BanIssuer{ID: 1})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Zero(t, store.saves)
}

func TestLift(t *testing.T) {
	store := &fakeStore{doc: &storage.UsersDoc{Users: []*storage.User{
		{ID: 5, Login: "bob", Ban: &storage.Ban{Status: true, Reason: "спам"}},
	}}}
	n := &notifications{}
	svc := newService(store, n, time.Now())

	user, err := svc.Lift(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, user.Ban.Status)
	assert.Equal(t, 1, store.saves)
	require.Len(t, n.sent, 1)
}

func TestLiftNotBanned(t *testing.T) {
	store := &fakeStore{doc: &storage.UsersDoc{Users: []*storage.User{
		{ID: 5, Login: "bob"},
		{ID: 6, Login: "ok", Ban: storage.ClearedBan()},
	}}}
	svc := newService(store, &notifications{}, time.Now())

	_, err := svc.Lift(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotBanned)
	_, err = svc.Lift(context.Background(), 6)
	assert.ErrorIs(t, err, ErrNotBanned)
	_, err = svc.Lift(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotBanned)
	assert.Zero(t, store.saves)
}

func TestListBanned(t *testing.T) {
	store := &fakeStore{doc: &storage.UsersDoc{Users: []*storage.User{
		{ID: 1, Ban: &storage.Ban{Status: true, Reason: "спам"}},
		{ID: 2},
		{ID: 3, Ban: storage.ClearedBan()},
		{ID: 4, Ban: &storage.Ban{Status: true, Reason: "чит"}},
	}}}
	svc := newService(store, &notifications{}, time.Now())

	banned := svc.ListBanned(context.Background())
	require.Len(t, banned, 2)
	assert.Equal(t, int64(1), banned[0].ID)
	assert.Equal(t, int64(4), banned[1].ID)
}

func TestPeriodText(t *testing.T) {
	assert.Equal(t, "навсегда", PeriodText(&storage.Ban{Status: true}))

	until := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	got := PeriodText(&storage.Ban{Status: true, Until: &until})
	assert.Contains(t, got, "до 2026-")
}

func TestDurationText(t *testing.T) {
	assert.Equal(t, "навсегда", DurationText(-1))
	assert.Equal(t, "7 дней", DurationText(7))
}
