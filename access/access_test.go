package access

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sr_store_bot/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

type storeMock struct{ mock.Mock }

func (m *storeMock) LoadAdmins(ctx context.Context) *storage.AdminsDoc {
	args := m.Called(ctx)
	return args.Get(0).(*storage.AdminsDoc)
}

func (m *storeMock) SaveAdmins(ctx context.Context, doc *storage.AdminsDoc) {
	m.Called(ctx, doc)
}

func adminsDoc(admins ...*storage.Admin) *storage.AdminsDoc {
	return &storage.AdminsDoc{Admins: admins}
}

func TestLevel(t *testing.T) {
	store := &storeMock{}
	store.On("LoadAdmins", mock.Anything).Return(adminsDoc(
		&storage.Admin{ID: 1, Level: 5, Nickname: "root"},
		&storage.Admin{ID: 2, Level: 3, Nickname: "mod"},
	))
	svc := New(store, newNoopLogger())

	assert.Equal(t, 5, svc.Level(context.Background(), 1))
	assert.Equal(t, 3, svc.Level(context.Background(), 2))
	assert.Equal(t, 0, svc.Level(context.Background(), 999))
}

func TestHasLevel(t *testing.T) {
	store := &storeMock{}
	store.On("LoadAdmins", mock.Anything).Return(adminsDoc(
		&storage.Admin{ID: 2, Level: 2, Nickname: "junior"},
		&storage.Admin{ID: 3, Level: 3, Nickname: "senior"},
	))
	svc := New(store, newNoopLogger())

	// уровень 2 не проходит гейт уровня 3, запись не трогается
	assert.False(t, svc.HasLevel(context.Background(), 2, 3))
	assert.True(t, svc.HasLevel(context.Background(), 3, 3))
	assert.False(t, svc.HasLevel(context.Background(), 999, 1))
	store.AssertNotCalled(t, "SaveAdmins", mock.Anything, mock.Anything)
}

func TestSetAdminCreates(t *testing.T) {
	store := &storeMock{}
	store.On("LoadAdmins", mock.Anything).Return(adminsDoc())
	var saved *storage.AdminsDoc
	store.On("SaveAdmins", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*storage.AdminsDoc)
	})
	svc := New(store, newNoopLogger())

	require.NoError(t, svc.SetAdmin(context.Background(), 7, 4, "боец"))
	require.NotNil(t, saved)
	require.Len(t, saved.Admins, 1)
	assert.Equal(t, &storage.Admin{ID: 7, Level: 4, Nickname: "боец"}, saved.Admins[0])
}

func TestSetAdminUpdatesInPlace(t *testing.T) {
	doc := adminsDoc(&storage.Admin{ID: 7, Level: 2, Nickname: "старый"})
	store := &storeMock{}
	store.On("LoadAdmins", mock.Anything).Return(doc)
	store.On("SaveAdmins", mock.Anything, mock.Anything)
	svc := New(store, newNoopLogger())

	require.NoError(t, svc.SetAdmin(context.Background(), 7, 5, "новый"))
	require.NoError(t, svc.SetAdmin(context.Background(), 7, 3, "ещё новее"))

	// дубликатов нет, запись обновлена на месте
	require.Len(t, doc.Admins, 1)
	assert.Equal(t, 3, doc.Admins[0].Level)
	assert.Equal(t, "ещё новее", doc.Admins[0].Nickname)
}

func TestSetAdminInvalidLevel(t *testing.T) {
	store := &storeMock{}
	svc := New(store, newNoopLogger())

	assert.ErrorIs(t, svc.SetAdmin(context.Background(), 7, 0, "x"), ErrInvalidLevel)
	assert.ErrorIs(t, svc.SetAdmin(context.Background(), 7, 6, "x"), ErrInvalidLevel)
	store.AssertNotCalled(t, "LoadAdmins", mock.Anything)
	store.AssertNotCalled(t, "SaveAdmins", mock.Anything, mock.Anything)
}

func TestDeleteAdmin(t *testing.T) {
	doc := adminsDoc(
		&storage.Admin{ID: 1, Level: 5, Nickname: "root"},
		&storage.Admin{ID: 2, Level: 3, Nickname: "mod"},
	)
	store := &storeMock{}
	store.On("LoadAdmins", mock.Anything).Return(doc)
	store.On("SaveAdmins", mock.Anything, mock.Anything)
	svc := New(store, newNoopLogger())

	require.NoError(t, svc.DeleteAdmin(context.Background(), 2))
	require.Len(t, doc.Admins, 1)
	assert.Equal(t, int64(1), doc.Admins[0].ID)
}

func TestDeleteAdminNotFound(t *testing.T) {
	store := &storeMock{}
	store.On("LoadAdmins", mock.Anything).Return(adminsDoc(
		&storage.Admin{ID: 1, Level: 5, Nickname: "root"},
	))
	svc := New(store, newNoopLogger())

	assert.ErrorIs(t, svc.DeleteAdmin(context.Background(), 404), ErrAdminNotFound)
	store.AssertNotCalled(t, "SaveAdmins", mock.Anything, mock.Anything)
}
