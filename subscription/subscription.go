// Package subscription — учёт подписок: остаток дней, выдача и
// очистка слотов, список активных.
package subscription

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"sr_store_bot/storage"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrBadSlot      = errors.New("unknown subscription slot")
)

// RemainingDays считает остаток дней по слоту на момент now.
// Пустой слот, нулевой срок и нечитаемая дата начала дают 0,
// остаток не бывает отрицательным.
func RemainingDays(slot storage.Slot, now time.Time) int {
	sub := slot.Sub
	if sub == nil || sub.Days <= 0 || sub.Start == "" {
		return 0
	}
	start, err := time.Parse(storage.DateLayout, sub.Start)
	if err != nil {
		return 0
	}
	passed := int(math.Floor(now.Sub(start).Hours() / 24))
	if remaining := sub.Days - passed; remaining > 0 {
		return remaining
	}
	return 0
}

// Store — доступ к документу пользователей.
type Store interface {
	LoadUsers(ctx context.Context) *storage.UsersDoc
	SaveUsers(ctx context.Context, doc *storage.UsersDoc)
}

// Service реализует операции над подписками.
type Service struct {
	store Store
	log   *slog.Logger
	now   func() time.Time
}

// New создаёт сервис подписок.
func New(store Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log, now: time.Now}
}

// Grant выдаёт подписку: слот перезаписывается целиком новой записью
// с сегодняшней датой начала и отметкой, кто выдал.
func (s *Service) Grant(ctx context.Context, token, slotName string, days int, issuedBy string) (*storage.User, error) {
	doc := s.store.LoadUsers(ctx)
	id, ok := storage.ResolveUserID(token, doc.Users)
	if !ok {
		return nil, ErrUserNotFound
	}
	user := doc.Find(id)
	if user == nil {
		return nil, ErrUserNotFound
	}
	slot := user.Slot(slotName)
	if slot == nil {
		return nil, ErrBadSlot
	}

	slot.Sub = &storage.Subscription{
		Days:     days,
		Start:    s.now().Format(storage.DateLayout),
		IssuedBy: issuedBy,
	}
	s.store.SaveUsers(ctx, doc)

	s.log.Info("подписка выдана",
		slog.Int64("user", user.ID),
		slog.String("slot", slotName),
		slog.Int("days", days),
		slog.String("by", issuedBy))
	return user, nil
}

// Clear сбрасывает слот в пустое состояние.
func (s *Service) Clear(ctx context.Context, userID int64, slotName string) (*storage.User, error) {
	doc := s.store.LoadUsers(ctx)
	user := doc.Find(userID)
	if user == nil {
		return nil, ErrUserNotFound
	}
	slot := user.Slot(slotName)
	if slot == nil {
		return nil, ErrBadSlot
	}

	slot.Sub = nil
	s.store.SaveUsers(ctx, doc)

	s.log.Info("подписка очищена", slog.Int64("user", user.ID), slog.String("slot", slotName))
	return user, nil
}

// Report возвращает пользователя для отчёта по его подпискам.
func (s *Service) Report(ctx context.Context, token string) (*storage.User, error) {
	doc := s.store.LoadUsers(ctx)
	id, ok := storage.ResolveUserID(token, doc.Users)
	if !ok {
		return nil, ErrUserNotFound
	}
	user := doc.Find(id)
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListActive возвращает пользователей, у которых хотя бы один слот ещё
// не истёк, в порядке документа.
func (s *Service) ListActive(ctx context.Context) []*storage.User {
	doc := s.store.LoadUsers(ctx)
	now := s.now()

	var active []*storage.User
	for _, u := range doc.Users {
		if RemainingDays(u.Buy1, now) > 0 || RemainingDays(u.Buy2, now) > 0 {
			active = append(active, u)
		}
	}
	return active
}
