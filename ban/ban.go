// Package ban — блокировки: проверка доступа с автоснятием по сроку,
// выдача и снятие, уведомления пользователю.
package ban

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sr_store_bot/messages"
	"sr_store_bot/storage"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNotBanned    = errors.New("user is not banned")
)

// Notifier — отправка личного сообщения пользователю. Ошибка отправки
// никогда не отменяет саму операцию.
type Notifier func(ctx context.Context, userID int64, text string) error

// Store — доступ к документу пользователей.
type Store interface {
	LoadUsers(ctx context.Context) *storage.UsersDoc
	SaveUsers(ctx context.Context, doc *storage.UsersDoc)
}

// Decision — результат проверки доступа.
type Decision struct {
	Allowed bool
	Message string // текст отказа для пользователя
}

// Service реализует операции над блокировками.
type Service struct {
	store  Store
	notify Notifier
	log    *slog.Logger
	now    func() time.Time
}

// New создаёт сервис блокировок.
func New(store Store, notify Notifier, log *slog.Logger) *Service {
	return &Service{store: store, notify: notify, log: log, now: time.Now}
}

// CheckAccess — гейт перед любой командой в личке. Истёкшая блокировка
// снимается прямо здесь, изменение сохраняется, и доступ разрешается
// тем же вызовом.
func (s *Service) CheckAccess(ctx context.Context, userID int64) Decision {
	doc := s.store.LoadUsers(ctx)
	user := doc.Find(userID)
	if user == nil || user.Ban == nil || !user.Ban.Status {
		return Decision{Allowed: true}
	}

	if user.Ban.Until != nil && s.now().After(time.UnixMilli(*user.Ban.Until)) {
		user.Ban = storage.ClearedBan()
		s.store.SaveUsers(ctx, doc)
		s.log.Info("блокировка истекла и снята", slog.Int64("user", userID))
		return Decision{Allowed: true}
	}

	return Decision{
		Allowed: false,
		Message: messages.FormatBanGate(PeriodText(user.Ban), user.Ban.Reason),
	}
}

// Apply блокирует пользователя; days == -1 означает навсегда.
func (s *Service) Apply(ctx context.Context, token string, days int, reason string, by storage.BanIssuer) (*storage.User, error) {
	doc := s.store.LoadUsers(ctx)
	id, ok := storage.ResolveUserID(token, doc.Users)
	if !ok {
		return nil, ErrUserNotFound
	}
	user := doc.Find(id)
	if user == nil {
		return nil, ErrUserNotFound
	}

	var until *int64
	if days != -1 {
		ms := s.now().Add(time.Duration(days) * 24 * time.Hour).UnixMilli()
		until = &ms
	}
	user.Ban = &storage.Ban{Status: true, Until: until, Reason: reason, By: &by}
	s.store.SaveUsers(ctx, doc)

	s.log.Info("пользователь заблокирован",
		slog.Int64("user", user.ID),
		slog.Int("days", days),
		slog.String("reason", reason),
		slog.Int64("by", by.ID))

	if err := s.notify(ctx, user.ID, messages.FormatBanNotice(DurationText(days), reason)); err != nil {
		s.log.Warn("не удалось отправить сообщение пользователю", slog.Any("err", err))
	}
	return user, nil
}

// Lift снимает блокировку.
func (s *Service) Lift(ctx context.Context, userID int64) (*storage.User, error) {
	doc := s.store.LoadUsers(ctx)
	user := doc.Find(userID)
	if user == nil || user.Ban == nil || !user.Ban.Status {
		return nil, ErrNotBanned
	}

	user.Ban = storage.ClearedBan()
	s.store.SaveUsers(ctx, doc)

	s.log.Info("пользователь разблокирован", slog.Int64("user", userID))

	if err := s.notify(ctx, userID, messages.MsgUnbanNotice); err != nil {
		s.log.Warn("не удалось уведомить пользователя", slog.Any("err", err))
	}
	return user, nil
}

// ListBanned возвращает всех заблокированных в порядке документа.
func (s *Service) ListBanned(ctx context.Context) []*storage.User {
	doc := s.store.LoadUsers(ctx)

	var banned []*storage.User
	for _, u := range doc.Users {
		if u.Ban != nil && u.Ban.Status {
			banned = append(banned, u)
		}
	}
	return banned
}

// PeriodText — человекочитаемый срок действующей блокировки.
func PeriodText(b *storage.Ban) string {
	if b.Until == nil {
		return "навсегда"
	}
	return "до " + time.UnixMilli(*b.Until).Format(storage.DateLayout)
}

// DurationText — срок в формулировке команды /ban.
func DurationText(days int) string {
	if days == -1 {
		return "навсегда"
	}
	return fmt.Sprintf("%d дней", days)
}
