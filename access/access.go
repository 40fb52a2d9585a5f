// Package access — уровни доступа админов и их ведение.
package access

import (
	"context"
	"errors"
	"log/slog"

	"sr_store_bot/storage"
)

var (
	ErrAdminNotFound = errors.New("admin not found")
	ErrInvalidLevel  = errors.New("level must be between 1 and 5")
)

// Store — доступ к документу админов.
type Store interface {
	LoadAdmins(ctx context.Context) *storage.AdminsDoc
	SaveAdmins(ctx context.Context, doc *storage.AdminsDoc)
}

// Service отвечает за уровни доступа. Документ перечитывается на каждый
// вызов: изменение уровня действует со следующей же команды.
type Service struct {
	store Store
	log   *slog.Logger
}

// New создаёт сервис доступа.
func New(store Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Level возвращает уровень пользователя; 0 — если записи нет.
func (s *Service) Level(ctx context.Context, userID int64) int {
	if a := s.store.LoadAdmins(ctx).Find(userID); a != nil {
		return a.Level
	}
	return 0
}

// HasLevel проверяет, что уровень пользователя не ниже требуемого.
func (s *Service) HasLevel(ctx context.Context, userID int64, required int) bool {
	return s.Level(ctx, userID) >= required
}

// SetAdmin назначает или обновляет админа (идемпотентный upsert по id).
func (s *Service) SetAdmin(ctx context.Context, id int64, level int, nickname string) error {
	if level < 1 || level > 5 {
		return ErrInvalidLevel
	}

	doc := s.store.LoadAdmins(ctx)
	if existing := doc.Find(id); existing != nil {
		existing.Level = level
		existing.Nickname = nickname
	} else {
		doc.Admins = append(doc.Admins, &storage.Admin{ID: id, Level: level, Nickname: nickname})
	}
	s.store.SaveAdmins(ctx, doc)

	s.log.Info("админ назначен", slog.Int64("id", id), slog.Int("level", level), slog.String("nickname", nickname))
	return nil
}

// DeleteAdmin удаляет админа; если записи нет, документ не трогается.
func (s *Service) DeleteAdmin(ctx context.Context, id int64) error {
	doc := s.store.LoadAdmins(ctx)

	kept := doc.Admins[:0]
	for _, a := range doc.Admins {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(doc.Admins) {
		return ErrAdminNotFound
	}
	doc.Admins = kept
	s.store.SaveAdmins(ctx, doc)

	s.log.Info("админ удалён", slog.Int64("id", id))
	return nil
}

// List возвращает всех админов в порядке документа.
func (s *Service) List(ctx context.Context) []*storage.Admin {
	return s.store.LoadAdmins(ctx).Admins
}
