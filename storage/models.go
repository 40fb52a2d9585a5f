package storage

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DateLayout — формат даты начала подписки в документе.
const DateLayout = "2006-01-02"

// UsersDoc — документ коллекции пользователей целиком.
type UsersDoc struct {
	Users []*User `json:"users"`
}

// AdminsDoc — документ коллекции админов целиком.
type AdminsDoc struct {
	Admins []*Admin `json:"admins"`
}

// User — запись пользователя. Создаётся лениво при первом просмотре
// профиля и никогда не удаляется.
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Key   string `json:"key"`
	Buy1  Slot   `json:"buy1"`
	Buy2  Slot   `json:"buy2"`
	Ban   *Ban   `json:"ban,omitempty"`
}

// Subscription — выданная подписка: срок, дата начала и кто выдал.
type Subscription struct {
	Days     int    `json:"days"`
	Start    string `json:"start"`
	IssuedBy string `json:"issuedBy,omitempty"`
}

// Slot — слот подписки пользователя: либо пустой, либо активная запись.
// В документе пустой слот хранится как число 0, активный — как объект;
// обе формы понимаются при чтении, при записи пустой слот сериализуется
// обратно в 0.
type Slot struct {
	Sub *Subscription
}

// Empty сообщает, что в слоте нет подписки.
func (s Slot) Empty() bool { return s.Sub == nil }

// UnmarshalJSON принимает объект подписки либо любой скаляр (0, null),
// который означает пустой слот. Некорректное содержимое тоже
// деградирует до пустого слота.
func (s *Slot) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		s.Sub = nil
		return nil
	}
	var sub Subscription
	if err := json.Unmarshal(trimmed, &sub); err != nil {
		s.Sub = nil
		return nil
	}
	s.Sub = &sub
	return nil
}

// MarshalJSON пишет пустой слот как 0, активный — как объект.
func (s Slot) MarshalJSON() ([]byte, error) {
	if s.Sub == nil {
		return []byte("0"), nil
	}
	return json.Marshal(s.Sub)
}

// Ban — состояние блокировки пользователя.
type Ban struct {
	Status bool       `json:"status"`
	Until  *int64     `json:"until"` // миллисекунды эпохи; nil — навсегда
	Reason string     `json:"reason"`
	By     *BanIssuer `json:"by,omitempty"`
}

// BanIssuer — кто выдал блокировку.
type BanIssuer struct {
	ID    int64  `json:"id"`
	Login string `json:"login,omitempty"`
}

// ClearedBan возвращает снятую блокировку в той форме, в какой она
// хранится в документе.
func ClearedBan() *Ban {
	return &Ban{Status: false, Until: nil, Reason: ""}
}

// Admin — запись админа с уровнем доступа 1-5.
type Admin struct {
	ID       int64  `json:"id"`
	Level    int    `json:"level"`
	Nickname string `json:"nickname"`
}

// Find возвращает пользователя по id или nil.
func (d *UsersDoc) Find(id int64) *User {
	for _, u := range d.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// Find возвращает админа по id или nil.
func (d *AdminsDoc) Find(id int64) *Admin {
	for _, a := range d.Admins {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Slot возвращает слот подписки по имени поля (buy1/buy2).
func (u *User) Slot(name string) *Slot {
	switch name {
	case "buy1":
		return &u.Buy1
	case "buy2":
		return &u.Buy2
	}
	return nil
}

// Label — отображаемое имя пользователя: логин, если есть, иначе id.
func (u *User) Label() string {
	if u.Login != "" {
		return u.Login
	}
	return strconv.FormatInt(u.ID, 10)
}

// ResolveUserID приводит введённый админом токен к id пользователя.
// Число трактуется как id буквально, без проверки существования.
// Иначе токен (после снятия ведущей @) сравнивается с логинами точно,
// с учётом регистра; при дублях логина побеждает первый по порядку
// документа — известное ограничение.
func ResolveUserID(token string, users []*User) (int64, bool) {
	if id, err := strconv.ParseInt(token, 10, 64); err == nil {
		return id, true
	}
	login := strings.TrimPrefix(token, "@")
	for _, u := range users {
		if u.Login == login {
			return u.ID, true
		}
	}
	return 0, false
}

// NewUser создаёт запись пользователя с новым ключом и пустыми слотами.
func NewUser(id int64, login string) *User {
	return &User{
		ID:    id,
		Login: login,
		Key:   GenerateKey(),
	}
}

// GenerateKey выдаёт непрозрачный ключ доступа для нового пользователя.
func GenerateKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
