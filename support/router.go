// Package support — маршрутизация обращений в поддержку: кто сейчас в
// режиме поддержки, какое сообщение в группе соответствует обращению и
// как из ответа в группе восстановить адресата.
package support

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
)

// tagRe обязан разбирать ровно то, что пишет Tag.
var tagRe = regexp.MustCompile(`ID: (\d+)`)

// Tag — маркер адресата, встраиваемый в текст ретрансляции.
func Tag(userID int64) string {
	return fmt.Sprintf("ID: %d", userID)
}

// ParseTag достаёт id адресата из текста ретранслированного сообщения.
// Обратный путь работает без состояния: ответ на любое помеченное
// сообщение доставляется, даже если пользователь уже вышел из режима
// поддержки.
func ParseTag(text string) (int64, bool) {
	m := tagRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Relay — ретранслированное в группу обращение.
type Relay struct {
	MessageID int    // id сообщения в группе поддержки
	Text      string // текст ретрансляции, нужен для пометки о закрытии
}

// Router хранит состояние обращений в памяти процесса. После рестарта
// состояние пустое. Безопасен для конкурентных обработчиков; при гонке
// между новым сообщением и отменой побеждает последняя запись.
type Router struct {
	mu     sync.Mutex
	active map[int64]struct{}
	relays map[int64]Relay
}

// NewRouter создаёт пустой маршрутизатор.
func NewRouter() *Router {
	return &Router{
		active: make(map[int64]struct{}),
		relays: make(map[int64]Relay),
	}
}

// Enter переводит пользователя в режим поддержки.
func (r *Router) Enter(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[userID] = struct{}{}
}

// Active сообщает, находится ли пользователь в режиме поддержки.
func (r *Router) Active(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.active[userID]
	return ok
}

// TrackRelay запоминает последнее ретранслированное сообщение, чтобы
// при отмене пометить тикет закрытым.
func (r *Router) TrackRelay(userID int64, messageID int, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.relays[userID] = Relay{MessageID: messageID, Text: text}
}

// Cancel выводит пользователя из режима поддержки и возвращает
// последнюю ретрансляцию, если она была. Отмена без ретрансляции —
// допустимый случай, ok будет false.
func (r *Router) Cancel(userID int64) (Relay, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, userID)
	relay, ok := r.relays[userID]
	delete(r.relays, userID)
	return relay, ok
}
