// Package storage — модель документов и клиент удалённого
// JSON-хранилища (jsonbin): каждая операция читает или заменяет
// документ коллекции целиком.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ClientConfig — параметры подключения к хранилищу.
type ClientConfig struct {
	BaseURL   string
	APIKey    string
	UsersBin  string
	AdminsBin string
	Timeout   time.Duration
}

// Client — клиент хранилища документов.
//
// Контракт: чтение и запись не возвращают ошибок наружу. Любой сбой
// чтения (транспорт, не-2xx, битый JSON, отсутствие ожидаемого поля)
// деградирует до пустого документа и пишется в лог. Сбой записи только
// логируется. Цикл load-изменение-save не защищён от параллельных
// писателей: версий нет, побеждает последняя запись, изменения более
// раннего писателя молча теряются. Это осознанное ограничение модели
// целого документа, вызывающий код не должен на него опираться.
type Client struct {
	http      *http.Client
	baseURL   string
	apiKey    string
	usersBin  string
	adminsBin string
	log       *slog.Logger
}

// NewClient создаёт клиент хранилища.
func NewClient(cfg ClientConfig, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		usersBin:  cfg.UsersBin,
		adminsBin: cfg.AdminsBin,
		log:       log,
	}
}

// envelope — обёртка ответа jsonbin: документ лежит в поле record.
type envelope struct {
	Record json.RawMessage `json:"record"`
}

// LoadUsers загружает документ пользователей; при любом сбое возвращает
// пустой документ.
func (c *Client) LoadUsers(ctx context.Context) *UsersDoc {
	var doc UsersDoc
	if err := c.load(ctx, c.usersBin, &doc); err != nil {
		c.log.Error("ошибка загрузки пользователей", slog.Any("err", err))
		return &UsersDoc{Users: []*User{}}
	}
	if doc.Users == nil {
		c.log.Error("документ пользователей без поля users")
		return &UsersDoc{Users: []*User{}}
	}
	return &doc
}

// SaveUsers сохраняет документ пользователей; ошибка только логируется.
func (c *Client) SaveUsers(ctx context.Context, doc *UsersDoc) {
	if err := c.save(ctx, c.usersBin, doc); err != nil {
		c.log.Error("ошибка сохранения пользователей", slog.Any("err", err))
	}
}

// LoadAdmins загружает документ админов; при любом сбое возвращает
// пустой документ.
func (c *Client) LoadAdmins(ctx context.Context) *AdminsDoc {
	var doc AdminsDoc
	if err := c.load(ctx, c.adminsBin, &doc); err != nil {
		c.log.Error("ошибка загрузки админов", slog.Any("err", err))
		return &AdminsDoc{Admins: []*Admin{}}
	}
	if doc.Admins == nil {
		c.log.Error("документ админов без поля admins")
		return &AdminsDoc{Admins: []*Admin{}}
	}
	return &doc
}

// SaveAdmins сохраняет документ админов; ошибка только логируется.
func (c *Client) SaveAdmins(ctx context.Context, doc *AdminsDoc) {
	if err := c.save(ctx, c.adminsBin, doc); err != nil {
		c.log.Error("ошибка сохранения админов", slog.Any("err", err))
	}
}

func (c *Client) load(ctx context.Context, bin string, out any) error {
	url := fmt.Sprintf("%s/b/%s/latest", c.baseURL, bin)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Master-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("статус %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("разбор ответа: %w", err)
	}
	if len(env.Record) == 0 {
		return fmt.Errorf("пустой record")
	}
	return json.Unmarshal(env.Record, out)
}

func (c *Client) save(ctx context.Context, bin string, doc any) error {
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/b/%s", c.baseURL, bin)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Master-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("статус %d: %s", resp.StatusCode, text)
	}
	return nil
}
