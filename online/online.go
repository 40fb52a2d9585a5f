// Package online — клиент стороннего фида онлайна игровых серверов.
// Внешний собеседник, к данным самого бота отношения не имеет.
package online

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Server — один сервер из фида.
type Server struct {
	Players int `json:"players"`
	Bonus   int `json:"bonus"`
}

type feed struct {
	CRMP map[string]Server `json:"crmp_new"`
}

// Client читает фид онлайна.
type Client struct {
	http *http.Client
	url  string
}

// NewClient создаёт клиент фида.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{http: &http.Client{Timeout: timeout}, url: url}
}

// Fetch загружает карту серверов фида.
func (c *Client) Fetch(ctx context.Context) (map[string]Server, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("статус %d", resp.StatusCode)
	}

	var f feed
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return nil, fmt.Errorf("разбор фида: %w", err)
	}
	if f.CRMP == nil {
		return nil, fmt.Errorf("в фиде нет crmp_new")
	}
	return f.CRMP, nil
}

// FormatReport собирает HTML-отчёт по серверам с суммарным онлайном.
func FormatReport(servers map[string]Server) string {
	ids := make([]string, 0, len(servers))
	for id := range servers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})

	var sb strings.Builder
	sb.WriteString("S | R » Онлайн проекта \"<a href=\"https://t.me/hassleonline\"><b>RADMIR CR:MP</b></a>\"\n\n")

	total := 0
	for _, id := range ids {
		srv := servers[id]
		bonus := srv.Bonus
		if bonus == 0 {
			bonus = 1
		}
		total += srv.Players
		sid := id
		if len(sid) < 2 {
			sid = "0" + sid
		}
		fmt.Fprintf(&sb, "%s. \"<a href=\"https://t.me/hassleonline\">SERVER %s</a> <b>[x%d]</b>\", онлайн: <b>%d</b>\n",
			sid, sid, bonus, srv.Players)
	}

	fmt.Fprintf(&sb, "\n— Суммарный онлайн: <b>%d</b>", total)
	return sb.String()
}
