package support

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRoundTrip(t *testing.T) {
	id, ok := ParseTag(fmt.Sprintf("📩 Вопрос от @bob (%s):\nпомогите", Tag(42)))
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int64
		ok   bool
	}{
		{name: "маркер в середине", text: "Вопрос от @bob (ID: 123):\nтекст", want: 123, ok: true},
		{name: "без маркера", text: "просто сообщение", ok: false},
		{name: "пустой текст", text: "", ok: false},
		{name: "маркер без числа", text: "ID: abc", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTag(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRouterLifecycle(t *testing.T) {
	r := NewRouter()

	assert.False(t, r.Active(1))

	r.Enter(1)
	assert.True(t, r.Active(1))
	assert.False(t, r.Active(2))

	r.TrackRelay(1, 77, "вопрос")

	relay, ok := r.Cancel(1)
	require.True(t, ok)
	assert.Equal(t, 77, relay.MessageID)
	assert.Equal(t, "вопрос", relay.Text)
	assert.False(t, r.Active(1))

	// повторная отмена — уже без ретрансляции
	_, ok = r.Cancel(1)
	assert.False(t, ok)
}

func TestCancelWithoutRelay(t *testing.T) {
	r := NewRouter()
	r.Enter(1)

	// отмена до первого сообщения — допустимый случай
	_, ok := r.Cancel(1)
	assert.False(t, ok)
	assert.False(t, r.Active(1))
}

func TestTrackRelayLastWriteWins(t *testing.T) {
	r := NewRouter()
	r.Enter(1)
	r.TrackRelay(1, 10, "первый")
	r.TrackRelay(1, 11, "второй")

	relay, ok := r.Cancel(1)
	require.True(t, ok)
	assert.Equal(t, 11, relay.MessageID)
}

func TestRouterConcurrency(t *testing.T) {
	r := NewRouter()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		userID := int64(i % 10)
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Enter(userID)
			r.TrackRelay(userID, n, "вопрос")
			r.Active(userID)
			if n%3 == 0 {
				r.Cancel(userID)
			}
		}(i)
	}
	wg.Wait()
}
