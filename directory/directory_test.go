package directory

import (
	"fmt"
	"testing"

	"sr_store_bot/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeUsers(n int) []*storage.User {
	users := make([]*storage.User, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, &storage.User{ID: int64(i), Login: fmt.Sprintf("user%d", i)})
	}
	return users
}

func TestPaginate(t *testing.T) {
	users := makeUsers(25)

	tests := []struct {
		name    string
		page    int
		number  int
		count   int
		start   int
		hasPrev bool
		hasNext bool
	}{
		{name: "первая страница", page: 1, number: 1, count: 10, start: 0, hasPrev: false, hasNext: true},
		{name: "середина", page: 2, number: 2, count: 10, start: 10, hasPrev: true, hasNext: true},
		{name: "последняя неполная", page: 3, number: 3, count: 5, start: 20, hasPrev: true, hasNext: false},
		{name: "номер за пределами прижимается к последней", page: 99, number: 3, count: 5, start: 20, hasPrev: true, hasNext: false},
		{name: "ноль прижимается к первой", page: 0, number: 1, count: 10, start: 0, hasPrev: false, hasNext: true},
		{name: "отрицательный номер", page: -5, number: 1, count: 10, start: 0, hasPrev: false, hasNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(users, tt.page, 10)
			assert.Equal(t, tt.number, p.Number)
			assert.Equal(t, 3, p.Total)
			assert.Equal(t, tt.start, p.Start)
			assert.Len(t, p.Users, tt.count)
			assert.Equal(t, tt.hasPrev, p.HasPrev)
			assert.Equal(t, tt.hasNext, p.HasNext)
		})
	}
}

func TestPaginateWindowContents(t *testing.T) {
	users := makeUsers(25)
	p := Paginate(users, 2, 10)
	require.Len(t, p.Users, 10)
	assert.Equal(t, int64(11), p.Users[0].ID)
	assert.Equal(t, int64(20), p.Users[9].ID)
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate(nil, 1, 10)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 1, p.Total)
	assert.Empty(t, p.Users)
	assert.False(t, p.HasPrev)
	assert.False(t, p.HasNext)

	// и с любым запрошенным номером
	p = Paginate(nil, 42, 10)
	assert.Equal(t, 1, p.Number)
	assert.Empty(t, p.Users)
}

func TestPaginateExactMultiple(t *testing.T) {
	p := Paginate(makeUsers(20), 2, 10)
	assert.Equal(t, 2, p.Total)
	assert.Len(t, p.Users, 10)
	assert.True(t, p.HasPrev)
	assert.False(t, p.HasNext)
}

func TestPaginateSinglePage(t *testing.T) {
	p := Paginate(makeUsers(3), 1, 10)
	assert.Equal(t, 1, p.Total)
	assert.Len(t, p.Users, 3)
	assert.False(t, p.HasPrev)
	assert.False(t, p.HasNext)
}
