// Package directory — постраничный просмотр списка пользователей.
// Страница каждый раз пересчитывается от живого документа: это номер
// страницы, а не курсор в снимке.
package directory

import "sr_store_bot/storage"

// Page — одна страница списка.
type Page struct {
	Number  int // номер страницы после приведения в допустимый диапазон
	Total   int // всего страниц, не меньше 1
	Start   int // индекс первой записи в документе (с нуля)
	Users   []*storage.User
	HasPrev bool
	HasNext bool
}

// Paginate выбирает страницу page из users окнами по perPage. Номер
// приводится в диапазон [1, Total].
func Paginate(users []*storage.User, page, perPage int) Page {
	if perPage <= 0 {
		perPage = 10
	}
	total := (len(users) + perPage - 1) / perPage
	if total < 1 {
		total = 1
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(users) {
		start = len(users)
	}
	if end > len(users) {
		end = len(users)
	}

	return Page{
		Number:  page,
		Total:   total,
		Start:   start,
		Users:   users[start:end],
		HasPrev: page > 1,
		HasNext: page < total,
	}
}
