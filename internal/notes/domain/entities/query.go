package entities

import (
	"math"
	"strings"
	"time"
	"unicode"
)

// Параметры пагинации по умолчанию.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page - номер страницы и ее размер.
type Page struct {
	Page  int
	Limit int
}

// Normalize подставляет значения по умолчанию вместо неположительных.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset возвращает число пропускаемых записей. При переполнении возвращает math.MaxInt.
func (p Page) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// ListFilter описывает выборку заметок владельца.
type ListFilter struct {
	OwnerID  string
	Title    *string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     Page
}

// SearchFilter описывает полнотекстовый поиск по заметкам владельца.
type SearchFilter struct {
	OwnerID string
	Query   string
	Page    Page
}

// Terms разбивает запрос на слова. Фраза в двойных кавычках остается одним
// термом вместе с кавычками; незакрытая кавычка длится до конца запроса.
func (f SearchFilter) Terms() []string {
	var terms []string
	rest := f.Query
	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			return terms
		}

		if rest[0] == '"' {
			phrase := rest[1:]
			rest = ""
			if end := strings.IndexByte(phrase, '"'); end >= 0 {
				phrase, rest = phrase[:end], phrase[end+1:]
			}
			if words := strings.Fields(phrase); len(words) > 0 {
				terms = append(terms, `"`+strings.Join(words, " ")+`"`)
			}
			continue
		}

		end := strings.IndexFunc(rest, func(r rune) bool { return unicode.IsSpace(r) || r == '"' })
		if end < 0 {
			end = len(rest)
		}
		terms = append(terms, rest[:end])
		rest = rest[end:]
	}
}

// Pagination - метаданные страницы результата.
type Pagination struct {
	Page  int
	Limit int
	Total int
	Pages int
}

// NewPagination вычисляет число страниц как ceil(total/limit).
func NewPagination(page Page, total int) Pagination {
	pages := 0
	if page.Limit > 0 {
		pages = (total + page.Limit - 1) / page.Limit
	}
	return Pagination{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
		Pages: pages,
	}
}

// NoteList - страница заметок с метаданными.
type NoteList struct {
	Notes      []*Note
	Pagination Pagination
}
