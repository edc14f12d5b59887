package dto

import (
	"strconv"
	"strings"
	"time"

	"notely/internal/notes/domain/entities"
)

// Параметры строки запроса.
const (
	QueryTitle    = "title"
	QueryDateFrom = "dateFrom"
	QueryDateTo   = "dateTo"
	QueryPage     = "page"
	QueryLimit    = "limit"
	QuerySearch   = "q"
)

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"min=1,max=200,nonul" message:"Title must be between 1 and 200 characters" message_nonul:"Title must not contain NUL characters"`
	Content string `json:"content" validate:"min=1,max=10000,nonul" message:"Content must be between 1 and 10000 characters" message_nonul:"Content must not contain NUL characters"`
}

// Normalize убирает пробелы по краям.
func (r *CreateNoteRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

// UpdateNoteRequest содержит данные для частичного обновления заметки.
type UpdateNoteRequest struct {
	Title   *string `json:"title" validate:"omitnil,min=1,max=200,nonul" message:"Title must be between 1 and 200 characters" message_nonul:"Title must not contain NUL characters"`
	Content *string `json:"content" validate:"omitnil,min=1,max=10000,nonul" message:"Content must be between 1 and 10000 characters" message_nonul:"Content must not contain NUL characters"`
}

// Normalize убирает пробелы по краям; пустые значения считаются отсутствующими.
func (r *UpdateNoteRequest) Normalize() {
	r.Title = trimOrNil(r.Title)
	r.Content = trimOrNil(r.Content)
}

// ToEntity преобразует запрос в доменное обновление.
func (r *UpdateNoteRequest) ToEntity() entities.NoteUpdate {
	return entities.NoteUpdate{Title: r.Title, Content: r.Content}
}

// PageQuery - параметры пагинации. nil означает, что параметр не передан.
type PageQuery struct {
	Page  *string `validate:"omitnil,posint" message:"Page must be a positive integer"`
	Limit *string `validate:"omitnil,pagelimit" message:"Limit must be between 1 and 100"`
}

// ToEntity возвращает страницу; отсутствующие значения заменяются значениями по умолчанию.
func (q PageQuery) ToEntity() entities.Page {
	return entities.Page{
		Page:  atoiOrZero(q.Page),
		Limit: atoiOrZero(q.Limit),
	}.Normalize()
}

// ListNotesQuery - параметры выборки заметок.
type ListNotesQuery struct {
	PageQuery
	Title    *string `validate:"omitnil,notblank,nonul" message:"Title search term must not be empty" message_nonul:"Title search term must not contain NUL characters"`
	DateFrom *string `validate:"omitnil,iso8601" message:"dateFrom must be a valid ISO 8601 date"`
	DateTo   *string `validate:"omitnil,iso8601" message:"dateTo must be a valid ISO 8601 date"`
}

// NewListNotesQuery собирает параметры из строки запроса.
func NewListNotesQuery(queries map[string]string) ListNotesQuery {
	return ListNotesQuery{
		PageQuery: newPageQuery(queries),
		Title:     lookup(queries, QueryTitle),
		DateFrom:  lookup(queries, QueryDateFrom),
		DateTo:    lookup(queries, QueryDateTo),
	}
}

// ToFilter строит фильтр владельца. Даты к этому моменту уже проверены.
func (q ListNotesQuery) ToFilter(ownerID string, parseDate func(string) (time.Time, error)) (entities.ListFilter, error) {
	filter := entities.ListFilter{
		OwnerID: ownerID,
		Title:   trimOrNil(q.Title),
		Page:    q.PageQuery.ToEntity(),
	}

	for _, bound := range []struct {
		raw *string
		dst **time.Time
	}{
		{raw: q.DateFrom, dst: &filter.DateFrom},
		{raw: q.DateTo, dst: &filter.DateTo},
	} {
		if bound.raw == nil {
			continue
		}
		t, err := parseDate(*bound.raw)
		if err != nil {
			return entities.ListFilter{}, err
		}
		*bound.dst = &t
	}

	return filter, nil
}

// SearchNotesQuery - параметры полнотекстового поиска.
type SearchNotesQuery struct {
	PageQuery
	Query string `validate:"nonul" message:"Search query must not contain NUL characters"`
}

// NewSearchNotesQuery собирает параметры из строки запроса.
func NewSearchNotesQuery(queries map[string]string) SearchNotesQuery {
	return SearchNotesQuery{
		PageQuery: newPageQuery(queries),
		Query:     queries[QuerySearch],
	}
}

// ToFilter строит фильтр поиска владельца.
func (q SearchNotesQuery) ToFilter(ownerID string) entities.SearchFilter {
	return entities.SearchFilter{
		OwnerID: ownerID,
		Query:   q.Query,
		Page:    q.PageQuery.ToEntity(),
	}
}

// NoteResponse представляет заметку в ответе.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeletedNoteResponse возвращается после удаления заметки.
type DeletedNoteResponse struct {
	ID string `json:"id"`
}

// NewNoteResponse преобразует доменную заметку.
func NewNoteResponse(note *entities.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		UserID:    note.UserID,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// NewNoteListResponse преобразует список заметок; пустой список остается массивом.
func NewNoteListResponse(notes []*entities.Note) []NoteResponse {
	result := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, NewNoteResponse(note))
	}
	return result
}

func newPageQuery(queries map[string]string) PageQuery {
	return PageQuery{
		Page:  lookup(queries, QueryPage),
		Limit: lookup(queries, QueryLimit),
	}
}

func lookup(queries map[string]string, key string) *string {
	value, ok := queries[key]
	if !ok {
		return nil
	}
	return &value
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func atoiOrZero(s *string) int {
	if s == nil {
		return 0
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return 0
	}
	return n
}
