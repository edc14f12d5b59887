package entities_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"notely/internal/notes/domain/entities"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  entities.Page
		total int
		pages int
	}{
		{name: "empty result", page: entities.Page{Page: 1, Limit: 10}, total: 0, pages: 0},
		{name: "exact multiple", page: entities.Page{Page: 1, Limit: 10}, total: 20, pages: 2},
		{name: "partial last page", page: entities.Page{Page: 3, Limit: 10}, total: 21, pages: 3},
		{name: "single item", page: entities.Page{Page: 1, Limit: 100}, total: 1, pages: 1},
		{name: "limit one", page: entities.Page{Page: 2, Limit: 1}, total: 7, pages: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := entities.NewPagination(tt.page, tt.total)

			assert.Equal(t, tt.pages, p.Pages)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.page.Page, p.Page)
			assert.Equal(t, tt.page.Limit, p.Limit)
		})
	}
}

func TestPageNormalizeAndOffset(t *testing.T) {
	assert.Equal(t, entities.Page{Page: 1, Limit: 10}, entities.Page{}.Normalize())
	assert.Equal(t, entities.Page{Page: 2, Limit: 100}, entities.Page{Page: 2, Limit: 500}.Normalize())

	assert.Equal(t, 0, entities.Page{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, entities.Page{Page: 3, Limit: 10}.Offset())
}

func TestPageOffsetDoesNotOverflow(t *testing.T) {
	assert.Equal(t, math.MaxInt, entities.Page{Page: math.MaxInt, Limit: 10}.Offset())
	assert.Equal(t, math.MaxInt, entities.Page{Page: math.MaxInt/10 + 2, Limit: 10}.Offset())
	assert.Equal(t, (math.MaxInt/10)*10, entities.Page{Page: math.MaxInt/10 + 1, Limit: 10}.Offset())
}

func TestSearchFilterTerms(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{query: "  milk   eggs\tbread ", want: []string{"milk", "eggs", "bread"}},
		{query: `"milk eggs"`, want: []string{`"milk eggs"`}},
		{query: `bread  "milk   eggs" jam`, want: []string{"bread", `"milk eggs"`, "jam"}},
		{query: `tea"green tea"`, want: []string{"tea", `"green tea"`}},
		{query: `"unclosed phrase`, want: []string{`"unclosed phrase"`}},
		{query: `""  " "`, want: nil},
		{query: "   ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, entities.SearchFilter{Query: tt.query}.Terms())
		})
	}
}

func TestNoteUpdateIsEmpty(t *testing.T) {
	title := "t"

	assert.True(t, entities.NoteUpdate{}.IsEmpty())
	assert.False(t, entities.NoteUpdate{Title: &title}.IsEmpty())
}
