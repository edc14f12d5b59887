package postgres

import (
	"fmt"
	"strings"

	"notely/internal/notes/domain/entities"
)

const (
	noteColumns = `id, user_id, title, content, created_at, updated_at`

	// textSearchConfig должен совпадать с конфигурацией генерируемой колонки search.
	textSearchConfig = "english"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// sqlQuery - текст запроса и его позиционные аргументы.
type sqlQuery struct {
	text string
	args []interface{}
}

// whereBuilder собирает условия WHERE, нумеруя плейсхолдеры по мере добавления.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

// add добавляет условие; ? в cond заменяется плейсхолдером аргумента.
func (w *whereBuilder) add(cond string, arg interface{}) string {
	w.args = append(w.args, arg)
	placeholder := fmt.Sprintf("$%d", len(w.args))
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", placeholder))
	return placeholder
}

func (w *whereBuilder) sql() string {
	return strings.Join(w.conds, " AND ")
}

func (w *whereBuilder) argsWith(extra ...interface{}) []interface{} {
	out := make([]interface{}, 0, len(w.args)+len(extra))
	out = append(out, w.args...)
	return append(out, extra...)
}

// escapeLike экранирует метасимволы LIKE, чтобы подстрока совпадала буквально.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// buildListQuery строит пару запросов (подсчет и страница) с одинаковым фильтром.
func buildListQuery(filter entities.ListFilter) (count sqlQuery, page sqlQuery) {
	var w whereBuilder
	w.add("user_id = ?", filter.OwnerID)
	if filter.Title != nil {
		w.add("title ILIKE '%' || ? || '%'", escapeLike(*filter.Title))
	}
	if filter.DateFrom != nil {
		w.add("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		w.add("created_at <= ?", *filter.DateTo)
	}

	where := w.sql()
	n := len(w.args)

	count = sqlQuery{
		text: `SELECT COUNT(*) FROM notes WHERE ` + where,
		args: w.argsWith(),
	}
	page = sqlQuery{
		text: fmt.Sprintf(`SELECT %s FROM notes WHERE %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
			noteColumns, where, n+1, n+2),
		args: w.argsWith(filter.Page.Limit, filter.Page.Offset()),
	}
	return count, page
}

// searchExpression соединяет слова запроса через or: достаточно совпадения любого слова.
func searchExpression(terms []string) string {
	return strings.Join(terms, " or ")
}

// buildSearchQuery строит подсчет и страницу полнотекстового поиска, отсортированную по релевантности.
func buildSearchQuery(filter entities.SearchFilter) (count sqlQuery, page sqlQuery) {
	var w whereBuilder
	w.add("user_id = ?", filter.OwnerID)
	tsQuery := w.add(
		fmt.Sprintf("search @@ websearch_to_tsquery('%s', ?)", textSearchConfig),
		searchExpression(filter.Terms()),
	)

	where := w.sql()
	n := len(w.args)

	count = sqlQuery{
		text: `SELECT COUNT(*) FROM notes WHERE ` + where,
		args: w.argsWith(),
	}
	page = sqlQuery{
		text: fmt.Sprintf(`SELECT %s FROM notes WHERE %s ORDER BY ts_rank(search, websearch_to_tsquery('%s', %s)) DESC, created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
			noteColumns, where, textSearchConfig, tsQuery, n+1, n+2),
		args: w.argsWith(filter.Page.Limit, filter.Page.Offset()),
	}
	return count, page
}

// buildUpdateQuery строит частичное обновление. ok=false, если менять нечего.
func buildUpdateQuery(noteID, userID string, update entities.NoteUpdate) (q sqlQuery, ok bool) {
	var (
		sets []string
		args []interface{}
	)
	if update.Title != nil {
		args = append(args, *update.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if update.Content != nil {
		args = append(args, *update.Content)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
	}
	if len(sets) == 0 {
		return sqlQuery{}, false
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, noteID, userID)
	text := fmt.Sprintf(`UPDATE notes SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args)-1, len(args), noteColumns)

	return sqlQuery{text: text, args: args}, true
}
