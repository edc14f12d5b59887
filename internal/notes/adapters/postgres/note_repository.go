// Package postgres содержит хранилище заметок на PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"notely/internal/notes/domain/entities"
	"notely/internal/notes/ports/repositories"
	"notely/pkg/logger"
)

const (
	msgNoteNotFound = "note not found"

	errCtxCreateNote  = "failed to create note"
	errCtxGetNote     = "failed to get note"
	errCtxCountNotes  = "failed to count notes"
	errCtxListNotes   = "failed to list notes"
	errCtxScanNote    = "failed to scan note"
	errCtxIterateRows = "error iterating rows"
	errCtxUpdateNote  = "failed to update note"
	errCtxDeleteNote  = "failed to delete note"
)

// PgxPoolInterface - подмножество pgxpool.Pool, которое использует репозиторий.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
}

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку и возвращает ее вместе с присвоенными полями.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("userID", note.UserID))

	created, err := scanNote(r.pool.QueryRow(ctx,
		`INSERT INTO notes (user_id, title, content) VALUES ($1, $2, $3) RETURNING `+noteColumns,
		note.UserID, note.Title, note.Content,
	))
	if err != nil {
		log.Error(ctx, errCtxCreateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreateNote, err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return created, nil
}

// GetByID получает заметку владельца.
func (r *NoteRepository) GetByID(ctx context.Context, noteID, userID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))
	log.Debug(ctx, "getting note", zap.String("noteID", noteID), zap.String("userID", userID))

	if !isUUID(noteID) {
		log.Debug(ctx, msgNoteNotFound, zap.String("noteID", noteID))
		return nil, entities.ErrNoteNotFound
	}

	note, err := scanNote(r.pool.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, msgNoteNotFound, zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, errCtxGetNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGetNote, err)
	}

	return note, nil
}

// List возвращает страницу заметок по фильтру и общее число совпадений.
func (r *NoteRepository) List(ctx context.Context, filter entities.ListFilter) ([]*entities.Note, int, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.List"))
	log.Debug(ctx, "listing notes",
		zap.String("userID", filter.OwnerID),
		zap.Int("page", filter.Page.Page),
		zap.Int("limit", filter.Page.Limit))

	count, page := buildListQuery(filter)
	return r.fetchPage(ctx, log, count, page)
}

// Search выполняет полнотекстовый поиск по заголовку и содержимому.
func (r *NoteRepository) Search(ctx context.Context, filter entities.SearchFilter) ([]*entities.Note, int, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Search"))
	log.Debug(ctx, "searching notes",
		zap.String("userID", filter.OwnerID),
		zap.Strings("terms", filter.Terms()))

	count, page := buildSearchQuery(filter)
	return r.fetchPage(ctx, log, count, page)
}

// fetchPage последовательно выполняет подсчет и выборку страницы.
func (r *NoteRepository) fetchPage(ctx context.Context, log *logger.Logger, count, page sqlQuery) ([]*entities.Note, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, count.text, count.args...).Scan(&total); err != nil {
		log.Error(ctx, errCtxCountNotes, zap.Error(err))
		return nil, 0, fmt.Errorf("%s: %w", errCtxCountNotes, err)
	}

	rows, err := r.pool.Query(ctx, page.text, page.args...)
	if err != nil {
		log.Error(ctx, errCtxListNotes, zap.Error(err))
		return nil, 0, fmt.Errorf("%s: %w", errCtxListNotes, err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Error(ctx, errCtxScanNote, zap.Error(err))
			return nil, 0, fmt.Errorf("%s: %w", errCtxScanNote, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, errCtxIterateRows, zap.Error(err))
		return nil, 0, fmt.Errorf("%s: %w", errCtxIterateRows, err)
	}

	return notes, total, nil
}

// Update применяет частичное обновление и обновляет updated_at.
func (r *NoteRepository) Update(ctx context.Context, noteID, userID string, update entities.NoteUpdate) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", noteID))

	q, ok := buildUpdateQuery(noteID, userID, update)
	if !ok {
		return nil, entities.ErrNoValidUpdates
	}

	if !isUUID(noteID) {
		log.Debug(ctx, msgNoteNotFound, zap.String("noteID", noteID))
		return nil, entities.ErrNoteNotFound
	}

	note, err := scanNote(r.pool.QueryRow(ctx, q.text, q.args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, msgNoteNotFound, zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, errCtxUpdateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdateNote, err)
	}

	return note, nil
}

// Delete удаляет заметку владельца.
func (r *NoteRepository) Delete(ctx context.Context, noteID, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	if !isUUID(noteID) {
		log.Debug(ctx, msgNoteNotFound, zap.String("noteID", noteID))
		return entities.ErrNoteNotFound
	}

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	)
	if err != nil {
		log.Error(ctx, errCtxDeleteNote, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeleteNote, err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, msgNoteNotFound, zap.String("noteID", noteID))
		return entities.ErrNoteNotFound
	}

	return nil
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	if err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
		return nil, err
	}
	return &note, nil
}
