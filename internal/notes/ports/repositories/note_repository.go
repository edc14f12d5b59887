// Package repositories описывает хранилище заметок.
package repositories

import (
	"context"

	"notely/internal/notes/domain/entities"
)

// NoteRepository определяет операции хранения заметок. Все выборки ограничены владельцем,
// а отсутствующая или чужая заметка возвращается как entities.ErrNoteNotFound.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	GetByID(ctx context.Context, noteID, userID string) (*entities.Note, error)
	List(ctx context.Context, filter entities.ListFilter) ([]*entities.Note, int, error)
	Search(ctx context.Context, filter entities.SearchFilter) ([]*entities.Note, int, error)
	Update(ctx context.Context, noteID, userID string, update entities.NoteUpdate) (*entities.Note, error)
	Delete(ctx context.Context, noteID, userID string) error
}
