// Package api описывает входящие порты сервиса заметок.
package api

import (
	"context"

	"notely/internal/notes/domain/entities"
)

// NoteUseCase определяет операции над заметками аутентифицированного пользователя.
type NoteUseCase interface {
	CreateNote(ctx context.Context, ownerID, title, content string) (*entities.Note, error)
	GetNote(ctx context.Context, ownerID, noteID string) (*entities.Note, error)
	ListNotes(ctx context.Context, filter entities.ListFilter) (*entities.NoteList, error)
	SearchNotes(ctx context.Context, filter entities.SearchFilter) (*entities.NoteList, error)
	UpdateNote(ctx context.Context, ownerID, noteID string, update entities.NoteUpdate) (*entities.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID string) error
}
