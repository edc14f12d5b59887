// Package entities содержит доменные сущности заметок.
package entities

import (
	"errors"
	"time"
)

// Ограничения полей заметки.
const (
	TitleMaxLength   = 200
	ContentMaxLength = 10000
)

var (
	ErrNoteNotFound     = errors.New("note not found")
	ErrNoValidUpdates   = errors.New("no valid updates provided")
	ErrEmptySearchQuery = errors.New("search query is required")
	ErrEmptyOwner       = errors.New("note owner cannot be empty")
)

// Note представляет заметку пользователя.
type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNote создает заметку для владельца userID.
func NewNote(userID, title, content string) *Note {
	return &Note{
		UserID:  userID,
		Title:   title,
		Content: content,
	}
}

// NoteUpdate - частичное обновление. nil означает, что поле не меняется.
type NoteUpdate struct {
	Title   *string
	Content *string
}

// IsEmpty сообщает, что обновлять нечего.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil
}
