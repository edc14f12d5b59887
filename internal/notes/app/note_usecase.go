// Package app реализует бизнес-логику сервиса заметок.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"notely/internal/notes/domain/entities"
	"notely/internal/notes/ports/api"
	"notely/internal/notes/ports/repositories"
	"notely/pkg/logger"
)

const (
	methodCreateNote  = "CreateNote"
	methodGetNote     = "GetNote"
	methodListNotes   = "ListNotes"
	methodSearchNotes = "SearchNotes"
	methodUpdateNote  = "UpdateNote"
	methodDeleteNote  = "DeleteNote"

	msgNoteCreated     = "note created"
	msgNotesListed     = "notes listed"
	msgNotesSearched   = "notes searched"
	msgNoteUpdated     = "note updated"
	msgNoteDeleted     = "note deleted"
	msgEmptyUpdate     = "update contains no usable fields"
	msgEmptySearchTerm = "empty search query"

	errCtxCreatingNote  = "creating note"
	errCtxGettingNote   = "getting note"
	errCtxListingNotes  = "listing notes"
	errCtxSearchNotes   = "searching notes"
	errCtxUpdatingNote  = "updating note"
	errCtxDeletingNote  = "deleting note"
	errCtxValidateOwner = "validating owner"
)

// NoteUseCaseImpl реализует api.NoteUseCase.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) api.NoteUseCase {
	return &NoteUseCaseImpl{noteRepo: noteRepo}
}

// CreateNote создает заметку владельца.
func (uc *NoteUseCaseImpl) CreateNote(ctx context.Context, ownerID, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateNote))

	if ownerID == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidateOwner, entities.ErrEmptyOwner)
	}

	note, err := uc.noteRepo.Create(ctx, entities.NewNote(ownerID, title, content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Info(ctx, msgNoteCreated, zap.String("noteID", note.ID))
	return note, nil
}

// GetNote возвращает заметку, если она принадлежит владельцу.
func (uc *NoteUseCaseImpl) GetNote(ctx context.Context, ownerID, noteID string) (*entities.Note, error) {
	logger.Log(ctx).Debug(ctx, methodGetNote, zap.String("noteID", noteID))

	note, err := uc.noteRepo.GetByID(ctx, noteID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxGettingNote, err)
	}
	return note, nil
}

// ListNotes возвращает страницу заметок с метаданными пагинации.
func (uc *NoteUseCaseImpl) ListNotes(ctx context.Context, filter entities.ListFilter) (*entities.NoteList, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListNotes))

	if filter.OwnerID == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidateOwner, entities.ErrEmptyOwner)
	}
	filter.Page = filter.Page.Normalize()

	notes, total, err := uc.noteRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}

	log.Debug(ctx, msgNotesListed, zap.Int("total", total), zap.Int("returned", len(notes)))
	return &entities.NoteList{
		Notes:      notes,
		Pagination: entities.NewPagination(filter.Page, total),
	}, nil
}

// SearchNotes выполняет полнотекстовый поиск. Пустой запрос отклоняется.
func (uc *NoteUseCaseImpl) SearchNotes(ctx context.Context, filter entities.SearchFilter) (*entities.NoteList, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSearchNotes))

	if len(filter.Terms()) == 0 {
		log.Debug(ctx, msgEmptySearchTerm)
		return nil, fmt.Errorf("%s: %w", errCtxSearchNotes, entities.ErrEmptySearchQuery)
	}
	if filter.OwnerID == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidateOwner, entities.ErrEmptyOwner)
	}
	filter.Page = filter.Page.Normalize()

	notes, total, err := uc.noteRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSearchNotes, err)
	}

	log.Debug(ctx, msgNotesSearched, zap.Int("total", total))
	return &entities.NoteList{
		Notes:      notes,
		Pagination: entities.NewPagination(filter.Page, total),
	}, nil
}

// UpdateNote применяет частичное обновление. Пустые и пробельные значения отбрасываются;
// если не осталось ни одного поля, возвращается entities.ErrNoValidUpdates.
func (uc *NoteUseCaseImpl) UpdateNote(ctx context.Context, ownerID, noteID string, update entities.NoteUpdate) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateNote), zap.String("noteID", noteID))

	update = stripEmpty(update)
	if update.IsEmpty() {
		log.Debug(ctx, msgEmptyUpdate)
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, entities.ErrNoValidUpdates)
	}

	note, err := uc.noteRepo.Update(ctx, noteID, ownerID, update)
	if err != nil {
		if !errors.Is(err, entities.ErrNoteNotFound) {
			log.Error(ctx, errCtxUpdatingNote, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	log.Info(ctx, msgNoteUpdated)
	return note, nil
}

// DeleteNote удаляет заметку владельца.
func (uc *NoteUseCaseImpl) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteNote), zap.String("noteID", noteID))

	if err := uc.noteRepo.Delete(ctx, noteID, ownerID); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	log.Info(ctx, msgNoteDeleted)
	return nil
}

func stripEmpty(update entities.NoteUpdate) entities.NoteUpdate {
	return entities.NoteUpdate{
		Title:   nonBlank(update.Title),
		Content: nonBlank(update.Content),
	}
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
