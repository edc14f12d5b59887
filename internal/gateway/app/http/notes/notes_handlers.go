// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notely/internal/auth/domain/entities"
	"notely/internal/gateway/app/dto"
	"notely/internal/gateway/app/http/binding"
	"notely/internal/gateway/app/http/response"
	"notely/internal/gateway/app/http/validation"
	"notely/internal/notes/ports/api"
	"notely/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreateNote  = "handling create note request"
	LogHandlerGetNote     = "handling get note request"
	LogHandlerListNotes   = "handling list notes request"
	LogHandlerSearchNotes = "handling search notes request"
	LogHandlerUpdateNote  = "handling update note request"
	LogHandlerDeleteNote  = "handling delete note request"
)

// Сообщения успешных ответов.
const (
	MsgNoteCreated     = "Note created successfully"
	MsgNotesRetrieved  = "Notes retrieved successfully"
	MsgNoteRetrieved   = "Note retrieved successfully"
	MsgNoteUpdated     = "Note updated successfully"
	MsgNoteDeleted     = "Note deleted successfully"
	MsgSearchCompleted = "Search completed successfully"
)

// ParamNoteID - имя параметра пути с идентификатором заметки.
const ParamNoteID = "id"

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteUseCase api.NoteUseCase
	validator   *validation.Validator
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase api.NoteUseCase, validator *validation.Validator) *Handler {
	return &Handler{
		noteUseCase: noteUseCase,
		validator:   validator,
	}
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(c fiber.Ctx, identity entities.Identity) error {
	requestCtx := response.Context(c)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := binding.Body(c, h.validator, &req); err != nil {
		return err
	}

	note, err := h.noteUseCase.CreateNote(requestCtx, identity.UserID, req.Title, req.Content)
	if err != nil {
		return fmt.Errorf("creating note: %w", err)
	}

	return response.Created(c, dto.NewNoteResponse(note), MsgNoteCreated)
}

// ListNotes возвращает страницу заметок пользователя с фильтрами.
func (h *Handler) ListNotes(c fiber.Ctx, identity entities.Identity) error {
	requestCtx := response.Context(c)

	query := dto.NewListNotesQuery(c.Queries())
	if err := h.validator.Struct(query); err != nil {
		return fmt.Errorf("validating list query: %w", err)
	}

	filter, err := query.ToFilter(identity.UserID, validation.ParseISO8601)
	if err != nil {
		return fmt.Errorf("building list filter: %w", err)
	}

	logger.Log(requestCtx).Debug(requestCtx, LogHandlerListNotes,
		zap.Int("page", filter.Page.Page),
		zap.Int("limit", filter.Page.Limit))

	result, err := h.noteUseCase.ListNotes(requestCtx, filter)
	if err != nil {
		return fmt.Errorf("listing notes: %w", err)
	}

	return response.Paginated(c, dto.NewNoteListResponse(result.Notes), result.Pagination, MsgNotesRetrieved)
}

// SearchNotes выполняет полнотекстовый поиск по заметкам пользователя.
func (h *Handler) SearchNotes(c fiber.Ctx, identity entities.Identity) error {
	requestCtx := response.Context(c)

	query := dto.NewSearchNotesQuery(c.Queries())
	if err := h.validator.Struct(query); err != nil {
		return fmt.Errorf("validating search query: %w", err)
	}

	logger.Log(requestCtx).Debug(requestCtx, LogHandlerSearchNotes, zap.String("q", query.Query))

	result, err := h.noteUseCase.SearchNotes(requestCtx, query.ToFilter(identity.UserID))
	if err != nil {
		return fmt.Errorf("searching notes: %w", err)
	}

	return response.Paginated(c, dto.NewNoteListResponse(result.Notes), result.Pagination, MsgSearchCompleted)
}

// GetNote возвращает заметку по идентификатору.
func (h *Handler) GetNote(c fiber.Ctx, identity entities.Identity) error {
	requestCtx := response.Context(c)
	noteID := c.Params(ParamNoteID)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerGetNote, zap.String("noteID", noteID))

	note, err := h.noteUseCase.GetNote(requestCtx, identity.UserID, noteID)
	if err != nil {
		return fmt.Errorf("getting note: %w", err)
	}

	return response.Success(c, dto.NewNoteResponse(note), MsgNoteRetrieved)
}

// UpdateNote частично обновляет заметку.
func (h *Handler) UpdateNote(c fiber.Ctx, identity entities.Identity) error {
	requestCtx := response.Context(c)
	noteID := c.Params(ParamNoteID)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerUpdateNote, zap.String("noteID", noteID))

	var req dto.UpdateNoteRequest
	if err := binding.Body(c, h.validator, &req); err != nil {
		return err
	}

	note, err := h.noteUseCase.UpdateNote(requestCtx, identity.UserID, noteID, req.ToEntity())
	if err != nil {
		return fmt.Errorf("updating note: %w", err)
	}

	return response.Success(c, dto.NewNoteResponse(note), MsgNoteUpdated)
}

// DeleteNote удаляет заметку и возвращает ее идентификатор.
func (h *Handler) DeleteNote(c fiber.Ctx, identity entities.Identity) error {
	requestCtx := response.Context(c)
	noteID := c.Params(ParamNoteID)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerDeleteNote, zap.String("noteID", noteID))

	if err := h.noteUseCase.DeleteNote(requestCtx, identity.UserID, noteID); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	return response.Success(c, dto.DeletedNoteResponse{ID: noteID}, MsgNoteDeleted)
}
