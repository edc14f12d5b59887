package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notely/internal/auth/domain/entities"
	"notely/internal/auth/domain/services"
	noteentities "notely/internal/notes/domain/entities"
)

type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Register(ctx context.Context, username, email, password string) (*services.AuthResult, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResult), args.Error(1)
}

func (m *mockAuthUseCase) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResult), args.Error(1)
}

func (m *mockAuthUseCase) Authenticate(ctx context.Context, token string) (entities.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(entities.Identity), args.Error(1)
}

type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) GetUserProfile(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockNoteUseCase struct {
	mock.Mock
}

func (m *mockNoteUseCase) CreateNote(ctx context.Context, ownerID, title, content string) (*noteentities.Note, error) {
	args := m.Called(ctx, ownerID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*noteentities.Note), args.Error(1)
}

func (m *mockNoteUseCase) GetNote(ctx context.Context, ownerID, noteID string) (*noteentities.Note, error) {
	args := m.Called(ctx, ownerID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*noteentities.Note), args.Error(1)
}

func (m *mockNoteUseCase) ListNotes(ctx context.Context, filter noteentities.ListFilter) (*noteentities.NoteList, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*noteentities.NoteList), args.Error(1)
}

func (m *mockNoteUseCase) SearchNotes(ctx context.Context, filter noteentities.SearchFilter) (*noteentities.NoteList, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*noteentities.NoteList), args.Error(1)
}

func (m *mockNoteUseCase) UpdateNote(ctx context.Context, ownerID, noteID string, update noteentities.NoteUpdate) (*noteentities.Note, error) {
	args := m.Called(ctx, ownerID, noteID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*noteentities.Note), args.Error(1)
}

func (m *mockNoteUseCase) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	return m.Called(ctx, ownerID, noteID).Error(0)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}
