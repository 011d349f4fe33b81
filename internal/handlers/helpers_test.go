package handlers_test

import (
	"NoteKeeper/internal/auth"
	"NoteKeeper/internal/config"
	"NoteKeeper/internal/handlers"
	"NoteKeeper/internal/model"
	"NoteKeeper/internal/repo"
	"NoteKeeper/internal/service"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// --- Mocks ---

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockNoteRepo struct{ mock.Mock }

func (m *mockNoteRepo) Insert(ctx context.Context, note *model.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteRepo) ListByOwner(ctx context.Context, userID int64) ([]model.Note, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepo) FindByIDAndOwner(ctx context.Context, userID int64, id string) (*model.Note, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepo) UpdateByIDAndOwner(ctx context.Context, userID int64, id string, title, content string) (*model.Note, error) {
	args := m.Called(ctx, userID, id, title, content)
	if v, ok := args.Get(0).(*model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepo) DeleteByIDAndOwner(ctx context.Context, userID int64, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ repo.NoteRepository = (*mockNoteRepo)(nil)

// --- Helpers ---

// newTestRouter собирает реальный роутер поверх переданных репозиториев.
func newTestRouter(t *testing.T, ur repo.UserRepository, nr repo.NoteRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(ur)
	noteSvc := service.NewNoteService(nr, logger)
	verifier := auth.NewJWTVerifier(testSecret)

	h := handlers.NewHandler(userSvc, noteSvc, verifier, logger, cfg)
	return h.Router
}

// addAuthHeader подписывает токен для userID и кладёт его в Authorization.
func addAuthHeader(t *testing.T, req *http.Request, userID int64) {
	t.Helper()
	token, err := auth.BuildJWTString(userID, testSecret)
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}
