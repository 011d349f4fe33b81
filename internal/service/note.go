package service

import (
	"NoteKeeper/internal/model"
	"NoteKeeper/internal/repo"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrTitleRequired — пустой или пробельный title.
	ErrTitleRequired = errors.New("title is required")
	// ErrContentRequired — пустой или пробельный content.
	ErrContentRequired = errors.New("content is required")
	// ErrNoteNotFound — заметки нет либо она принадлежит другому пользователю.
	// Различие наружу не отдаём, чтобы не раскрывать чужие id.
	ErrNoteNotFound = errors.New("note not found")
)

// NoteService инкапсулирует бизнес-логику работы с заметками.
// Все операции требуют идентификатор пользователя, полученный из Auth-мидлвари.
type NoteService struct {
	repo   repo.NoteRepository
	logger *zap.SugaredLogger
}

func NewNoteService(r repo.NoteRepository, logger *zap.SugaredLogger) *NoteService {
	return &NoteService{repo: r, logger: logger}
}

// validateFields обрезает пробелы и проверяет обязательность полей.
func validateFields(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return "", "", ErrTitleRequired
	}
	if content == "" {
		return "", "", ErrContentRequired
	}
	return title, content, nil
}

// Create сохраняет новую заметку владельца userID.
func (s *NoteService) Create(ctx context.Context, userID int64, title, content string) (*model.Note, error) {
	title, content, err := validateFields(title, content)
	if err != nil {
		return nil, err
	}

	note := &model.Note{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Content: content,
	}
	if err := s.repo.Insert(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// List возвращает заметки пользователя, свежие по updated_at первыми.
// Отсутствие заметок — пустой список, не ошибка.
func (s *NoteService) List(ctx context.Context, userID int64) ([]model.Note, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// Get возвращает заметку по id, если она принадлежит пользователю.
func (s *NoteService) Get(ctx context.Context, userID int64, id string) (*model.Note, error) {
	note, err := s.repo.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

// Update перезаписывает title/content и обновляет updated_at.
// Предварительная проверка существования даёт каллеру честный 404;
// сама мутация всё равно фильтруется по id+владельцу, так что гонка
// с конкурентным удалением максимум превратит обновление в not found.
func (s *NoteService) Update(ctx context.Context, userID int64, id, title, content string) (*model.Note, error) {
	title, content, err := validateFields(title, content)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByIDAndOwner(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	note, err := s.repo.UpdateByIDAndOwner(ctx, userID, id, title, content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// заметка исчезла между проверкой и мутацией
			s.logger.Warnw("note vanished before update", "user_id", userID, "id", id)
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

// Delete безвозвратно удаляет заметку пользователя.
func (s *NoteService) Delete(ctx context.Context, userID int64, id string) error {
	if _, err := s.repo.FindByIDAndOwner(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return err
	}

	if err := s.repo.DeleteByIDAndOwner(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warnw("note vanished before delete", "user_id", userID, "id", id)
			return ErrNoteNotFound
		}
		return err
	}
	return nil
}
