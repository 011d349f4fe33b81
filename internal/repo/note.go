package repo

import (
	"NoteKeeper/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// NoteRepository определяет контракт доступа к Note для слоя сервиса.
// Каждый запрос фильтруется по владельцу: чужая запись неотличима
// от отсутствующей, обе отдают gorm.ErrRecordNotFound.
type NoteRepository interface {
	// Insert сохраняет новую заметку.
	Insert(ctx context.Context, note *model.Note) error

	// ListByOwner возвращает все заметки пользователя,
	// отсортированные по updated_at по убыванию.
	ListByOwner(ctx context.Context, userID int64) ([]model.Note, error)

	// FindByIDAndOwner возвращает заметку по id, если она принадлежит пользователю.
	FindByIDAndOwner(ctx context.Context, userID int64, id string) (*model.Note, error)

	// UpdateByIDAndOwner перезаписывает title/content и обновляет updated_at.
	// Мутация сама фильтруется по id+владельцу, проверка существования
	// на уровне сервиса — только для формы ответа.
	UpdateByIDAndOwner(ctx context.Context, userID int64, id string, title, content string) (*model.Note, error)

	// DeleteByIDAndOwner безвозвратно удаляет заметку пользователя.
	DeleteByIDAndOwner(ctx context.Context, userID int64, id string) error
}

type noteRepo struct {
	db *gorm.DB
}

// NewNoteRepository создаёт реализацию репозитория для Note.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Insert(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepo) ListByOwner(ctx context.Context, userID int64) ([]model.Note, error) {
	notes := make([]model.Note, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepo) FindByIDAndOwner(ctx context.Context, userID int64, id string) (*model.Note, error) {
	var n model.Note
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *noteRepo) UpdateByIDAndOwner(ctx context.Context, userID int64, id string, title, content string) (*model.Note, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"title":      title,
			"content":    content,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// запись исчезла или принадлежит другому пользователю
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByIDAndOwner(ctx, userID, id)
}

func (r *noteRepo) DeleteByIDAndOwner(ctx context.Context, userID int64, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Note{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
