package model

import "time"

// Note — заметка пользователя. Владелец фиксируется при создании
// и дальше не меняется; все выборки и мутации фильтруются по UserID.
type Note struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index" json:"user_id"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
