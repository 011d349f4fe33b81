package commands

import (
	"NoteKeeper/internal/cli/auth"
	"NoteKeeper/internal/config"
	"errors"
	"strings"
	"time"
)

// noteDTO — представление заметки в ответах сервера.
type noteDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type tokenDTO struct {
	Token string `json:"token"`
}

func apiURL(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// requireToken загружает сохранённый токен; без него команда не имеет смысла.
func requireToken(cfg *config.Config) (string, error) {
	token, err := auth.LoadToken(cfg.TokenFile)
	if err != nil {
		return "", errors.New("not logged in, run: login <login> <password>")
	}
	return token, nil
}
