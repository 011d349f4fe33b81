package commands

import (
	"NoteKeeper/internal/cli/api"
	"NoteKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Check that the stored token is still accepted" }
func (statusCmd) Usage() string       { return "status" }

// Run проверяет сессию реальным запросом к списку заметок.
func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.DoJSON(ctx, http.MethodGet, apiURL(cfg, "/api/notes"), nil, token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, "Session OK")
		return nil
	case http.StatusUnauthorized:
		return errors.New("token expired or invalid, run: login <login> <password>")
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(statusCmd{}) }
