package commands

import (
	"NoteKeeper/internal/cli/api"
	"NoteKeeper/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// NoteRequest — тело create/update заметки.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Create a new note" }
func (addCmd) Usage() string       { return "add <title> <content>" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}
	req := NoteRequest{Title: args[0], Content: args[1]}
	resp, body, err := api.PostJSON(ctx, apiURL(cfg, "/api/notes"), req, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return serverError(resp.StatusCode, body)
	}
	var n noteDTO
	if err := json.Unmarshal(body, &n); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Created note %s\n", n.ID)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
