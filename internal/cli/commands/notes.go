package commands

import (
	"NoteKeeper/internal/cli/api"
	"NoteKeeper/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "List notes, most recently updated first" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.DoJSON(ctx, http.MethodGet, apiURL(cfg, "/api/notes"), nil, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp.StatusCode, body)
	}
	var notes []noteDTO
	if err := json.Unmarshal(body, &notes); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(notes) == 0 {
		fmt.Fprintln(Out, "No notes yet")
		return nil
	}
	for _, n := range notes {
		fmt.Fprintf(Out, "%s  %s  (updated %s)\n", n.ID, n.Title, n.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func init() { RegisterCmd(listCmd{}) }

// serverError переводит не-OK ответ в ошибку команды.
func serverError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("unauthorized, run: login <login> <password>")
	case http.StatusNotFound:
		return fmt.Errorf("note not found")
	case http.StatusBadRequest:
		return fmt.Errorf("bad request: %s", msg)
	default:
		return fmt.Errorf("server status %d: %s", status, msg)
	}
}
