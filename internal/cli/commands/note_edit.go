package commands

import (
	"NoteKeeper/internal/cli/api"
	"NoteKeeper/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type editCmd struct{}

func (editCmd) Name() string        { return "edit" }
func (editCmd) Description() string { return "Overwrite title and content of a note" }
func (editCmd) Usage() string       { return "edit <id> <title> <content>" }

func (editCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}
	req := NoteRequest{Title: args[1], Content: args[2]}
	resp, body, err := api.DoJSON(ctx, http.MethodPut, apiURL(cfg, "/api/notes/"+args[0]), req, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp.StatusCode, body)
	}
	var n noteDTO
	if err := json.Unmarshal(body, &n); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Updated note %s\n", n.ID)
	return nil
}

func init() { RegisterCmd(editCmd{}) }
