package commands

import (
	"NoteKeeper/internal/cli/api"
	"NoteKeeper/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type getCmd struct{}

func (getCmd) Name() string        { return "get" }
func (getCmd) Description() string { return "Show a single note" }
func (getCmd) Usage() string       { return "get <id>" }

func (getCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.DoJSON(ctx, http.MethodGet, apiURL(cfg, "/api/notes/"+args[0]), nil, token)
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
	fmt.Fprintf(Out, "ID:      %s\nTitle:   %s\nUpdated: %s\n\n%s\n", n.ID, n.Title, n.UpdatedAt.Local().Format("2006-01-02 15:04"), n.Content)
	return nil
}

func init() { RegisterCmd(getCmd{}) }
