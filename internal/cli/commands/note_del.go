package commands

import (
	"NoteKeeper/internal/cli/api"
	"NoteKeeper/internal/config"
	"context"
	"fmt"
	"net/http"
)

type delCmd struct{}

func (delCmd) Name() string        { return "del" }
func (delCmd) Description() string { return "Delete a note permanently" }
func (delCmd) Usage() string       { return "del <id>" }

func (delCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.DoJSON(ctx, http.MethodDelete, apiURL(cfg, "/api/notes/"+args[0]), nil, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp.StatusCode, body)
	}
	fmt.Fprintf(Out, "Deleted note %s\n", args[0])
	return nil
}

func init() { RegisterCmd(delCmd{}) }
