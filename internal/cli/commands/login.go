package commands

import (
	"NoteKeeper/internal/cli/api"
	"NoteKeeper/internal/cli/auth"
	"NoteKeeper/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth token" }
func (loginCmd) Usage() string       { return "login <login> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	req := LoginRequest{Login: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(ctx, apiURL(cfg, "/api/user/login"), req, "")
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusOK {
		var t tokenDTO
		if err := json.Unmarshal(body, &t); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		if err := auth.SaveToken(cfg.TokenFile, t.Token); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid login or password")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(loginCmd{}) }
