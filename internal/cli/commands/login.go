package commands

import (
	"AssetRegistry/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"AssetRegistry/internal/cli/api"
	fsrepo "AssetRegistry/internal/cli/repo/fs"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth cookie" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	username := args[0]
	password := args[1]
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/login"
	req := loginRequest{Username: username, Password: password}
	resp, body, err := api.PostJSON(endpoint, req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		if err := api.PersistAuthFromResponse(resp); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		_ = fsrepo.AuthFSStore{}.SaveLogin(username)
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid username or password")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(loginCmd{}) }
