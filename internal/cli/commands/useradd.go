package commands

import (
	"AssetRegistry/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"AssetRegistry/internal/cli/api"
	"AssetRegistry/internal/cli/auth"
)

type upsertUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type userAddCmd struct{}

func (userAddCmd) Name() string        { return "useradd" }
func (userAddCmd) Description() string { return "Create or replace a credential (admin only)" }
func (userAddCmd) Usage() string       { return "useradd <username> <password> <admin|user>" }

func (userAddCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/upsert"
	token, _ := auth.LoadToken()
	req := upsertUserRequest{Username: args[0], Password: args[1], Role: args[2]}
	resp, body, err := api.PostJSON(endpoint, req, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintf(Out, "User %q saved with role %q\n", req.Username, req.Role)
		return nil
	case http.StatusUnauthorized:
		return errors.New("not logged in")
	case http.StatusForbidden:
		return errors.New("admin role required")
	case http.StatusBadRequest:
		return fmt.Errorf("rejected: %s", strings.TrimSpace(string(body)))
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(userAddCmd{}) }
