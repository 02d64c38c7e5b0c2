package commands

import (
	"AssetRegistry/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"AssetRegistry/internal/cli/api"
	"AssetRegistry/internal/cli/auth"
)

type dataResponse struct {
	Result string `json:"result"`
}

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show current session state" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/status"
	token, _ := auth.LoadToken()
	resp, body, err := api.PostJSON(endpoint, struct{}{}, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var dr dataResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Status:", dr.Result)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
