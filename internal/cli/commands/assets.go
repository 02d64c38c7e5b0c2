package commands

import (
	"AssetRegistry/internal/config"
	"AssetRegistry/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"AssetRegistry/internal/cli/api"
	"AssetRegistry/internal/cli/auth"
)

type assetsCmd struct{}

func (assetsCmd) Name() string { return "assets" }
func (assetsCmd) Description() string {
	return "Показать все активы (новые первыми)"
}
func (assetsCmd) Usage() string { return "assets" }

func (assetsCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/assets"
	token, _ := auth.LoadToken()
	resp, body, err := api.GetJSON(endpoint, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var assets []model.Asset
	if err := json.Unmarshal(body, &assets); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(assets) == 0 {
		fmt.Fprintln(Out, "Нет активов")
		return nil
	}
	for _, a := range assets {
		fmt.Fprintf(Out, "- %s  %s  [%s/%s]  status=%s  updates=%d\n",
			a.Tag, a.Name, a.Category, a.Department, a.Status, a.UpdateCount)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(assets))
	return nil
}

func init() { RegisterCmd(assetsCmd{}) }
