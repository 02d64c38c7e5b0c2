package commands

import (
	"AssetRegistry/internal/config"
	"AssetRegistry/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"AssetRegistry/internal/cli/api"
	"AssetRegistry/internal/cli/auth"
)

type assetUpdateCmd struct{}

func (assetUpdateCmd) Name() string { return "asset-update" }
func (assetUpdateCmd) Description() string {
	return "Частичное обновление актива по тегу"
}
func (assetUpdateCmd) Usage() string {
	return "asset-update <tag> <field>=<value> [<field>=<value>...]"
}

func (assetUpdateCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	tag := args[0]

	changes := make(map[string]any, len(args)-1)
	for _, kv := range args[1:] {
		field, value, ok := strings.Cut(kv, "=")
		if !ok || field == "" {
			return ErrUsage
		}
		if field == "purchase_price_ghs" {
			price, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("invalid price %q", value)
			}
			changes[field] = price
			continue
		}
		changes[field] = value
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/assets/" + tag
	token, _ := auth.LoadToken()
	resp, body, err := api.PatchJSON(endpoint, changes, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		var a model.Asset
		if err := json.Unmarshal(body, &a); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		fmt.Fprintf(Out, "Asset %s updated (update #%d)\n", a.Tag, a.UpdateCount)
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("asset %s not found", tag)
	case http.StatusConflict:
		return fmt.Errorf("asset %s was modified concurrently, re-read and retry", tag)
	case http.StatusUnauthorized:
		return fmt.Errorf("not logged in")
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(assetUpdateCmd{}) }
