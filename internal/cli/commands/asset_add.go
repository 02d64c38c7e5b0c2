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

type assetAddCmd struct{}

func (assetAddCmd) Name() string { return "asset-add" }
func (assetAddCmd) Description() string {
	return "Создать актив; тег генерирует сервер"
}
func (assetAddCmd) Usage() string {
	return "asset-add <name> <category> <department> <location> <serial> [price]"
}

func (assetAddCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 5 {
		return ErrUsage
	}
	payload := map[string]any{
		"asset_name":    args[0],
		"category":      args[1],
		"department":    args[2],
		"location":      args[3],
		"serial_number": args[4],
	}
	if len(args) > 5 {
		price, err := strconv.ParseFloat(args[5], 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", args[5])
		}
		payload["purchase_price_ghs"] = price
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/assets"
	token, _ := auth.LoadToken()
	resp, body, err := api.PostJSON(endpoint, payload, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusCreated:
		var a model.Asset
		if err := json.Unmarshal(body, &a); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		fmt.Fprintf(Out, "Asset %q created with tag %s\n", a.Name, a.Tag)
		return nil
	case http.StatusConflict:
		// автоматического суффиксования нет: меняем поля и пробуем снова
		return fmt.Errorf("tag already exists: change name/location/department/serial and retry")
	case http.StatusUnauthorized:
		return fmt.Errorf("not logged in")
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(assetAddCmd{}) }
