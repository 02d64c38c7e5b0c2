package commands

import (
	"AssetRegistry/internal/config"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"AssetRegistry/internal/cli/api"
	"AssetRegistry/internal/cli/auth"
)

type labelsCmd struct{}

func (labelsCmd) Name() string { return "labels" }
func (labelsCmd) Description() string {
	return "Скачать PDF с QR-этикетками для указанных тегов"
}
func (labelsCmd) Usage() string { return "labels <out.pdf> <tag> [<tag>...]" }

func (labelsCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	outPath := args[0]
	tags := args[1:]

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/labels"
	token, _ := auth.LoadToken()
	resp, body, err := api.PostJSON(endpoint, map[string]any{"tags": tags}, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := os.WriteFile(outPath, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Fprintf(Out, "Saved %d labels to %s (%d bytes)\n", len(tags), outPath, len(body))
	return nil
}

func init() { RegisterCmd(labelsCmd{}) }
