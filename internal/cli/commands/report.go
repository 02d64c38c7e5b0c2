package commands

import (
	"AssetRegistry/internal/config"
	"AssetRegistry/internal/service"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"AssetRegistry/internal/cli/api"
	"AssetRegistry/internal/cli/auth"
)

type reportCmd struct{}

func (reportCmd) Name() string { return "report" }
func (reportCmd) Description() string {
	return "Сводка по активам; опциональный текстовый фильтр"
}
func (reportCmd) Usage() string { return "report [query]" }

func (reportCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	filter := service.Filter{}
	if len(args) > 0 {
		filter.Query = strings.Join(args, " ")
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/report"
	token, _ := auth.LoadToken()
	resp, body, err := api.PostJSON(endpoint, filter, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var sum service.Summary
	if err := json.Unmarshal(body, &sum); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	fmt.Fprintf(Out, "Total assets: %d\n", sum.TotalAssets)
	fmt.Fprintf(Out, "Total value:  %.2f\n", sum.TotalValue)
	fmt.Fprintf(Out, "In use:       %d\n", sum.InUse)
	fmt.Fprintf(Out, "Disposed:     %d\n", sum.Disposed)
	if len(sum.ByCategory) > 0 {
		fmt.Fprintln(Out, "By category:")
		for k, v := range sum.ByCategory {
			fmt.Fprintf(Out, "  %-12s %d\n", k, v)
		}
	}
	if len(sum.ByDepartment) > 0 {
		fmt.Fprintln(Out, "By department:")
		for k, v := range sum.ByDepartment {
			fmt.Fprintf(Out, "  %-12s %d\n", k, v)
		}
	}
	return nil
}

func init() { RegisterCmd(reportCmd{}) }
