// Package xlsx хранит реестр активов в книге Excel — альтернатива SQL-бэкенду
// с тем же контрактом repo.AssetRepository. Файл открывается на время одного
// вызова и сразу закрывается; доступ в рамках процесса сериализуется мьютексом.
package xlsx

import (
	"AssetRegistry/internal/model"
	"AssetRegistry/internal/repo"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Assets"

// Порядок колонок повторяет SQL-схему (см. model.Asset).
var columns = []string{
	"asset_tag", "asset_name", "category", "description", "serial_number",
	"assigned_to", "department", "purchase_date", "purchase_price_ghs",
	"condition", "location", "status", "warranty_end_date",
	"maintenance_schedule", "date_added", "last_updated", "disposal_date",
	"notes", "update_count", "update_history",
}

type assetRepo struct {
	path string
	mu   sync.Mutex
}

// NewAssetRepository создаёт репозиторий над книгой по указанному пути.
// Книга с заголовочной строкой создаётся при первом обращении.
func NewAssetRepository(path string) repo.AssetRepository {
	return &assetRepo{path: path}
}

func (r *assetRepo) open() (*excelize.File, error) {
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		f := excelize.NewFile()
		idx, err := f.NewSheet(sheetName)
		if err != nil {
			return nil, err
		}
		f.SetActiveSheet(idx)
		_ = f.DeleteSheet("Sheet1")
		header := make([]any, len(columns))
		for i, c := range columns {
			header[i] = c
		}
		if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
			return nil, err
		}
		if err := f.SaveAs(r.path); err != nil {
			return nil, fmt.Errorf("create workbook: %w", err)
		}
		return f, nil
	}
	return excelize.OpenFile(r.path)
}

func assetToRow(a *model.Asset) []any {
	disposal := ""
	if a.DisposalDate != nil {
		disposal = *a.DisposalDate
	}
	return []any{
		a.Tag, a.Name, a.Category, a.Description, a.SerialNumber,
		a.AssignedTo, a.Department, a.PurchaseDate,
		strconv.FormatFloat(a.PurchasePrice, 'f', -1, 64),
		a.Condition, a.Location, a.Status, a.WarrantyEndDate,
		a.MaintenanceSchedule, a.DateAdded, a.LastUpdated, disposal,
		a.Notes, strconv.FormatInt(a.UpdateCount, 10), a.UpdateHistory,
	}
}

func rowToAsset(row []string) model.Asset {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	price, _ := strconv.ParseFloat(get(8), 64)
	count, _ := strconv.ParseInt(get(18), 10, 64)
	a := model.Asset{
		Tag:                 get(0),
		Name:                get(1),
		Category:            get(2),
		Description:         get(3),
		SerialNumber:        get(4),
		AssignedTo:          get(5),
		Department:          get(6),
		PurchaseDate:        get(7),
		PurchasePrice:       price,
		Condition:           get(9),
		Location:            get(10),
		Status:              get(11),
		WarrantyEndDate:     get(12),
		MaintenanceSchedule: get(13),
		DateAdded:           get(14),
		LastUpdated:         get(15),
		Notes:               get(17),
		UpdateCount:         count,
		UpdateHistory:       get(19),
	}
	if d := get(16); d != "" {
		a.DisposalDate = &d
	}
	return a
}

// findRow возвращает номер строки (1-based) с указанным тегом, 0 если нет.
func findRow(f *excelize.File, tag string) (int, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		if i == 0 {
			continue // заголовок
		}
		if len(row) > 0 && row[0] == tag {
			return i + 1, nil
		}
	}
	return 0, nil
}

func (r *assetRepo) Create(_ context.Context, a *model.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.open()
	if err != nil {
		return err
	}
	defer f.Close()

	rowNum, err := findRow(f, a.Tag)
	if err != nil {
		return err
	}
	if rowNum > 0 {
		return repo.ErrDuplicateTag
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return err
	}
	row := assetToRow(a)
	cell, _ := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
		return err
	}
	return f.Save()
}

func (r *assetRepo) GetByTag(_ context.Context, tag string) (*model.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) > 0 && row[0] == tag {
			a := rowToAsset(row)
			return &a, nil
		}
	}
	return nil, nil
}

func (r *assetRepo) ListAll(_ context.Context) ([]model.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	out := make([]model.Asset, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		out = append(out, rowToAsset(row))
	}
	// date_added по убыванию; стабильная сортировка держит порядок
	// повторных вызовов неизменным.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateAdded > out[j].DateAdded
	})
	return out, nil
}

func (r *assetRepo) UpdateFields(_ context.Context, tag string, expectedCount int64, changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}
	delete(changes, "asset_tag")

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.open()
	if err != nil {
		return err
	}
	defer f.Close()

	rowNum, err := findRow(f, tag)
	if err != nil {
		return err
	}
	if rowNum == 0 {
		return repo.ErrNotFound
	}

	countCell, _ := excelize.CoordinatesToCellName(19, rowNum)
	raw, err := f.GetCellValue(sheetName, countCell)
	if err != nil {
		return err
	}
	current, _ := strconv.ParseInt(raw, 10, 64)
	if current != expectedCount {
		return repo.ErrConflict
	}

	colIndex := make(map[string]int, len(columns))
	for i, c := range columns {
		colIndex[c] = i + 1
	}
	for name, v := range changes {
		idx, ok := colIndex[name]
		if !ok {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(idx, rowNum)
		if err := f.SetCellValue(sheetName, cell, cellValue(v)); err != nil {
			return err
		}
	}
	return f.Save()
}

func cellValue(v any) any {
	switch x := v.(type) {
	case nil:
		return ""
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return v
	}
}
