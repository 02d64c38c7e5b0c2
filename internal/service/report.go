package service

import (
	"AssetRegistry/internal/model"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Filter — параметры отбора для отчёта. Пустой срез — фильтр выключен.
type Filter struct {
	Query       string   `json:"query"`
	Categories  []string `json:"categories"`
	Departments []string `json:"departments"`
	Conditions  []string `json:"conditions"`
	Statuses    []string `json:"statuses"`

	// Включительный диапазон по дате покупки (YYYY-MM-DD). Активен, когда
	// заданы обе границы; записи с нечитаемой датой при этом исключаются.
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

// Summary — агрегаты по отфильтрованному набору.
type Summary struct {
	TotalAssets  int            `json:"total_assets"`
	TotalValue   float64        `json:"total_value"`
	InUse        int            `json:"in_use"`
	Disposed     int            `json:"disposed"`
	ByCategory   map[string]int `json:"by_category"`
	ByDepartment map[string]int `json:"by_department"`
	ByCondition  map[string]int `json:"by_condition"`
	ByStatus     map[string]int `json:"by_status"`
	Assets       []model.Asset  `json:"assets"`
}

// Report — чистый фильтр и агрегация над коллекцией активов; порядок
// входа сохраняется. Поиск — подстрока без учёта регистра по имени,
// тегу и описанию (достаточно совпадения любого из трёх).
func Report(assets []model.Asset, f Filter) Summary {
	var from, to time.Time
	rangeActive := false
	if f.DateFrom != "" && f.DateTo != "" {
		var err1, err2 error
		from, err1 = time.Parse(dateLayout, f.DateFrom)
		to, err2 = time.Parse(dateLayout, f.DateTo)
		rangeActive = err1 == nil && err2 == nil
	}

	sum := Summary{
		ByCategory:   map[string]int{},
		ByDepartment: map[string]int{},
		ByCondition:  map[string]int{},
		ByStatus:     map[string]int{},
		Assets:       []model.Asset{},
	}

	q := strings.ToLower(f.Query)
	for _, a := range assets {
		if q != "" && !matchesQuery(a, q) {
			continue
		}
		if !inSet(a.Category, f.Categories) ||
			!inSet(a.Department, f.Departments) ||
			!inSet(a.Condition, f.Conditions) ||
			!inSet(a.Status, f.Statuses) {
			continue
		}
		if rangeActive {
			d, err := time.Parse(dateLayout, a.PurchaseDate)
			if err != nil || d.Before(from) || d.After(to) {
				continue
			}
		}

		sum.TotalAssets++
		sum.TotalValue += a.PurchasePrice
		if a.Status == model.StatusInUse {
			sum.InUse++
		}
		if a.Status == model.StatusDisposed {
			sum.Disposed++
		}
		sum.ByCategory[a.Category]++
		sum.ByDepartment[a.Department]++
		sum.ByCondition[a.Condition]++
		sum.ByStatus[a.Status]++
		sum.Assets = append(sum.Assets, a)
	}
	return sum
}

func matchesQuery(a model.Asset, q string) bool {
	return strings.Contains(strings.ToLower(a.Name), q) ||
		strings.Contains(strings.ToLower(a.Tag), q) ||
		strings.Contains(strings.ToLower(a.Description), q)
}

// inSet — принадлежность множеству; пустой фильтр пропускает всё.
func inSet(v string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
