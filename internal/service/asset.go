package service

import (
	"AssetRegistry/internal/model"
	"AssetRegistry/internal/repo"
	"context"
)

// AssetInput — поля формы актива. Тег, счётчик и журнал обновлений
// в форме отсутствуют: они назначаются здесь.
type AssetInput struct {
	Name                string
	Category            string
	Description         string
	SerialNumber        string
	AssignedTo          string
	Department          string
	PurchaseDate        string
	PurchasePrice       float64
	Condition           string
	Location            string
	Status              string
	WarrantyEndDate     string
	MaintenanceSchedule string
	DisposalDate        *string
	Notes               string
}

// AssetService — создание и обновление активов: генерация тега,
// ведение счётчика и журнала обновлений.
type AssetService struct {
	repo repo.AssetRepository
}

func NewAssetService(r repo.AssetRepository) *AssetService {
	return &AssetService{repo: r}
}

// Create генерирует тег из полей формы и сохраняет запись со счётчиком 0
// и пустым журналом. Коллизия тега — repo.ErrDuplicateTag; вызывающий
// меняет поля и пробует снова.
func (s *AssetService) Create(ctx context.Context, in AssetInput) (*model.Asset, error) {
	now := Now()
	a := &model.Asset{
		Tag:                 GenerateTag(in.Name, in.Location, in.Department, in.SerialNumber),
		Name:                in.Name,
		Category:            in.Category,
		Description:         in.Description,
		SerialNumber:        in.SerialNumber,
		AssignedTo:          in.AssignedTo,
		Department:          in.Department,
		PurchaseDate:        in.PurchaseDate,
		PurchasePrice:       in.PurchasePrice,
		Condition:           in.Condition,
		Location:            in.Location,
		Status:              in.Status,
		WarrantyEndDate:     in.WarrantyEndDate,
		MaintenanceSchedule: in.MaintenanceSchedule,
		DateAdded:           now,
		LastUpdated:         now,
		DisposalDate:        in.DisposalDate,
		Notes:               in.Notes,
		UpdateCount:         0,
		UpdateHistory:       "",
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update применяет частичное обновление по тегу: изменяются только
// переданные колонки, тег остаётся прежним, счётчик и журнал ведутся
// автоматически. Обновление условно по текущему счётчику — параллельный
// писатель не теряется молча (repo.ErrConflict).
func (s *AssetService) Update(ctx context.Context, tag string, changes map[string]any) (*model.Asset, error) {
	existing, err := s.repo.GetByTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, repo.ErrNotFound
	}

	now := Now()
	count, history := NextUpdate(existing.UpdateCount, existing.UpdateHistory, now)
	changes["last_updated"] = now
	changes["update_count"] = count
	changes["update_history"] = history

	if err := s.repo.UpdateFields(ctx, tag, existing.UpdateCount, changes); err != nil {
		return nil, err
	}
	return s.repo.GetByTag(ctx, tag)
}

// Get — точечный поиск; (nil, nil) если тега нет.
func (s *AssetService) Get(ctx context.Context, tag string) (*model.Asset, error) {
	return s.repo.GetByTag(ctx, tag)
}

// List — все активы, новые первыми.
func (s *AssetService) List(ctx context.Context) ([]model.Asset, error) {
	return s.repo.ListAll(ctx)
}
