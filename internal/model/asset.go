package model

// Asset — запись реестра активов. Первичный ключ — сгенерированный тег;
// после создания тег не меняется.
type Asset struct {
	Tag string `gorm:"column:asset_tag;primaryKey" json:"asset_tag"`

	Name         string `gorm:"column:asset_name" json:"asset_name"`
	Category     string `gorm:"column:category" json:"category"`
	Description  string `gorm:"column:description" json:"description"`
	SerialNumber string `gorm:"column:serial_number" json:"serial_number"`
	AssignedTo   string `gorm:"column:assigned_to" json:"assigned_to"`
	Department   string `gorm:"column:department" json:"department"`

	// Даты храним ISO-строками (YYYY-MM-DD), как в исходной схеме.
	PurchaseDate  string  `gorm:"column:purchase_date" json:"purchase_date"`
	PurchasePrice float64 `gorm:"column:purchase_price_ghs" json:"purchase_price_ghs"`

	Condition string `gorm:"column:condition" json:"condition"`
	Location  string `gorm:"column:location" json:"location"`
	Status    string `gorm:"column:status" json:"status"`

	WarrantyEndDate     string `gorm:"column:warranty_end_date" json:"warranty_end_date"`
	MaintenanceSchedule string `gorm:"column:maintenance_schedule" json:"maintenance_schedule"`

	// Метки времени второй точности в локальном времени: YYYY-MM-DD HH:MM:SS.
	DateAdded   string `gorm:"column:date_added" json:"date_added"`
	LastUpdated string `gorm:"column:last_updated" json:"last_updated"`

	// nil — дата выбытия не назначена (не пустая строка и не sentinel).
	DisposalDate *string `gorm:"column:disposal_date" json:"disposal_date,omitempty"`

	Notes string `gorm:"column:notes" json:"notes"`

	UpdateCount   int64  `gorm:"column:update_count;not null;default:0" json:"update_count"`
	UpdateHistory string `gorm:"column:update_history" json:"update_history"`
}

func (Asset) TableName() string { return "assets" }

// Закрытые наборы значений для форм и отчётов.
var (
	CategoryOptions   = []string{"Laptop", "Desktop", "Printer", "Vehicle", "Furniture", "Tool", "Phone", "Other"}
	DepartmentOptions = []string{"IT", "HR", "Finance", "Operations", "Admin", "Marketing", "Logistics", "Other"}
	ConditionOptions  = []string{"New", "Good", "Fair", "Poor", "Broken"}
	StatusOptions     = []string{"In Use", "In Storage", "Under Maintenance", "Disposed", "Lost"}
)

const (
	StatusInUse    = "In Use"
	StatusDisposed = "Disposed"
)
