package model

// Роли пользователей — закрытый набор.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User — учётная запись. Пароль не хранится: только PBKDF2-верификатор
// и соль (обе в base64).
type User struct {
	Username     string `gorm:"column:username;primaryKey" json:"username"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Salt         string `gorm:"column:salt;not null" json:"-"`
	Role         string `gorm:"column:role;not null" json:"role"`
}

func (User) TableName() string { return "users" }

// ValidRole сообщает, входит ли role в закрытый набор ролей.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
