package repo

import "errors"

// Ошибки хранилища активов. Все восстановимые: хендлеры переводят их
// в 4xx/409 и возвращают пользователю.
var (
	// ErrDuplicateTag — попытка создать актив с уже существующим тегом.
	ErrDuplicateTag = errors.New("asset tag already exists")

	// ErrNotFound — обновление по отсутствующему тегу.
	ErrNotFound = errors.New("asset not found")

	// ErrConflict — счётчик обновлений не совпал: запись изменил
	// параллельный писатель.
	ErrConflict = errors.New("asset modified concurrently")
)
