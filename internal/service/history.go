package service

import "time"

// TimestampLayout — локальное время второй точности; сортируется как строка.
const TimestampLayout = "2006-01-02 15:04:05"

// Now возвращает текущую метку времени в формате журнала обновлений.
func Now() string {
	return time.Now().Format(TimestampLayout)
}

// NextUpdate — чистое преобразование счётчика и журнала обновлений при
// каждом изменении (но не при создании): счётчик +1, метка дописывается
// в конец журнала через " | ". Персистит результат вызывающий.
func NextUpdate(oldCount int64, oldHistory, now string) (int64, string) {
	if oldHistory == "" {
		return oldCount + 1, now
	}
	return oldCount + 1, oldHistory + " | " + now
}
