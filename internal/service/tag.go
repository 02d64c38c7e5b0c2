package service

import "strings"

// GenerateTag строит тег актива из полей формы на момент создания.
// Чистая функция: одни и те же поля дают один и тот же тег.
//
// Формат: NAME-LOC-DEP-SSSS. Пустое поле замещается литералом
// ("AST"/"LOC"/"GEN") до усечения; поля короче трёх символов берутся
// как есть. Серийный номер — строка, дополняется нулями слева до 4;
// пустой серийник даёт ровно "0000".
//
// Генерация выполняется один раз: при коллизии тега создание отклоняется,
// автоматического суффиксования нет.
func GenerateTag(name, location, department, serial string) string {
	return prefix(name, "AST") + "-" + prefix(location, "LOC") + "-" +
		prefix(department, "GEN") + "-" + padSerial(serial)
}

// prefix — первые три символа значения (или значение целиком, если короче)
// в верхнем регистре; пустое значение замещается def до усечения.
func prefix(v, def string) string {
	if v == "" {
		v = def
	}
	r := []rune(v)
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}

func padSerial(serial string) string {
	if serial == "" {
		return "0000"
	}
	for len(serial) < 4 {
		serial = "0" + serial
	}
	return serial
}
