package service

import "strings"

const schemeSeparator = "://"

// NormalizeID приводит идентификатор к канонической форме: срезает все
// ведущие и завершающие '/' и переводит в нижний регистр.
// ok == false, если после обрезки ничего не осталось.
func NormalizeID(raw string) (id string, ok bool) {
	id = strings.Trim(raw, "/")
	if id == "" {
		return "", false
	}
	return strings.ToLower(id), true
}

// EnsureScheme добавляет https:// к адресу без разделителя схемы.
func EnsureScheme(rawURL string) string {
	if strings.Contains(rawURL, schemeSeparator) {
		return rawURL
	}
	return "https://" + rawURL
}
