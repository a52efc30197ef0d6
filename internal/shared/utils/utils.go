// Утилитарные функции общего назначения
package utils

import "fmt"

func Ptr[T any](v T) *T {
	return &v
}

// FormatAmount форматирует денежную сумму для вывода пользователю:
// префикс валюты + две цифры после запятой (например "Ksh10600.00").
// Округление происходит только при отображении, хранимое значение не трогаем.
func FormatAmount(prefix string, v float64) string {
	return fmt.Sprintf("%s%.2f", prefix, v)
}
