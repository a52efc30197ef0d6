// Package main содержит точку входа CLI-приложения LoanSync.
//
// Пакет отвечает за подгрузку .env (если файл есть) и передачу информации о версии и дате сборки в CLI-слой приложения.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Sayceee/LoanSync1/internal/app/cli"
)

var (
	// buildVersion содержит версию приложения, передаваемую при сборке.
	// По умолчанию используется значение "dev".
	buildVersion = "dev"
	// buildDate содержит дату сборки приложения.
	// По умолчанию используется значение "unknown".
	buildDate = "unknown"
)

func main() {
	// .env не обязателен: секреты (ключ подписи, адрес Redis) можно
	// задавать и через окружение напрямую.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		os.Stderr.WriteString("warning: .env not loaded: " + err.Error() + "\n")
	}

	cli.Execute(buildVersion, buildDate)
}
