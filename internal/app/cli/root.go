// Package cli реализует командный интерфейс (CLI) приложения LoanSync.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку конфигурации и инициализацию хранилища/сервисов;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sayceee/LoanSync1/internal/app/config"
	"github.com/Sayceee/LoanSync1/internal/app/service"
	"github.com/Sayceee/LoanSync1/internal/shared/logger"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// Экземпляр App создаётся при построении root-команды и передаётся в
// подкоманды. В тестах поля заполняются вручную — тогда инициализация
// в PersistentPreRunE пропускается.
type App struct {
	// ConfigPath — путь к файлу конфигурации (пусто = путь по умолчанию).
	ConfigPath string

	// Cfg — загруженная конфигурация приложения.
	Cfg *config.Config
	// Services — сервисный слой (аккаунты, займы, сессия).
	Services *service.Services
	// Log — файловый логгер приложения.
	Log *logger.AppLogger
}

// logOp записывает результат операции в лог приложения.
func (a *App) logOp(op, userID string, err error, started time.Time) {
	if a.Log == nil {
		return
	}
	a.Log.LogOperation(op, userID, err, float64(time.Since(started).Microseconds())/1000.0)
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке
// (команда version). В PersistentPreRunE выполняется инициализация
// состояния приложения: загружается конфигурация, создаются хранилище,
// сервисы и логгер.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "loansync",
		Short: "LoanSync CLI — персональный трекер займов",
		Long: `LoanSync CLI.

Команды:
  register   Регистрация нового пользователя
  login      Вход (создать сессию)
  logout     Выход (сбросить сессию)
  me         Показать текущую сессию
  loan       Операции над займами (add/list/pay/remove)
  dashboard  Сводка: долг, ближайшие платежи, напоминания
  alerts     Напоминания о платежах в ближайшие 7 дней
  calc       Калькулятор простых процентов
  tips       Финансовые советы
  version    Версия и дата сборки

Примеры:

Регистрация:
  loansync register --first-name Ivan --last-name Petrov --email test@example.com --phone 0712345678

Вход:
  loansync login --email test@example.com
  (пароль запрашивается со скрытым вводом; сессия сохраняется локально)

Добавить займ:
  loansync loan add --provider "M-Shwari" --principal 10000 --rate 12 --term 6 --term-unit months --due 2026-03-01
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// тесты заполняют App сами — ничего не трогаем
			if app.Services != nil {
				return nil
			}

			path := app.ConfigPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			app.Cfg = cfg

			st, err := NewStorage(cmd.Context(), cfg.Storage)
			if err != nil {
				return err
			}
			app.Services = service.NewServices(st, cfg)
			app.Log = logger.NewAppLogger(cfg.Log.Dir)
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "path to loansync.yaml (default: ~/.loansync/loansync.yaml)")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewLogoutCmd(app))
	cmd.AddCommand(NewMeCmd(app))
	cmd.AddCommand(NewLoanCmd(app))
	cmd.AddCommand(NewDashboardCmd(app))
	cmd.AddCommand(NewAlertsCmd(app))
	cmd.AddCommand(NewCalcCmd(app))
	cmd.AddCommand(NewTipsCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего
// процесс завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
