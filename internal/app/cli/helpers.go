package cli

import (
	"errors"
	"fmt"
	"time"

	serr "github.com/Sayceee/LoanSync1/internal/shared/errors"
	"github.com/Sayceee/LoanSync1/internal/shared/utils"
)

// loginRequired переводит ErrUnauthorized в подсказку пользователю —
// аналог редиректа защищённой страницы на login.
func loginRequired(err error) error {
	if errors.Is(err, serr.ErrUnauthorized) {
		return errors.New("not logged in, run: loansync login")
	}
	return err
}

// formatDate форматирует дату платежа для вывода ("Mar 1, 2026").
func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// parseDueDate разбирает дату платежа из флага --due.
func parseDueDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --due date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// amount форматирует денежную сумму с префиксом валюты из конфига.
func (a *App) amount(v float64) string {
	prefix := "Ksh"
	if a.Cfg != nil && a.Cfg.Display.CurrencyPrefix != "" {
		prefix = a.Cfg.Display.CurrencyPrefix
	}
	return utils.FormatAmount(prefix, v)
}
