package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sayceee/LoanSync1/internal/app/service"
)

// NewDashboardCmd создаёт CLI-команду сводки по займам.
//
// Выводит:
//   - приветствие;
//   - общий неоплаченный долг (сумма totalPayable по неоплаченным займам);
//   - ближайшие платежи по возрастанию даты;
//   - напоминания о платежах в ближайшие 7 дней (очередь уведомлений
//     вычитывается здесь же, никаких всплывающих таймеров).
func NewDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "dashboard",
		Short:        "Сводка: долг, ближайшие платежи, напоминания",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Services.Session.Require(cmd.Context())
			if err != nil {
				return loginRequired(err)
			}

			out := cmd.OutOrStdout()
			ledger := app.Services.Ledger
			loans := sess.User.Loans

			fmt.Fprintf(out, "Welcome back, %s!\n\n", sess.User.FirstName)
			fmt.Fprintf(out, "Total debt: %s\n\n", app.amount(ledger.TotalOutstanding(loans)))

			fmt.Fprintln(out, "Upcoming payments:")
			upcoming := ledger.UpcomingPayments(loans)
			if len(upcoming) == 0 {
				fmt.Fprintln(out, "  No upcoming payments")
			}
			for _, l := range upcoming {
				fmt.Fprintf(out, "  %-20s due %s  %s\n", l.Provider, formatDate(l.DueDate), app.amount(l.TotalPayable))
			}

			var queue service.AlertQueue
			queue.Push(ledger.DueSoonAlerts(loans, time.Now())...)
			if queue.Len() > 0 {
				fmt.Fprintln(out)
				for _, a := range queue.Drain() {
					fmt.Fprintf(out, "! %s\n", a.Message())
				}
			}
			return nil
		},
	}
}

// NewAlertsCmd создаёт CLI-команду напоминаний о скорых платежах.
//
// Показывает только займы, до платежа по которым осталось от 1 до 7 дней
// (окно настраивается в конфиге). Просроченные займы сюда не попадают.
func NewAlertsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "alerts",
		Short:        "Напоминания о платежах в ближайшие 7 дней",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Services.Session.Require(cmd.Context())
			if err != nil {
				return loginRequired(err)
			}

			var queue service.AlertQueue
			queue.Push(app.Services.Ledger.DueSoonAlerts(sess.User.Loans, time.Now())...)

			out := cmd.OutOrStdout()
			if queue.Len() == 0 {
				fmt.Fprintln(out, "no payments due soon")
				return nil
			}
			for _, a := range queue.Drain() {
				fmt.Fprintln(out, a.Message())
			}
			return nil
		},
	}
}
