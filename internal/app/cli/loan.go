package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sayceee/LoanSync1/internal/app/models"
)

// NewLoanCmd создаёт родительскую команду операций над займами.
//
// Подкоманды:
//
//	loan add     — добавить займ (с расчётом процентов)
//	loan list    — показать займы текущего пользователя
//	loan pay     — отметить займ оплаченным
//	loan remove  — удалить займ
//
// Все подкоманды требуют активную сессию.
func NewLoanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Операции над займами",
	}

	cmd.AddCommand(newLoanAddCmd(app))
	cmd.AddCommand(newLoanListCmd(app))
	cmd.AddCommand(newLoanPayCmd(app))
	cmd.AddCommand(newLoanRemoveCmd(app))

	return cmd
}

// newLoanAddCmd — команда добавления займа.
//
// Срок задаётся величиной (--term) и единицей (--term-unit months|years).
// Interest и totalPayable считаются один раз при создании и фиксируются
// в записи займа.
//
// Пример:
//
//	loansync loan add --provider "M-Shwari" --principal 10000 --rate 12 --term 6 --term-unit months --due 2026-03-01
func newLoanAddCmd(app *App) *cobra.Command {
	var (
		provider  string
		principal float64
		rate      float64
		termValue float64
		termUnit  string
		due       string
	)

	cmd := &cobra.Command{
		Use:          "add",
		Short:        "Добавить займ",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()

			sess, err := app.Services.Session.Require(cmd.Context())
			if err != nil {
				return loginRequired(err)
			}

			dueDate, err := parseDueDate(due)
			if err != nil {
				return err
			}

			loan, err := app.Services.Ledger.AddLoan(cmd.Context(), sess, models.AddLoanRequest{
				Provider:    provider,
				Principal:   principal,
				RatePercent: rate,
				TermValue:   termValue,
				TermUnit:    termUnit,
				DueDate:     dueDate,
			})
			app.logOp("loan_add", sess.User.ID, err, started)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added loan %s (%s, total %s, due %s)\n",
				loan.ID, loan.Provider, app.amount(loan.TotalPayable), formatDate(loan.DueDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "loan provider name")
	cmd.Flags().Float64Var(&principal, "principal", 0, "principal amount")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate, percent")
	cmd.Flags().Float64Var(&termValue, "term", 0, "loan term value")
	cmd.Flags().StringVar(&termUnit, "term-unit", "months", "loan term unit (months|years)")
	cmd.Flags().StringVar(&due, "due", "", "due date, YYYY-MM-DD")
	cmd.MarkFlagRequired("provider")
	cmd.MarkFlagRequired("principal")
	cmd.MarkFlagRequired("rate")
	cmd.MarkFlagRequired("term")
	cmd.MarkFlagRequired("due")

	return cmd
}

// newLoanListCmd — команда просмотра займов.
//
// По умолчанию показывает неоплаченные займы по возрастанию даты платежа
// (просроченные первыми); с флагом --all показывает вообще все.
func newLoanListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "Показать займы",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Services.Session.Require(cmd.Context())
			if err != nil {
				return loginRequired(err)
			}

			loans := sess.User.Loans
			if !all {
				loans = app.Services.Ledger.UpcomingPayments(loans)
			}

			out := cmd.OutOrStdout()
			if len(loans) == 0 {
				if all {
					fmt.Fprintln(out, "No loans added yet. Start by adding your first loan!")
				} else {
					fmt.Fprintln(out, "No upcoming payments")
				}
				return nil
			}

			for _, l := range loans {
				status := " "
				if l.Paid {
					status = "paid"
				}
				fmt.Fprintf(out, "%s  %-20s %10s  %s%%  %s  due %s  %s\n",
					l.ID, l.Provider, app.amount(l.TotalPayable), formatRate(l.RatePercent),
					l.TimePeriod, formatDate(l.DueDate), status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include paid loans")

	return cmd
}

// newLoanPayCmd — команда отметки займа оплаченным.
//
// Отсутствующий id — ошибка ("not found"), а не тихий no-op.
func newLoanPayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "pay <loan-id>",
		Short:        "Отметить займ оплаченным",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()

			sess, err := app.Services.Session.Require(cmd.Context())
			if err != nil {
				return loginRequired(err)
			}

			_, err = app.Services.Ledger.MarkPaid(cmd.Context(), sess, args[0])
			app.logOp("loan_pay", sess.User.ID, err, started)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "loan %s marked as paid\n", args[0])
			return nil
		},
	}
}

// newLoanRemoveCmd — команда удаления займа.
//
// Отсутствующий id — no-op (в отличие от pay).
func newLoanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "remove <loan-id>",
		Short:        "Удалить займ",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()

			sess, err := app.Services.Session.Require(cmd.Context())
			if err != nil {
				return loginRequired(err)
			}

			_, err = app.Services.Ledger.RemoveLoan(cmd.Context(), sess, args[0])
			app.logOp("loan_remove", sess.User.ID, err, started)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "loan %s removed\n", args[0])
			return nil
		},
	}
}

// formatRate убирает лишние нули из ставки ("12", "12.5").
func formatRate(rate float64) string {
	return fmt.Sprintf("%g", rate)
}
