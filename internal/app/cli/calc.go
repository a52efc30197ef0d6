package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sayceee/LoanSync1/internal/app/interest"
	"github.com/Sayceee/LoanSync1/internal/app/models"
)

// NewCalcCmd создаёт CLI-команду калькулятора простых процентов.
//
// Команда не требует сессии и ничего не сохраняет — это чистый расчёт.
//
// Пример использования:
//
//	loansync calc --principal 10000 --rate 12 --term 6 --term-unit months
//
// Вывод:
//
//	Interest: Ksh600.00 | Total: Ksh10600.00
func NewCalcCmd(app *App) *cobra.Command {
	var (
		principal float64
		rate      float64
		termValue float64
		termUnit  string
	)

	cmd := &cobra.Command{
		Use:          "calc",
		Short:        "Калькулятор простых процентов",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if principal <= 0 || rate < 0 || termValue <= 0 {
				return fmt.Errorf("enter all values")
			}
			if termUnit != models.TermUnitMonths && termUnit != models.TermUnitYears {
				return fmt.Errorf("--term-unit must be months|years")
			}

			years := interest.YearsFromTerm(termValue, termUnit)
			in, total := interest.Compute(principal, rate, years)

			fmt.Fprintf(cmd.OutOrStdout(), "Interest: %s | Total: %s\n", app.amount(in), app.amount(total))
			return nil
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 0, "principal amount")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate, percent")
	cmd.Flags().Float64Var(&termValue, "term", 0, "term value")
	cmd.Flags().StringVar(&termUnit, "term-unit", "years", "term unit (months|years)")
	cmd.MarkFlagRequired("principal")
	cmd.MarkFlagRequired("rate")
	cmd.MarkFlagRequired("term")

	return cmd
}
