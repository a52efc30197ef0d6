package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// financialTips — короткие советы по управлению долгами.
// Показываем по одному в день, чтобы не надоедать.
var financialTips = []string{
	"Track all loan due dates — missing one payment costs more than you think.",
	"Automate payments to avoid late fees and improve credit health.",
	"Avoid taking new loans until your repayment rate is higher than your borrowing rate.",
	"Prioritize high-interest loans first — they drain your money the fastest.",
	"Cut small unnecessary expenses — they add up and slow your debt payoff.",
}

// NewTipsCmd создаёт команду показа финансовых советов.
// По умолчанию печатается «совет дня» (индекс зависит от текущей даты),
// с флагом --all выводится весь список.
func NewTipsCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:          "tips",
		Short:        "Финансовые советы",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				for i, tip := range financialTips {
					fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, tip)
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), tipOfDay(time.Now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "show all tips")

	return cmd
}

func tipOfDay(now time.Time) string {
	return financialTips[now.YearDay()%len(financialTips)]
}
