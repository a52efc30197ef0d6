// Package interest реализует расчёт простых процентов по займу.
//
// Расчёт чистый (без побочных эффектов) и без округления:
// округление до двух знаков происходит только при отображении,
// хранимое значение сохраняет полную точность.
package interest

import "github.com/Sayceee/LoanSync1/internal/app/models"

// Compute считает простой процент и полную сумму к выплате.
//
// interest = principal * ratePercent * years / 100
// total    = principal + interest
func Compute(principal, ratePercent, years float64) (interest, total float64) {
	interest = principal * ratePercent * years / 100
	total = principal + interest
	return interest, total
}

// YearsFromTerm переводит срок займа в годы.
//
// Для months значение делится на 12, для years используется как есть.
func YearsFromTerm(value float64, unit string) float64 {
	if unit == models.TermUnitMonths {
		return value / 12
	}
	return value
}
