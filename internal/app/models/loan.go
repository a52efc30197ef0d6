package models

import "time"

// Единицы измерения срока займа.
const (
	TermUnitMonths = "months"
	TermUnitYears  = "years"
)

// Loan — запись займа внутри пользователя.
//
// Interest и TotalPayable считаются один раз при создании займа
// (простой процент от principal/rate/срока в годах) и дальше
// НЕ пересчитываются — ни при отметке "оплачен", ни при других изменениях.
//
// Поля:
//   - ID: уникальный идентификатор займа (UUID в виде строки),
//     уникален в пределах последовательности займов владельца
//   - Provider: название кредитора
//   - Principal: исходная сумма займа (> 0)
//   - RatePercent: годовая ставка в процентах (>= 0)
//   - TermValue/TermUnit: срок займа (величина > 0 плюс единица months|years)
//   - TimePeriod: строка для отображения ("6 months", "1.5 years")
//   - DueDate: дата платежа
//   - Interest: начисленный простой процент (фиксируется при создании)
//   - TotalPayable: principal + interest (фиксируется при создании)
//   - Paid: флаг оплаты, по умолчанию false
type Loan struct {
	ID           string    `json:"id"`
	Provider     string    `json:"provider"`
	Principal    float64   `json:"principal"`
	RatePercent  float64   `json:"rate_percent"`
	TermValue    float64   `json:"term_value"`
	TermUnit     string    `json:"term_unit"`
	TimePeriod   string    `json:"time_period"`
	DueDate      time.Time `json:"due_date"`
	Interest     float64   `json:"interest"`
	TotalPayable float64   `json:"total_payable"`
	Paid         bool      `json:"paid"`
	CreatedAt    time.Time `json:"created_at"`
}
