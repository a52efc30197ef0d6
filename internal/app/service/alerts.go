package service

import (
	"fmt"

	"github.com/Sayceee/LoanSync1/internal/app/models"
)

// Alert — уведомление о скором платеже.
type Alert struct {
	Loan         models.Loan
	DaysUntilDue int
}

// Message возвращает текст уведомления для пользователя.
func (a Alert) Message() string {
	return fmt.Sprintf("Payment due soon for %s: %d days remaining", a.Loan.Provider, a.DaysUntilDue)
}

// AlertQueue — очередь уведомлений.
//
// Ledger наполняет её результатами DueSoonAlerts, презентационный слой
// (cli) вычитывает и показывает пользователю. Никаких таймеров —
// уведомления показываются тогда, когда их запросили.
type AlertQueue struct {
	items []Alert
}

// Push добавляет уведомления в конец очереди.
func (q *AlertQueue) Push(alerts ...Alert) {
	q.items = append(q.items, alerts...)
}

// Drain возвращает накопленные уведомления и очищает очередь.
func (q *AlertQueue) Drain() []Alert {
	out := q.items
	q.items = nil
	return out
}

// Len возвращает количество уведомлений в очереди.
func (q *AlertQueue) Len() int {
	return len(q.items)
}
