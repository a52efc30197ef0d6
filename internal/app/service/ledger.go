package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Sayceee/LoanSync1/internal/app/interest"
	"github.com/Sayceee/LoanSync1/internal/app/models"
	serr "github.com/Sayceee/LoanSync1/internal/shared/errors"
)

// LedgerService реализует операции над займами текущего пользователя.
//
// Все мутирующие операции принимают сессию явным аргументом (никакого
// глобального «текущего пользователя») и завершаются полным циклом
// read-modify-write: читаем коллекцию, заменяем запись пользователя,
// пишем коллекцию и обновлённую сессию одной логической записью.
type LedgerService struct {
	store    Store
	validate *validator.Validate

	// окно напоминаний о скорых платежах, в днях
	alertWindowDays int
}

// NewLedgerService создаёт LedgerService с зависимостями.
func NewLedgerService(store Store, validate *validator.Validate, alertWindowDays int) *LedgerService {
	return &LedgerService{
		store:           store,
		validate:        validate,
		alertWindowDays: alertWindowDays,
	}
}

// AddLoan добавляет займ текущему пользователю.
//
// Валидация:
//   - все поля обязательны
//   - principal > 0, rate >= 0, termValue > 0, unit из {months, years}
//
// Срок переводится в годы (months делятся на 12), interest и totalPayable
// считаются калькулятором процентов один раз и фиксируются в записи займа.
//
// Ошибки:
//   - ErrFieldsRequired / ErrInvalidAmount / ErrInvalidInput
//   - ErrNotFound, если пользователя сессии нет в коллекции
func (s *LedgerService) AddLoan(ctx context.Context, sess *models.Session, req models.AddLoanRequest) (models.Loan, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Loan{}, mapLoanValidation(err)
	}

	years := interest.YearsFromTerm(req.TermValue, req.TermUnit)
	in, total := interest.Compute(req.Principal, req.RatePercent, years)

	loan := models.Loan{
		ID:           uuid.NewString(),
		Provider:     req.Provider,
		Principal:    req.Principal,
		RatePercent:  req.RatePercent,
		TermValue:    req.TermValue,
		TermUnit:     req.TermUnit,
		TimePeriod:   fmt.Sprintf("%g %s", req.TermValue, req.TermUnit),
		DueDate:      req.DueDate,
		Interest:     in,
		TotalPayable: total,
		Paid:         false,
		CreatedAt:    time.Now(),
	}

	sess.User.Loans = append(sess.User.Loans, loan)

	if err := s.persistUser(ctx, sess); err != nil {
		return models.Loan{}, err
	}
	return loan, nil
}

// MarkPaid отмечает займ оплаченным.
//
// TotalPayable при этом НЕ пересчитывается (он зафиксирован при создании).
//
// Ошибки:
//   - ErrNotFound, если займа с таким id у пользователя нет
//     (ошибка наружу, а не тихий no-op — решение зафиксировано в тестах)
func (s *LedgerService) MarkPaid(ctx context.Context, sess *models.Session, loanID string) (models.User, error) {
	idx := sess.User.FindLoan(loanID)
	if idx < 0 {
		return models.User{}, serr.ErrNotFound
	}

	sess.User.Loans[idx].Paid = true

	if err := s.persistUser(ctx, sess); err != nil {
		return models.User{}, err
	}
	return sess.User, nil
}

// RemoveLoan удаляет займ из последовательности.
//
// Отсутствующий id — no-op (состояние всё равно сохраняется),
// в отличие от MarkPaid здесь ошибиться нечем: результат один и тот же.
func (s *LedgerService) RemoveLoan(ctx context.Context, sess *models.Session, loanID string) (models.User, error) {
	kept := sess.User.Loans[:0]
	for _, l := range sess.User.Loans {
		if l.ID != loanID {
			kept = append(kept, l)
		}
	}
	sess.User.Loans = kept

	if err := s.persistUser(ctx, sess); err != nil {
		return models.User{}, err
	}
	return sess.User, nil
}

// TotalOutstanding возвращает сумму totalPayable по всем неоплаченным займам.
func (s *LedgerService) TotalOutstanding(loans []models.Loan) float64 {
	var sum float64
	for _, l := range loans {
		if !l.Paid {
			sum += l.TotalPayable
		}
	}
	return sum
}

// UpcomingPayments возвращает неоплаченные займы по возрастанию даты платежа.
//
// Сортировка стабильная: займы с одинаковой датой сохраняют порядок
// добавления. Просроченные займы не исключаются — они окажутся первыми.
func (s *LedgerService) UpcomingPayments(loans []models.Loan) []models.Loan {
	upcoming := make([]models.Loan, 0, len(loans))
	for _, l := range loans {
		if !l.Paid {
			upcoming = append(upcoming, l)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	return upcoming
}

// DueSoonAlerts строит уведомления о платежах, до которых осталось
// от 1 до alertWindowDays дней (по умолчанию 7).
//
// daysUntilDue = ceil((dueDate - today) в днях). Просроченные займы
// (daysUntilDue <= 0) в уведомления не попадают — они и так видны
// первыми в UpcomingPayments.
func (s *LedgerService) DueSoonAlerts(loans []models.Loan, today time.Time) []Alert {
	var alerts []Alert
	for _, l := range loans {
		if l.Paid {
			continue
		}
		days := int(math.Ceil(l.DueDate.Sub(today).Hours() / 24))
		if days > 0 && days <= s.alertWindowDays {
			alerts = append(alerts, Alert{Loan: l, DaysUntilDue: days})
		}
	}
	return alerts
}

// persistUser выполняет полный цикл записи после мутации займов:
// читаем коллекцию, заменяем запись пользователя по id, пишем коллекцию
// и снимок сессии одной логической записью (SaveUserState).
func (s *LedgerService) persistUser(ctx context.Context, sess *models.Session) error {
	if sess == nil {
		return serr.ErrUnauthorized
	}

	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range users {
		if users[i].ID == sess.User.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return serr.ErrNotFound
	}

	users[idx] = sess.User
	return s.store.SaveUserState(ctx, users, sess)
}

// mapLoanValidation переводит ошибки validator в доменные сентинелы:
// required -> ErrFieldsRequired, gt/gte/oneof -> ErrInvalidAmount.
func mapLoanValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return serr.ErrInvalidInput
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			return serr.ErrFieldsRequired
		case "gt", "gte", "oneof":
			return serr.ErrInvalidAmount
		}
	}
	return serr.ErrInvalidInput
}
