package tests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Sayceee/LoanSync1/internal/app/cli"
	serr "github.com/Sayceee/LoanSync1/internal/shared/errors"
)

func TestLoanAddCmd_PrintsLoanSummary(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)
	loginUser(t, app)

	out := addLoan(t, app, "2027-03-01")

	// 10000 под 12% на 6 месяцев -> 10600 к выплате
	if !strings.Contains(out, "added loan ") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "M-Shwari") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "total Ksh10600.00") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "due Mar 1, 2027") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestLoanAddCmd_BadDueDate_ReturnsError(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)
	loginUser(t, app)

	_, err := execute(t, cli.NewLoanCmd(app),
		"add",
		"--provider", "M-Shwari",
		"--principal", "10000",
		"--rate", "12",
		"--term", "6",
		"--due", "01/03/2027",
	)
	if err == nil || !strings.Contains(err.Error(), "invalid --due date") {
		t.Fatalf("expected due date error, got %v", err)
	}
}

func TestLoanAddCmd_NoSession_ReturnsLoginHint(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, cli.NewLoanCmd(app),
		"add",
		"--provider", "M-Shwari",
		"--principal", "10000",
		"--rate", "12",
		"--term", "6",
		"--due", "2027-03-01",
	)
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("expected login hint, got %v", err)
	}
}

func TestLoanListCmd_EmptyStates(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)
	loginUser(t, app)

	out, err := execute(t, cli.NewLoanCmd(app), "list")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "No upcoming payments") {
		t.Fatalf("unexpected output: %q", out)
	}

	out, err = execute(t, cli.NewLoanCmd(app), "list", "--all")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "No loans added yet. Start by adding your first loan!") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestLoanListCmd_ShowsLoans(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)
	loginUser(t, app)
	addLoan(t, app, "2027-03-01")

	out, err := execute(t, cli.NewLoanCmd(app), "list")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if !strings.Contains(out, "M-Shwari") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "Ksh10600.00") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "6 months") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestLoanPayCmd_MarksPaidAndHidesFromUpcoming(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)
	loginUser(t, app)
	addLoan(t, app, "2027-03-01")

	loanID := firstLoanID(t, app)

	out, err := execute(t, cli.NewLoanCmd(app), "pay", loanID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "marked as paid") {
		t.Fatalf("unexpected output: %q", out)
	}

	// оплаченный займ пропадает из списка ближайших платежей
	out, err = execute(t, cli.NewLoanCmd(app), "list")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "No upcoming payments") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestLoanPayCmd_UnknownID_ReturnsError(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)
	loginUser(t, app)

	_, err := execute(t, cli.NewLoanCmd(app), "pay", "no-such-loan")
	if !errors.Is(err, serr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoanRemoveCmd_RemovesLoan(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)
	loginUser(t, app)
	addLoan(t, app, "2027-03-01")

	loanID := firstLoanID(t, app)

	out, err := execute(t, cli.NewLoanCmd(app), "remove", loanID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "removed") {
		t.Fatalf("unexpected output: %q", out)
	}

	out, err = execute(t, cli.NewLoanCmd(app), "list", "--all")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "No loans added yet") {
		t.Fatalf("unexpected output: %q", out)
	}
}

// remove по несуществующему id — no-op, без ошибки
func TestLoanRemoveCmd_UnknownID_NoOp(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)
	loginUser(t, app)
	addLoan(t, app, "2027-03-01")

	_, err := execute(t, cli.NewLoanCmd(app), "remove", "no-such-loan")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	out, err := execute(t, cli.NewLoanCmd(app), "list")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "M-Shwari") {
		t.Fatalf("expected loan to survive, got %q", out)
	}
}

// firstLoanID достаёт id первого займа текущего пользователя
func firstLoanID(t *testing.T, app *cli.App) string {
	t.Helper()

	sess, err := app.Services.Session.Require(context.Background())
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if len(sess.User.Loans) == 0 {
		t.Fatal("expected at least one loan")
	}
	return sess.User.Loans[0].ID
}

// заем с платежом через 3 дня попадает в напоминания
func TestDashboardCmd_ShowsDebtAndAlerts(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)
	loginUser(t, app)

	due := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	addLoan(t, app, due)

	out, err := execute(t, cli.NewDashboardCmd(app))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if !strings.Contains(out, "Welcome back, Ivan!") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "Total debt: Ksh10600.00") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "Payment due soon for M-Shwari") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestAlertsCmd_WindowRespected(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)
	loginUser(t, app)

	// далеко за окном в 7 дней
	addLoan(t, app, time.Now().AddDate(0, 1, 0).Format("2006-01-02"))

	out, err := execute(t, cli.NewAlertsCmd(app))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "no payments due soon") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestAlertsCmd_ShowsDueSoon(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)
	loginUser(t, app)

	addLoan(t, app, time.Now().AddDate(0, 0, 5).Format("2006-01-02"))

	out, err := execute(t, cli.NewAlertsCmd(app))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "Payment due soon for M-Shwari") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "days remaining") {
		t.Fatalf("unexpected output: %q", out)
	}
}
