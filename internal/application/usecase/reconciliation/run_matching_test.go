package reconciliation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
	"github.com/condoledger/backend/internal/domain/valueobject"
)

type fakeBankRepo struct {
	transactions []*entity.BankTransaction
}

func (f *fakeBankRepo) CreateBatch(_ context.Context, transactions []*entity.BankTransaction) error {
	f.transactions = append(f.transactions, transactions...)
	return nil
}

func (f *fakeBankRepo) FindPendingByPeriod(_ context.Context, from, to time.Time) ([]*entity.BankTransaction, error) {
	var out []*entity.BankTransaction
	for _, bt := range f.transactions {
		if bt.Status == entity.BankTransactionStatusPending && !bt.Date.Before(from) && !bt.Date.After(to) {
			out = append(out, bt)
		}
	}
	return out, nil
}

func (f *fakeBankRepo) MarkMatched(_ context.Context, id, matchedPaymentID uuid.UUID, matchType entity.MatchType) error {
	for _, bt := range f.transactions {
		if bt.ID == id {
			bt.Status = entity.BankTransactionStatusMatched
			bt.MatchedPaymentID = &matchedPaymentID
			bt.MatchType = &matchType
			return nil
		}
	}
	return domainerror.ErrBankTransactionNotFound
}

func (f *fakeBankRepo) ResetMatches(_ context.Context, from, to time.Time) (int64, error) {
	var count int64
	for _, bt := range f.transactions {
		if bt.Status == entity.BankTransactionStatusMatched && !bt.Date.Before(from) && !bt.Date.After(to) {
			bt.Status = entity.BankTransactionStatusPending
			bt.MatchedPaymentID = nil
			bt.MatchType = nil
			count++
		}
	}
	return count, nil
}

func (f *fakeBankRepo) CountByStatus(_ context.Context, from, to time.Time) (map[entity.BankTransactionStatus]int64, error) {
	counts := make(map[entity.BankTransactionStatus]int64)
	for _, bt := range f.transactions {
		if !bt.Date.Before(from) && !bt.Date.After(to) {
			counts[bt.Status]++
		}
	}
	return counts, nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (f *fakePaymentRepo) CreateWithAllocations(
	context.Context, *entity.Payment, []*entity.Allocation, []*entity.SpecialInstallmentPayment,
) error {
	return nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domainerror.ErrPaymentNotFound
}

func (f *fakePaymentRepo) FindByUnit(context.Context, uuid.UUID) ([]*entity.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) FindAllocationsByPayment(context.Context, uuid.UUID) ([]*entity.Allocation, error) {
	return nil, nil
}

func (f *fakePaymentRepo) FindUnverifiedByPeriod(_ context.Context, from, to time.Time) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.payments {
		if p.Status == entity.PaymentStatusReported && !p.Date.Before(from) && !p.Date.After(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) MarkVerified(_ context.Context, id uuid.UUID) error {
	for _, p := range f.payments {
		if p.ID == id {
			p.Status = entity.PaymentStatusVerified
			return nil
		}
	}
	return domainerror.ErrPaymentNotFound
}

func (f *fakePaymentRepo) DeleteCascade(context.Context, uuid.UUID) error { return nil }

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (f *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	f.expenses = append(f.expenses, e)
	return nil
}

func (f *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, e := range f.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) FindByPeriod(context.Context, time.Time, time.Time) ([]*entity.Expense, error) {
	return f.expenses, nil
}

func (f *fakeExpenseRepo) FindPaidUnreconciledByPeriod(_ context.Context, from, to time.Time) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range f.expenses {
		if e.Status == entity.ExpenseStatusPaid && !e.Reconciled && !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) MarkPaid(_ context.Context, id uuid.UUID) error {
	for _, e := range f.expenses {
		if e.ID == id {
			e.Status = entity.ExpenseStatusPaid
			return nil
		}
	}
	return domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) MarkReconciled(_ context.Context, id uuid.UUID) error {
	for _, e := range f.expenses {
		if e.ID == id {
			e.Reconciled = true
			return nil
		}
	}
	return domainerror.ErrExpenseNotFound
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func period() RunMatchingInput {
	return RunMatchingInput{From: day(1), To: day(31)}
}

func reportedPayment(date time.Time, amount, reference string) *entity.Payment {
	return &entity.Payment{
		ID:        uuid.New(),
		UnitID:    uuid.New(),
		Date:      date,
		Amount:    dec(amount),
		Reference: reference,
		Method:    entity.PaymentMethodTransfer,
		Status:    entity.PaymentStatusReported,
	}
}

func paidExpense(date time.Time, amount, reference string) *entity.Expense {
	e := entity.NewExpense(date, "supplier invoice", dec(amount), reference)
	e.Status = entity.ExpenseStatusPaid
	return e
}

func TestRunMatching_ReferenceMatch(t *testing.T) {
	payment := reportedPayment(day(3), "150", "TRF-00123456")
	bank := entity.NewBankTransaction(day(20), "incoming transfer", dec("150"), "BANK-REF123456")
	decoy := entity.NewBankTransaction(day(20), "incoming transfer", dec("150"), "BANK-REF999999")

	bankRepo := &fakeBankRepo{transactions: []*entity.BankTransaction{bank, decoy}}
	paymentRepo := &fakePaymentRepo{payments: []*entity.Payment{payment}}

	uc := NewRunMatchingUseCase(bankRepo, paymentRepo, &fakeExpenseRepo{})
	out, err := uc.Execute(context.Background(), period())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.MatchedByReference != 1 {
		t.Errorf("expected 1 reference match, got %d", out.MatchedByReference)
	}
	if bank.Status != entity.BankTransactionStatusMatched {
		t.Error("bank movement should be matched")
	}
	if bank.MatchType == nil || *bank.MatchType != entity.MatchTypeReference {
		t.Errorf("expected reference match type, got %v", bank.MatchType)
	}
	if payment.Status != entity.PaymentStatusVerified {
		t.Error("matched payment should be promoted to verified")
	}
}

func TestRunMatching_ReferenceMatchIgnoresAmount(t *testing.T) {
	// The shared suffix wins even when the amounts disagree; reference
	// identity is treated as authoritative.
	payment := reportedPayment(day(3), "150", "TRF-00123456")
	bank := entity.NewBankTransaction(day(3), "incoming transfer", dec("149"), "REF123456")

	bankRepo := &fakeBankRepo{transactions: []*entity.BankTransaction{bank}}
	paymentRepo := &fakePaymentRepo{payments: []*entity.Payment{payment}}

	uc := NewRunMatchingUseCase(bankRepo, paymentRepo, &fakeExpenseRepo{})
	out, err := uc.Execute(context.Background(), period())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.MatchedByReference != 1 {
		t.Errorf("expected 1 reference match, got %d", out.MatchedByReference)
	}
}

func TestRunMatching_AmountMatchRequiresUniqueCandidate(t *testing.T) {
	first := reportedPayment(day(3), "150", "AAA")
	second := reportedPayment(day(4), "150", "BBB")
	bank := entity.NewBankTransaction(day(5), "incoming transfer", dec("150"), "CCC")

	bankRepo := &fakeBankRepo{transactions: []*entity.BankTransaction{bank}}
	paymentRepo := &fakePaymentRepo{payments: []*entity.Payment{first, second}}

	uc := NewRunMatchingUseCase(bankRepo, paymentRepo, &fakeExpenseRepo{})
	out, err := uc.Execute(context.Background(), period())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.MatchedByAmount != 0 {
		t.Errorf("ambiguous candidates must not match, got %d", out.MatchedByAmount)
	}
	if out.UnmatchedBank != 1 {
		t.Errorf("expected 1 unmatched bank movement, got %d", out.UnmatchedBank)
	}
	if out.UnmatchedSystem != 2 {
		t.Errorf("expected 2 unmatched system transactions, got %d", out.UnmatchedSystem)
	}
	if bank.Status != entity.BankTransactionStatusPending {
		t.Error("bank movement must stay pending on ambiguity")
	}
}

func TestRunMatching_AmountMatchSingleCandidate(t *testing.T) {
	payment := reportedPayment(day(3), "150", "AAA")
	bank := entity.NewBankTransaction(day(6), "incoming transfer", dec("150"), "CCC")

	bankRepo := &fakeBankRepo{transactions: []*entity.BankTransaction{bank}}
	paymentRepo := &fakePaymentRepo{payments: []*entity.Payment{payment}}

	uc := NewRunMatchingUseCase(bankRepo, paymentRepo, &fakeExpenseRepo{})
	out, err := uc.Execute(context.Background(), period())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.MatchedByAmount != 1 {
		t.Errorf("expected 1 amount match, got %d", out.MatchedByAmount)
	}
	if bank.MatchType == nil || *bank.MatchType != entity.MatchTypeAmount {
		t.Errorf("expected amount match type, got %v", bank.MatchType)
	}
	if payment.Status != entity.PaymentStatusVerified {
		t.Error("matched payment should be promoted to verified")
	}
}

func TestRunMatching_AmountMatchRespectsDateWindow(t *testing.T) {
	payment := reportedPayment(day(3), "150", "AAA")
	bank := entity.NewBankTransaction(day(15), "incoming transfer", dec("150"), "CCC")

	bankRepo := &fakeBankRepo{transactions: []*entity.BankTransaction{bank}}
	paymentRepo := &fakePaymentRepo{payments: []*entity.Payment{payment}}

	uc := NewRunMatchingUseCase(bankRepo, paymentRepo, &fakeExpenseRepo{})
	out, err := uc.Execute(context.Background(), period())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.MatchedByAmount != 0 {
		t.Errorf("12 days apart must not match, got %d matches", out.MatchedByAmount)
	}
	if payment.Status != entity.PaymentStatusReported {
		t.Error("unmatched payment must stay reported")
	}
}

func TestRunMatching_ExpenseMatchesDebit(t *testing.T) {
	exp := paidExpense(day(10), "320.50", "INV-0042")
	bank := entity.NewBankTransaction(day(12), "outgoing transfer", dec("-320.50"), "OUT-7781")

	bankRepo := &fakeBankRepo{transactions: []*entity.BankTransaction{bank}}
	expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{exp}}

	uc := NewRunMatchingUseCase(bankRepo, &fakePaymentRepo{}, expenseRepo)
	out, err := uc.Execute(context.Background(), period())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.MatchedByAmount != 1 {
		t.Errorf("expected 1 amount match, got %d", out.MatchedByAmount)
	}
	if !exp.Reconciled {
		t.Error("matched expense should be marked reconciled")
	}
}

func TestRunMatching_AmountMatchComparesMagnitudes(t *testing.T) {
	// The fuzzy phase compares magnitudes, so a debit with a lone
	// same-magnitude payment in the window still pairs up.
	payment := reportedPayment(day(10), "320.50", "AAA")
	bank := entity.NewBankTransaction(day(12), "outgoing transfer", dec("-320.50"), "OUT-7781")

	bankRepo := &fakeBankRepo{transactions: []*entity.BankTransaction{bank}}
	paymentRepo := &fakePaymentRepo{payments: []*entity.Payment{payment}}

	uc := NewRunMatchingUseCase(bankRepo, paymentRepo, &fakeExpenseRepo{})
	out, err := uc.Execute(context.Background(), period())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.MatchedByAmount != 1 {
		t.Errorf("expected 1 amount match, got %d", out.MatchedByAmount)
	}
	if payment.Status != entity.PaymentStatusVerified {
		t.Error("matched payment should be promoted to verified")
	}
}

func TestRunMatching_MixedKindCandidatesAreAmbiguous(t *testing.T) {
	// A payment and an expense of the same magnitude both qualify for a
	// bank credit, so the movement stays pending.
	payment := reportedPayment(day(8), "500", "AAA")
	exp := paidExpense(day(12), "500", "INV-0042")
	bank := entity.NewBankTransaction(day(10), "incoming transfer", dec("500"), "CCC")

	bankRepo := &fakeBankRepo{transactions: []*entity.BankTransaction{bank}}
	paymentRepo := &fakePaymentRepo{payments: []*entity.Payment{payment}}
	expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{exp}}

	uc := NewRunMatchingUseCase(bankRepo, paymentRepo, expenseRepo)
	out, err := uc.Execute(context.Background(), period())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.MatchedByAmount != 0 {
		t.Errorf("ambiguous candidates must not match, got %d", out.MatchedByAmount)
	}
	if bank.Status != entity.BankTransactionStatusPending {
		t.Error("bank movement must stay pending on ambiguity")
	}
	if payment.Status != entity.PaymentStatusReported {
		t.Error("payment must stay reported on ambiguity")
	}
	if exp.Reconciled {
		t.Error("expense must stay unreconciled on ambiguity")
	}
}

func TestRunMatching_Idempotent(t *testing.T) {
	payment := reportedPayment(day(3), "150", "TRF-00123456")
	bank := entity.NewBankTransaction(day(3), "incoming transfer", dec("150"), "REF123456")

	bankRepo := &fakeBankRepo{transactions: []*entity.BankTransaction{bank}}
	paymentRepo := &fakePaymentRepo{payments: []*entity.Payment{payment}}

	uc := NewRunMatchingUseCase(bankRepo, paymentRepo, &fakeExpenseRepo{})
	if _, err := uc.Execute(context.Background(), period()); err != nil {
		t.Fatalf("first run: %v", err)
	}

	out, err := uc.Execute(context.Background(), period())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(out.Matches) != 0 {
		t.Errorf("second run must find nothing to do, got %d matches", len(out.Matches))
	}
}

func TestRunMatching_InvalidPeriod(t *testing.T) {
	uc := NewRunMatchingUseCase(&fakeBankRepo{}, &fakePaymentRepo{}, &fakeExpenseRepo{})

	_, err := uc.Execute(context.Background(), RunMatchingInput{From: day(10), To: day(1)})
	if !errors.Is(err, domainerror.ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestRunMatching_KindsReported(t *testing.T) {
	payment := reportedPayment(day(3), "150", "TRF-00123456")
	exp := paidExpense(day(10), "80", "INV-0099")
	in := entity.NewBankTransaction(day(3), "incoming transfer", dec("150"), "REF123456")
	out := entity.NewBankTransaction(day(11), "outgoing transfer", dec("-80"), "OUT-11")

	bankRepo := &fakeBankRepo{transactions: []*entity.BankTransaction{in, out}}
	paymentRepo := &fakePaymentRepo{payments: []*entity.Payment{payment}}
	expenseRepo := &fakeExpenseRepo{expenses: []*entity.Expense{exp}}

	uc := NewRunMatchingUseCase(bankRepo, paymentRepo, expenseRepo)
	result, err := uc.Execute(context.Background(), period())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kinds := make(map[valueobject.SystemTransactionKind]int)
	for _, m := range result.Matches {
		kinds[m.Kind]++
	}
	if kinds[valueobject.SystemTransactionIncome] != 1 || kinds[valueobject.SystemTransactionExpense] != 1 {
		t.Errorf("expected one income and one expense match, got %v", kinds)
	}
}
