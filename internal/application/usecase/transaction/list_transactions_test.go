package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletive/backend/internal/application/adapter"
	"github.com/walletive/backend/internal/domain/entity"
	domainerror "github.com/walletive/backend/internal/domain/error"
)

type stubTransactionRepo struct {
	rows   []*entity.Transaction
	filter adapter.TransactionFilter
}

func (s *stubTransactionRepo) FindAll(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	s.filter = filter
	return s.rows, nil
}

func TestListTransactionsUseCase_Execute(t *testing.T) {
	now := time.Now().UTC()
	repo := &stubTransactionRepo{rows: []*entity.Transaction{
		entity.NewTransaction(entity.TransactionKindIncome, "Ingreso", decimal.NewFromInt(3000), nil, nil, now),
		entity.NewTransaction(entity.TransactionKindExpense, "Fijos", decimal.NewFromInt(800),
			entity.CategoryPtr(entity.TransactionCategoryFixed), nil, now),
		entity.NewTransaction(entity.TransactionKindExpense, "Variables", decimal.NewFromInt(400),
			entity.CategoryPtr(entity.TransactionCategoryVariable), nil, now),
	}}
	uc := NewListTransactionsUseCase(repo)

	out, err := uc.Execute(context.Background(), ListTransactionsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Transactions) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(out.Transactions))
	}
	if !out.Totals.NetTotal.Equal(decimal.NewFromInt(1800)) {
		t.Errorf("expected net 1800, got %s", out.Totals.NetTotal)
	}
}

func TestListTransactionsUseCase_InvalidKind(t *testing.T) {
	repo := &stubTransactionRepo{}
	uc := NewListTransactionsUseCase(repo)
	kind := entity.TransactionKind("refund")

	_, err := uc.Execute(context.Background(), ListTransactionsInput{Kind: &kind})
	if !errors.Is(err, domainerror.ErrInvalidTransactionKind) {
		t.Errorf("expected invalid kind error, got %v", err)
	}
}
