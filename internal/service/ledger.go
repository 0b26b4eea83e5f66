package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/RusenAli99/say-nileti-im/internal/models"
	"github.com/RusenAli99/say-nileti-im/internal/repo"
)

type LedgerService struct {
	Repo *repo.GormRepo
}

// SummaryMode selects the calendar bucket of a ledger summary. There are no
// arbitrary range queries, only exact day or month matches.
type SummaryMode string

const (
	SummaryDay   SummaryMode = "day"
	SummaryMonth SummaryMode = "month"
)

type LedgerSummary struct {
	Income       float64                     `json:"income"`
	Expense      float64                     `json:"expense"`
	Balance      float64                     `json:"balance"`
	Transactions []models.FinanceTransaction `json:"transactions"`
}

func validTransactionType(t string) bool {
	return t == models.TransactionIncome || t == models.TransactionExpense
}

func (s *LedgerService) AddTransaction(ctx context.Context, txType string, amount float64, description string) (*models.FinanceTransaction, error) {
	if !validTransactionType(txType) {
		return nil, fmt.Errorf("%w: type must be income or expense", ErrValidation)
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: amount must be >= 0", ErrValidation)
	}

	tx := models.FinanceTransaction{
		Type:        txType,
		Amount:      amount,
		Description: description,
	}
	if err := s.Repo.CreateTransaction(ctx, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *LedgerService) GetTransactions(ctx context.Context) ([]models.FinanceTransaction, error) {
	return s.Repo.ListTransactions(ctx)
}

func (s *LedgerService) UpdateTransaction(ctx context.Context, id uint, txType string, amount float64, description string) (*models.FinanceTransaction, error) {
	if !validTransactionType(txType) {
		return nil, fmt.Errorf("%w: type must be income or expense", ErrValidation)
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: amount must be >= 0", ErrValidation)
	}

	tx, err := s.Repo.UpdateTransaction(ctx, id, txType, amount, description)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	return tx, err
}

func (s *LedgerService) DeleteTransaction(ctx context.Context, id uint) error {
	return s.Repo.DeleteTransaction(ctx, id)
}

// Summary filters the ledger to the calendar day or month containing at
// and totals the filtered rows. The totals are accumulated with decimal
// arithmetic so the displayed balance does not drift with float rounding.
func (s *LedgerService) Summary(ctx context.Context, at time.Time, mode SummaryMode) (*LedgerSummary, error) {
	if mode != SummaryDay && mode != SummaryMonth {
		return nil, fmt.Errorf("%w: mode must be day or month", ErrValidation)
	}

	all, err := s.Repo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	at = at.UTC()
	filtered := make([]models.FinanceTransaction, 0)
	income := decimal.Zero
	expense := decimal.Zero

	for _, tx := range all {
		ts, err := time.Parse(models.TimeLayout, tx.Date)
		if err != nil {
			// Rows with unreadable timestamps fall outside every bucket.
			continue
		}
		ts = ts.UTC()

		if ts.Year() != at.Year() || ts.Month() != at.Month() {
			continue
		}
		if mode == SummaryDay && ts.Day() != at.Day() {
			continue
		}

		filtered = append(filtered, tx)
		if tx.Type == models.TransactionIncome {
			income = income.Add(decimal.NewFromFloat(tx.Amount))
		} else {
			expense = expense.Add(decimal.NewFromFloat(tx.Amount))
		}
	}

	inc, _ := income.Float64()
	exp, _ := expense.Float64()
	bal, _ := income.Sub(expense).Float64()

	return &LedgerSummary{
		Income:       inc,
		Expense:      exp,
		Balance:      bal,
		Transactions: filtered,
	}, nil
}
