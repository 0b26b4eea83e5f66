package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RusenAli99/say-nileti-im/internal/models"
)

func TestAddTransactionValidation(t *testing.T) {
	svc := &LedgerService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.AddTransaction(ctx, "transfer", 10, "")
	require.True(t, errors.Is(err, ErrValidation))

	_, err = svc.AddTransaction(ctx, models.TransactionIncome, -1, "")
	require.True(t, errors.Is(err, ErrValidation))

	tx, err := svc.AddTransaction(ctx, models.TransactionIncome, 10, "satış")
	require.NoError(t, err)
	require.NotZero(t, tx.ID)
	require.NotEmpty(t, tx.Date)
}

func TestUpdateTransactionNotFound(t *testing.T) {
	svc := &LedgerService{Repo: newTestRepo(t)}

	_, err := svc.UpdateTransaction(context.Background(), 42, models.TransactionIncome, 5, "")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestSummaryDayAndMonthBuckets(t *testing.T) {
	r := newTestRepo(t)
	svc := &LedgerService{Repo: r}
	ctx := context.Background()

	day1 := time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 20, 16, 30, 0, 0, time.UTC)
	otherMonth := time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)

	r.Now = func() time.Time { return day1 }
	_, err := svc.AddTransaction(ctx, models.TransactionIncome, 500, "telefon satışı")
	require.NoError(t, err)
	_, err = svc.AddTransaction(ctx, models.TransactionExpense, 120.50, "kargo")
	require.NoError(t, err)

	r.Now = func() time.Time { return day2 }
	_, err = svc.AddTransaction(ctx, models.TransactionIncome, 200, "kılıf")
	require.NoError(t, err)

	r.Now = func() time.Time { return otherMonth }
	_, err = svc.AddTransaction(ctx, models.TransactionExpense, 999, "kira")
	require.NoError(t, err)

	daySummary, err := svc.Summary(ctx, day1, SummaryDay)
	require.NoError(t, err)
	assert.Equal(t, 500.0, daySummary.Income)
	assert.Equal(t, 120.50, daySummary.Expense)
	assert.Equal(t, 379.50, daySummary.Balance)
	assert.Len(t, daySummary.Transactions, 2)

	monthSummary, err := svc.Summary(ctx, day1, SummaryMonth)
	require.NoError(t, err)
	assert.Equal(t, 700.0, monthSummary.Income)
	assert.Equal(t, 120.50, monthSummary.Expense)
	assert.Equal(t, 579.50, monthSummary.Balance)
	assert.Len(t, monthSummary.Transactions, 3)

	juneSummary, err := svc.Summary(ctx, otherMonth, SummaryMonth)
	require.NoError(t, err)
	assert.Equal(t, 0.0, juneSummary.Income)
	assert.Equal(t, 999.0, juneSummary.Expense)
	assert.Equal(t, -999.0, juneSummary.Balance)
}

func TestSummaryModeValidation(t *testing.T) {
	svc := &LedgerService{Repo: newTestRepo(t)}

	_, err := svc.Summary(context.Background(), time.Now(), "week")
	require.True(t, errors.Is(err, ErrValidation))
}

// The derived balance must agree with an independent filter-and-sum over
// the same bucket.
func TestSummaryMatchesIndependentComputation(t *testing.T) {
	r := newTestRepo(t)
	svc := &LedgerService{Repo: r}
	ctx := context.Background()

	at := time.Date(2024, 7, 3, 8, 0, 0, 0, time.UTC)
	r.Now = func() time.Time { return at }

	amounts := []struct {
		txType string
		amount float64
	}{
		{models.TransactionIncome, 10.10},
		{models.TransactionIncome, 20.20},
		{models.TransactionExpense, 5.05},
		{models.TransactionExpense, 1.01},
	}
	for _, a := range amounts {
		_, err := svc.AddTransaction(ctx, a.txType, a.amount, "")
		require.NoError(t, err)
	}

	summary, err := svc.Summary(ctx, at, SummaryDay)
	require.NoError(t, err)

	var income, expense float64
	for _, tx := range summary.Transactions {
		if tx.Type == models.TransactionIncome {
			income += tx.Amount
		} else {
			expense += tx.Amount
		}
	}
	assert.InDelta(t, income, summary.Income, 1e-9)
	assert.InDelta(t, expense, summary.Expense, 1e-9)
	assert.InDelta(t, income-expense, summary.Balance, 1e-9)
}
