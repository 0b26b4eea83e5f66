package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RusenAli99/say-nileti-im/internal/models"
)

func TestCustomersWithDerivedTotalDebt(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	ali := models.Customer{Name: "Ali"}
	ayse := models.Customer{Name: "Ayşe"}
	require.NoError(t, r.CreateCustomer(ctx, &ali))
	require.NoError(t, r.CreateCustomer(ctx, &ayse))
	require.NotEmpty(t, ali.CreatedAt)

	debt := models.DebtEntry{CustomerID: ali.ID, Amount: 100, Description: "Borç"}
	fin := models.FinanceTransaction{Type: models.TransactionExpense, Amount: 100}
	require.NoError(t, r.RecordCreditTransaction(ctx, &debt, &fin))

	payment := models.DebtEntry{CustomerID: ali.ID, Amount: -40, Description: "Ödeme / Tahsilat"}
	finPay := models.FinanceTransaction{Type: models.TransactionIncome, Amount: 40}
	require.NoError(t, r.RecordCreditTransaction(ctx, &payment, &finPay))

	customers, err := r.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)

	// Newest first: Ayşe then Ali.
	require.Equal(t, "Ayşe", customers[0].Name)
	require.Equal(t, 0.0, customers[0].TotalDebt)
	require.Equal(t, "Ali", customers[1].Name)
	require.Equal(t, 60.0, customers[1].TotalDebt)
}

func TestRecordCreditTransactionWritesBothRows(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	customer := models.Customer{Name: "Veli"}
	require.NoError(t, r.CreateCustomer(ctx, &customer))

	debt := models.DebtEntry{CustomerID: customer.ID, Amount: 150, Description: "Borç"}
	fin := models.FinanceTransaction{Type: models.TransactionExpense, Amount: 150, Description: "Veresiye Verildi: Veli - "}
	require.NoError(t, r.RecordCreditTransaction(ctx, &debt, &fin))

	require.NotZero(t, debt.ID)
	require.NotZero(t, fin.ID)
	require.Equal(t, debt.Date, fin.Date)

	debts, err := r.ListDebts(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, debts, 1)

	txs, err := r.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, models.TransactionExpense, txs[0].Type)
}

func TestDeleteCustomerRemovesDebts(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	customer := models.Customer{Name: "Mehmet"}
	require.NoError(t, r.CreateCustomer(ctx, &customer))

	for _, amount := range []float64{100, -30, 55} {
		debt := models.DebtEntry{CustomerID: customer.ID, Amount: amount}
		fin := models.FinanceTransaction{Type: models.TransactionExpense, Amount: amount}
		require.NoError(t, r.RecordCreditTransaction(ctx, &debt, &fin))
	}

	require.NoError(t, r.DeleteCustomer(ctx, customer.ID))

	debts, err := r.ListDebts(ctx, customer.ID)
	require.NoError(t, err)
	require.Empty(t, debts)

	customers, err := r.ListCustomers(ctx)
	require.NoError(t, err)
	require.Empty(t, customers)
}

func TestDeleteDebtLeavesLedgerRow(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	customer := models.Customer{Name: "Ali"}
	require.NoError(t, r.CreateCustomer(ctx, &customer))

	payment := models.DebtEntry{CustomerID: customer.ID, Amount: -40}
	fin := models.FinanceTransaction{Type: models.TransactionIncome, Amount: 40}
	require.NoError(t, r.RecordCreditTransaction(ctx, &payment, &fin))

	require.NoError(t, r.DeleteDebt(ctx, payment.ID))

	debts, err := r.ListDebts(ctx, customer.ID)
	require.NoError(t, err)
	require.Empty(t, debts)

	// The paired ledger row survives the debt entry. The linkage is
	// historical text only, so nothing cascades.
	txs, err := r.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, 40.0, txs[0].Amount)
}

func TestCustomerBalance(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	customer := models.Customer{Name: "Zeynep"}
	require.NoError(t, r.CreateCustomer(ctx, &customer))

	balance, err := r.CustomerBalance(ctx, customer.ID)
	require.NoError(t, err)
	require.Equal(t, 0.0, balance)

	for _, amount := range []float64{200, -250} {
		debt := models.DebtEntry{CustomerID: customer.ID, Amount: amount}
		fin := models.FinanceTransaction{Type: models.TransactionIncome, Amount: amount}
		require.NoError(t, r.RecordCreditTransaction(ctx, &debt, &fin))
	}

	// Overpayment goes negative, no floor.
	balance, err = r.CustomerBalance(ctx, customer.ID)
	require.NoError(t, err)
	require.Equal(t, -50.0, balance)
}
