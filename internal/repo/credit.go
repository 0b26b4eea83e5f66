package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/RusenAli99/say-nileti-im/internal/models"
)

func (r *GormRepo) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	customer.CreatedAt = r.stamp()
	return r.DB.WithContext(ctx).Create(customer).Error
}

func (r *GormRepo) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// ListCustomers returns every customer with the derived outstanding balance.
// Customers without debt rows appear with totalDebt 0.
func (r *GormRepo) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	items := make([]models.Customer, 0)
	err := r.DB.WithContext(ctx).
		Model(&models.Customer{}).
		Select(`customers.*, COALESCE(SUM(debts.amount), 0) AS "totalDebt"`).
		Joins("LEFT JOIN debts ON debts.customer_id = customers.id").
		Group("customers.id, customers.name, customers.phone, customers.created_at").
		Order("customers.id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteCustomer removes the customer's debt entries and then the customer
// row in one transaction. The underlying schema declares a cascade too, but
// the explicit child delete keeps old data files safe where foreign keys
// are not enforced.
func (r *GormRepo) DeleteCustomer(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.DebtEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Customer{}, id).Error
	})
}

// RecordCreditTransaction performs the credit-book dual-write: the signed
// debt entry and its mirrored ledger row are inserted in one transaction,
// so a failure of either write rolls back both.
func (r *GormRepo) RecordCreditTransaction(ctx context.Context, debt *models.DebtEntry, fin *models.FinanceTransaction) error {
	stamp := r.stamp()
	debt.Date = stamp
	fin.Date = stamp

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(debt).Error; err != nil {
			return err
		}
		return tx.Create(fin).Error
	})
}

func (r *GormRepo) ListDebts(ctx context.Context, customerID uint) ([]models.DebtEntry, error) {
	items := make([]models.DebtEntry, 0)
	err := r.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteDebt removes the debt entry only. The ledger row written alongside
// it stays untouched; the pairing is historical, not a foreign key.
func (r *GormRepo) DeleteDebt(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.DebtEntry{}, id).Error
}

// CustomerBalance sums the signed debt entries of one customer. Positive
// means the customer owes money; overpayment goes negative, no floor.
func (r *GormRepo) CustomerBalance(ctx context.Context, customerID uint) (float64, error) {
	var balance float64
	err := r.DB.WithContext(ctx).
		Model(&models.DebtEntry{}).
		Where("customer_id = ?", customerID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&balance).Error
	return balance, err
}
