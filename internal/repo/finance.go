package repo

import (
	"context"

	"github.com/RusenAli99/say-nileti-im/internal/models"
)

// CreateTransaction appends a ledger row. The timestamp is assigned here,
// at write time, never by the caller.
func (r *GormRepo) CreateTransaction(ctx context.Context, tx *models.FinanceTransaction) error {
	tx.Date = r.stamp()
	return r.DB.WithContext(ctx).Create(tx).Error
}

func (r *GormRepo) ListTransactions(ctx context.Context) ([]models.FinanceTransaction, error) {
	items := make([]models.FinanceTransaction, 0)
	if err := r.DB.WithContext(ctx).Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateTransaction overwrites type, amount and description and refreshes
// the timestamp to the update time. The original creation time is lost.
func (r *GormRepo) UpdateTransaction(ctx context.Context, id uint, txType string, amount float64, description string) (*models.FinanceTransaction, error) {
	var tx models.FinanceTransaction
	if err := r.DB.WithContext(ctx).First(&tx, id).Error; err != nil {
		return nil, err
	}

	tx.Type = txType
	tx.Amount = amount
	tx.Description = description
	tx.Date = r.stamp()
	if err := r.DB.WithContext(ctx).Save(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *GormRepo) DeleteTransaction(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.FinanceTransaction{}, id).Error
}
