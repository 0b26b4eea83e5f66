package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/RusenAli99/say-nileti-im/internal/models"
)

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

// ListProducts filters by category and, when brand is non-empty, by brand
// too. No matches is an empty list, not an error.
func (r *GormRepo) ListProducts(ctx context.Context, category, brand string) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Where("category = ?", category)
	if brand != "" {
		q = q.Where("brand = ?", brand)
	}

	items := make([]models.Product, 0)
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).First(&prod, id).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

// UpdateProduct overwrites every mutable field of the row with the values
// in prod. The id itself never changes.
func (r *GormRepo) UpdateProduct(ctx context.Context, id uint, prod *models.Product) error {
	var existing models.Product
	if err := r.DB.WithContext(ctx).First(&existing, id).Error; err != nil {
		return err
	}

	prod.ID = existing.ID
	return r.DB.WithContext(ctx).Save(prod).Error
}

// UpdateStock writes the quantity column only. Clamping to zero is the
// caller's job; the store persists whatever it is given.
func (r *GormRepo) UpdateStock(ctx context.Context, id uint, quantity int) error {
	res := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteProduct is idempotent: deleting an id that does not exist succeeds.
func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Product{}, id).Error
}
