package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/RusenAli99/say-nileti-im/internal/models"
	"github.com/RusenAli99/say-nileti-im/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) AddProduct(ctx context.Context, prod *models.Product) error {
	if strings.TrimSpace(prod.Category) == "" {
		return fmt.Errorf("%w: category required", ErrValidation)
	}
	if strings.TrimSpace(prod.Brand) == "" {
		return fmt.Errorf("%w: brand required", ErrValidation)
	}
	if strings.TrimSpace(prod.Model) == "" {
		return fmt.Errorf("%w: model required", ErrValidation)
	}
	if prod.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if prod.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
	}

	return s.Repo.CreateProduct(ctx, prod)
}

func (s *CatalogService) GetProducts(ctx context.Context, category, brand string) ([]models.Product, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category required", ErrValidation)
	}
	return s.Repo.ListProducts(ctx, category, brand)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return prod, err
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, prod *models.Product) error {
	if prod.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if prod.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
	}

	err := s.Repo.UpdateProduct(ctx, id, prod)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return err
}

func (s *CatalogService) UpdateStock(ctx context.Context, id uint, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
	}

	err := s.Repo.UpdateStock(ctx, id, quantity)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return err
}

// AdjustStock applies a relative stock change with a floor of zero, so the
// persisted quantity never goes negative. Returns the resulting quantity.
func (s *CatalogService) AdjustStock(ctx context.Context, id uint, delta int) (int, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return 0, err
	}

	quantity := prod.Quantity + delta
	if quantity < 0 {
		quantity = 0
	}
	if quantity == prod.Quantity {
		return quantity, nil
	}

	if err := s.Repo.UpdateStock(ctx, id, quantity); err != nil {
		return 0, err
	}
	return quantity, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	return s.Repo.DeleteProduct(ctx, id)
}
