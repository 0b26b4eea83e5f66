package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/RusenAli99/say-nileti-im/internal/models"
)

func TestProductCreateAndFilter(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	prod := models.Product{
		Category: "Şarj Adaptörleri",
		Brand:    "Apple",
		Model:    "20W USB-C",
		Price:    549.90,
		Quantity: 1,
		HasBox:   true,
	}
	require.NoError(t, r.CreateProduct(ctx, &prod))
	require.NotZero(t, prod.ID)

	matched, err := r.ListProducts(ctx, "Şarj Adaptörleri", "Apple")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	require.Equal(t, "20W USB-C", matched[0].Model)
	require.True(t, matched[0].HasBox)

	otherBrand, err := r.ListProducts(ctx, "Şarj Adaptörleri", "Samsung")
	require.NoError(t, err)
	require.Empty(t, otherBrand)

	wholeCategory, err := r.ListProducts(ctx, "Şarj Adaptörleri", "")
	require.NoError(t, err)
	require.Len(t, wholeCategory, 1)
}

func TestProductCreateKeepsZeroQuantity(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	// Out-of-stock items are created with quantity 0; the column's
	// DEFAULT 1 must not override an explicit zero.
	prod := models.Product{
		Category: "Telefonlar",
		Brand:    "Apple",
		Model:    "iPhone 13",
		Price:    28000,
		Quantity: 0,
	}
	require.NoError(t, r.CreateProduct(ctx, &prod))

	got, err := r.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.Quantity)
}

func TestProductUpdateOverwritesAllFields(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	prod := models.Product{Category: "Telefonlar", Brand: "Samsung", Model: "Galaxy A54", Price: 12000, Quantity: 3}
	require.NoError(t, r.CreateProduct(ctx, &prod))

	updated := models.Product{
		Category:    "Telefonlar",
		Brand:       "Samsung",
		Model:       "Galaxy A55",
		Price:       13500,
		BuyingPrice: 11000,
		Quantity:    2,
		Color:       "Siyah",
	}
	require.NoError(t, r.UpdateProduct(ctx, prod.ID, &updated))

	got, err := r.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	require.Equal(t, "Galaxy A55", got.Model)
	require.Equal(t, 13500.0, got.Price)
	require.Equal(t, 11000.0, got.BuyingPrice)
	require.Equal(t, "Siyah", got.Color)
	require.Equal(t, 2, got.Quantity)
}

func TestProductUpdateMissingID(t *testing.T) {
	r := newTestRepo(t)

	err := r.UpdateProduct(context.Background(), 999, &models.Product{Model: "x"})
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUpdateStockPersistsExactQuantity(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	prod := models.Product{Category: "Kılıflar", Brand: "Spigen", Model: "Tough Armor", Quantity: 5}
	require.NoError(t, r.CreateProduct(ctx, &prod))

	require.NoError(t, r.UpdateStock(ctx, prod.ID, 12))

	got, err := r.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	require.Equal(t, 12, got.Quantity)

	err = r.UpdateStock(ctx, 12345, 1)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteProductIdempotent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	prod := models.Product{Category: "Kulaklıklar", Brand: "JBL", Model: "Tune 510BT", Quantity: 1}
	require.NoError(t, r.CreateProduct(ctx, &prod))

	require.NoError(t, r.DeleteProduct(ctx, prod.ID))
	require.NoError(t, r.DeleteProduct(ctx, prod.ID))

	items, err := r.ListProducts(ctx, "Kulaklıklar", "JBL")
	require.NoError(t, err)
	require.Empty(t, items)
}
