package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RusenAli99/say-nileti-im/internal/models"
)

func TestAddProductValidation(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	err := svc.AddProduct(ctx, &models.Product{Brand: "Apple", Model: "20W"})
	require.True(t, errors.Is(err, ErrValidation))

	err = svc.AddProduct(ctx, &models.Product{Category: "Şarj Adaptörleri", Model: "20W"})
	require.True(t, errors.Is(err, ErrValidation))

	err = svc.AddProduct(ctx, &models.Product{Category: "Şarj Adaptörleri", Brand: "Apple"})
	require.True(t, errors.Is(err, ErrValidation))

	err = svc.AddProduct(ctx, &models.Product{Category: "Şarj Adaptörleri", Brand: "Apple", Model: "20W", Price: -1})
	require.True(t, errors.Is(err, ErrValidation))

	err = svc.AddProduct(ctx, &models.Product{Category: "Şarj Adaptörleri", Brand: "Apple", Model: "20W", Price: 549.90, Quantity: 1})
	require.NoError(t, err)
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	prod := models.Product{Category: "Kılıflar", Brand: "Spigen", Model: "Liquid Air", Quantity: 2}
	require.NoError(t, svc.AddProduct(ctx, &prod))

	quantity, err := svc.AdjustStock(ctx, prod.ID, -1)
	require.NoError(t, err)
	require.Equal(t, 1, quantity)

	// Going below zero clamps; the persisted value is never negative.
	quantity, err = svc.AdjustStock(ctx, prod.ID, -5)
	require.NoError(t, err)
	require.Equal(t, 0, quantity)

	got, err := svc.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.Quantity)

	quantity, err = svc.AdjustStock(ctx, prod.ID, 3)
	require.NoError(t, err)
	require.Equal(t, 3, quantity)

	_, err = svc.AdjustStock(ctx, 9999, 1)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateStockRejectsNegative(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	prod := models.Product{Category: "Kılıflar", Brand: "Spigen", Model: "Ultra Hybrid", Quantity: 2}
	require.NoError(t, svc.AddProduct(ctx, &prod))

	err := svc.UpdateStock(ctx, prod.ID, -1)
	require.True(t, errors.Is(err, ErrValidation))

	require.NoError(t, svc.UpdateStock(ctx, prod.ID, 7))
	got, err := svc.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	require.Equal(t, 7, got.Quantity)
}

func TestNoteServiceValidation(t *testing.T) {
	svc := &NoteService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.AddNote(ctx, "   ")
	require.True(t, errors.Is(err, ErrValidation))

	note, err := svc.AddNote(ctx, "x")
	require.NoError(t, err)

	updated, err := svc.UpdateNote(ctx, note.ID, "y")
	require.NoError(t, err)
	require.Equal(t, "y", updated.Text)
	require.GreaterOrEqual(t, updated.Date, note.Date)

	_, err = svc.UpdateNote(ctx, 9999, "z")
	require.True(t, errors.Is(err, ErrNotFound))
}
