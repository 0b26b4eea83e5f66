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

type CreditService struct {
	Repo *repo.GormRepo
}

// CreditMode is the direction of a credit-book transaction as the user
// enters it: goods or money given on credit, or a payment received.
type CreditMode string

const (
	ModeDebt    CreditMode = "debt"
	ModePayment CreditMode = "payment"
)

func (s *CreditService) AddCustomer(ctx context.Context, name, phone string) (*models.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}

	customer := models.Customer{Name: name, Phone: phone}
	if err := s.Repo.CreateCustomer(ctx, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CreditService) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.ListCustomers(ctx)
}

func (s *CreditService) DeleteCustomer(ctx context.Context, id uint) error {
	return s.Repo.DeleteCustomer(ctx, id)
}

// RecordCreditTransaction is the credit-book dual-write. The entered amount
// is a positive magnitude; mode decides the sign of the debt entry and the
// type of the mirrored ledger row:
//
//	payment: debt entry -amount, ledger income of amount
//	debt:    debt entry +amount, ledger expense of amount
//
// Both rows are written in one storage transaction.
func (s *CreditService) RecordCreditTransaction(ctx context.Context, customerID uint, mode CreditMode, amount float64, description string) (*models.DebtEntry, *models.FinanceTransaction, error) {
	if mode != ModeDebt && mode != ModePayment {
		return nil, nil, fmt.Errorf("%w: mode must be debt or payment", ErrValidation)
	}
	if amount <= 0 {
		return nil, nil, fmt.Errorf("%w: amount must be > 0", ErrValidation)
	}

	customer, err := s.Repo.GetCustomer(ctx, customerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("customer %d: %w", customerID, ErrNotFound)
	}
	if err != nil {
		return nil, nil, err
	}

	debtAmount := amount
	entryDesc := description
	var finType, finDesc string

	if mode == ModePayment {
		debtAmount = -amount
		if entryDesc == "" {
			entryDesc = "Ödeme / Tahsilat"
		}
		finType = models.TransactionIncome
		finDesc = fmt.Sprintf("Veresiye Tahsilat: %s - %s", customer.Name, description)
	} else {
		if entryDesc == "" {
			entryDesc = "Borç"
		}
		finType = models.TransactionExpense
		finDesc = fmt.Sprintf("Veresiye Verildi: %s - %s", customer.Name, description)
	}

	debt := models.DebtEntry{
		CustomerID:  customerID,
		Amount:      debtAmount,
		Description: entryDesc,
	}
	fin := models.FinanceTransaction{
		Type:        finType,
		Amount:      amount,
		Description: finDesc,
	}

	if err := s.Repo.RecordCreditTransaction(ctx, &debt, &fin); err != nil {
		return nil, nil, err
	}
	return &debt, &fin, nil
}

func (s *CreditService) GetCustomerDebts(ctx context.Context, customerID uint) ([]models.DebtEntry, error) {
	return s.Repo.ListDebts(ctx, customerID)
}

// DeleteDebt removes the debt entry only; the ledger row recorded with it
// is left in place.
func (s *CreditService) DeleteDebt(ctx context.Context, id uint) error {
	return s.Repo.DeleteDebt(ctx, id)
}

func (s *CreditService) CustomerBalance(ctx context.Context, customerID uint) (float64, error) {
	return s.Repo.CustomerBalance(ctx, customerID)
}
