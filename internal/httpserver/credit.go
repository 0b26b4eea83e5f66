package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/RusenAli99/say-nileti-im/internal/events"
	"github.com/RusenAli99/say-nileti-im/internal/logging"
	"github.com/RusenAli99/say-nileti-im/internal/service"
	"github.com/RusenAli99/say-nileti-im/internal/transport"
)

type CreditHTTP struct {
	Svc      *service.CreditService
	Producer *events.Producer
}

func (h *CreditHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event_publish_failed", "error", err)
	}
}

func (h *CreditHTTP) GetCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "credit.get_customers")

	items, err := h.Svc.GetCustomers(ctx)
	if err != nil {
		l.Error("get_customers_failed", "status", 500, "reason", "cannot list customers", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list customers")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CreditHTTP) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "credit.create_customer")

	var req transport.CustomerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("customer_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.Svc.AddCustomer(ctx, req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("customer_create_failed", "status", 400, "reason", "name required", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "name required")
		}
		l.Error("customer_create_failed", "status", 500, "reason", "cannot add customer", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add customer")
	}

	l.Info("create_customer_success", "customer_id", customer.ID)
	return c.JSON(http.StatusCreated, customer)
}

func (h *CreditHTTP) DeleteCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "credit.delete_customer")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteCustomer(ctx, id); err != nil {
		l.Error("customer_delete_failed", "status", 500, "reason", "cannot delete customer", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete customer")
	}

	l.Info("delete_customer_success", "customer_id", id)
	return c.NoContent(http.StatusNoContent)
}

// RecordTransaction handles the credit-book dual-write: one call records
// the signed debt entry and the mirrored cash ledger row.
func (h *CreditHTTP) RecordTransaction(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "credit.record_transaction")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.CreditTransactionRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("credit_transaction_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	debt, fin, err := h.Svc.RecordCreditTransaction(ctx, id, service.CreditMode(req.Mode), req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("credit_transaction_failed", "status", 404, "reason", "customer not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "customer not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("credit_transaction_failed", "status", 400, "reason", "invalid fields", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("credit_transaction_failed", "status", 500, "reason", "cannot record transaction", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot record transaction")
		}
	}

	h.publish(c, strconv.FormatUint(uint64(id), 10), map[string]any{
		"type":        "credit_transaction_recorded",
		"customerID":  id,
		"mode":        req.Mode,
		"amount":      req.Amount,
		"debtEntryID": debt.ID,
		"financeID":   fin.ID,
	})

	l.Info("credit_transaction_success", "customer_id", id, "mode", req.Mode)
	return c.JSON(http.StatusCreated, map[string]any{"debt": debt, "finance": fin})
}

func (h *CreditHTTP) GetCustomerDebts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "credit.get_customer_debts")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	items, err := h.Svc.GetCustomerDebts(ctx, id)
	if err != nil {
		l.Error("get_customer_debts_failed", "status", 500, "reason", "cannot list debts", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list debts")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CreditHTTP) CustomerBalance(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "credit.customer_balance")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	balance, err := h.Svc.CustomerBalance(ctx, id)
	if err != nil {
		l.Error("customer_balance_failed", "status", 500, "reason", "cannot compute balance", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot compute balance")
	}

	return c.JSON(http.StatusOK, map[string]any{"customer_id": id, "balance": balance})
}

func (h *CreditHTTP) DeleteDebt(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "credit.delete_debt")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteDebt(ctx, id); err != nil {
		l.Error("debt_delete_failed", "status", 500, "reason", "cannot delete debt entry", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete debt entry")
	}

	l.Info("delete_debt_success", "debt_id", id)
	return c.NoContent(http.StatusNoContent)
}
