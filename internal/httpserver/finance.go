package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/RusenAli99/say-nileti-im/internal/logging"
	"github.com/RusenAli99/say-nileti-im/internal/service"
	"github.com/RusenAli99/say-nileti-im/internal/transport"
)

type FinanceHTTP struct {
	Svc *service.LedgerService
}

func (h *FinanceHTTP) GetTransactions(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "finance.get_transactions")

	items, err := h.Svc.GetTransactions(ctx)
	if err != nil {
		l.Error("get_transactions_failed", "status", 500, "reason", "cannot list transactions", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list transactions")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *FinanceHTTP) CreateTransaction(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "finance.create_transaction")

	var req transport.TransactionRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("transaction_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	tx, err := h.Svc.AddTransaction(ctx, req.Type, req.Amount, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("transaction_create_failed", "status", 400, "reason", "invalid fields", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("transaction_create_failed", "status", 500, "reason", "cannot add transaction", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add transaction")
	}

	l.Info("create_transaction_success", "transaction_id", tx.ID, "type", tx.Type)
	return c.JSON(http.StatusCreated, tx)
}

func (h *FinanceHTTP) UpdateTransaction(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "finance.update_transaction")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.TransactionRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("transaction_update_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	tx, err := h.Svc.UpdateTransaction(ctx, id, req.Type, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("transaction_update_failed", "status", 404, "reason", "transaction not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "transaction not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("transaction_update_failed", "status", 400, "reason", "invalid fields", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("transaction_update_failed", "status", 500, "reason", "cannot update transaction", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update transaction")
		}
	}

	l.Info("update_transaction_success", "transaction_id", tx.ID)
	return c.JSON(http.StatusOK, tx)
}

func (h *FinanceHTTP) DeleteTransaction(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "finance.delete_transaction")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteTransaction(ctx, id); err != nil {
		l.Error("transaction_delete_failed", "status", 500, "reason", "cannot delete transaction", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete transaction")
	}

	l.Info("delete_transaction_success", "transaction_id", id)
	return c.NoContent(http.StatusNoContent)
}

// Summary answers the day/month cash view: ?date=2024-05-17&mode=day|month.
// An omitted date means today.
func (h *FinanceHTTP) Summary(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "finance.summary")

	mode := service.SummaryMode(c.QueryParam("mode"))
	if mode == "" {
		mode = service.SummaryDay
	}

	at := time.Now().UTC()
	if dateParam := c.QueryParam("date"); dateParam != "" {
		parsed, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			l.Warn("summary_failed", "status", 400, "reason", "invalid date", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		at = parsed
	}

	summary, err := h.Svc.Summary(ctx, at, mode)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("summary_failed", "status", 400, "reason", "invalid mode", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("summary_failed", "status", 500, "reason", "cannot compute summary", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot compute summary")
	}

	return c.JSON(http.StatusOK, summary)
}
