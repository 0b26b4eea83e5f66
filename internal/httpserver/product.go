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
	"github.com/RusenAli99/say-nileti-im/internal/models"
	"github.com/RusenAli99/say-nileti-im/internal/search"
	"github.com/RusenAli99/say-nileti-im/internal/service"
	"github.com/RusenAli99/say-nileti-im/internal/transport"
)

type ProductHTTP struct {
	Svc      *service.CatalogService
	Producer *events.Producer
	Search   *search.Service
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}
	return uint(id), nil
}

func (h *ProductHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event_publish_failed", "error", err)
	}
}

func (h *ProductHTTP) index(c echo.Context, prod *models.Product) {
	if err := h.Search.IndexProduct(c.Request().Context(), prod); err != nil {
		logging.FromContext(c.Request().Context()).Error("search_index_failed", "product_id", prod.ID, "error", err)
	}
}

func productFromRequest(req *transport.ProductRequest) models.Product {
	return models.Product{
		Category:        req.Category,
		Brand:           req.Brand,
		Model:           req.Model,
		Storage:         req.Storage,
		RAM:             req.RAM,
		Color:           req.Color,
		ScreenSize:      req.ScreenSize,
		Camera:          req.Camera,
		Battery:         req.Battery,
		OS:              req.OS,
		Warranty:        req.Warranty,
		Price:           req.Price,
		BuyingPrice:     req.BuyingPrice,
		Quantity:        req.Quantity,
		ImageURI:        req.ImageURI,
		Cosmetic:        req.Cosmetic,
		BatteryHealth:   req.BatteryHealth,
		IMEIStatus:      req.IMEIStatus,
		HasBox:          req.HasBox,
		HasChangedParts: req.HasChangedParts,
	}
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	category := c.QueryParam("category")
	brand := c.QueryParam("brand")

	items, err := h.Svc.GetProducts(ctx, category, brand)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("get_products_failed", "status", 400, "reason", "category required", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "category required")
		}
		l.Error("get_products_failed", "status", 500, "reason", "cannot list products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	l.Info("get_products_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	prod, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_failed", "status", 404, "reason", "product not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("get_product_failed", "status", 500, "reason", "cannot get product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod := productFromRequest(&req)
	if err := h.Svc.AddProduct(ctx, &prod); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("product_create_failed", "status", 400, "reason", "invalid fields", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("product_create_failed", "status", 500, "reason", "cannot add product to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add product to db")
	}

	h.index(c, &prod)
	h.publish(c, strconv.FormatUint(uint64(prod.ID), 10), map[string]any{
		"type":      "product_created",
		"productID": prod.ID,
		"category":  prod.Category,
		"brand":     prod.Brand,
		"model":     prod.Model,
	})

	l.Info("create_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusCreated, prod)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_update_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod := productFromRequest(&req)
	if err := h.Svc.UpdateProduct(ctx, id, &prod); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("product_update_failed", "status", 404, "reason", "product not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("product_update_failed", "status", 400, "reason", "invalid fields", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("product_update_failed", "status", 500, "reason", "cannot update product", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update product")
		}
	}

	h.index(c, &prod)
	h.publish(c, strconv.FormatUint(uint64(prod.ID), 10), map[string]any{
		"type":      "product_updated",
		"productID": prod.ID,
		"model":     prod.Model,
	})

	l.Info("update_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) SetStock(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.set_stock")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.SetStockRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_stock_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateStock(ctx, id, req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("set_stock_failed", "status", 404, "reason", "product not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("set_stock_failed", "status", 400, "reason", "invalid quantity", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("set_stock_failed", "status", 500, "reason", "cannot update stock", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update stock")
		}
	}

	l.Info("set_stock_success", "product_id", id, "quantity", req.Quantity)
	return c.JSON(http.StatusOK, map[string]any{"id": id, "quantity": req.Quantity})
}

func (h *ProductHTTP) AdjustStock(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.adjust_stock")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.AdjustStockRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("adjust_stock_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	quantity, err := h.Svc.AdjustStock(ctx, id, req.Delta)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("adjust_stock_failed", "status", 404, "reason", "product not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("adjust_stock_failed", "status", 500, "reason", "cannot adjust stock", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot adjust stock")
	}

	l.Info("adjust_stock_success", "product_id", id, "quantity", quantity)
	return c.JSON(http.StatusOK, map[string]any{"id": id, "quantity": quantity})
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		l.Error("product_delete_failed", "status", 500, "reason", "cannot delete product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product")
	}

	if err := h.Search.DeleteProduct(ctx, id); err != nil {
		l.Error("search_delete_failed", "product_id", id, "error", err)
	}
	h.publish(c, strconv.FormatUint(uint64(id), 10), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	l.Info("delete_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	if !h.Search.Enabled() {
		l.Warn("search_failed", "status", 503, "reason", "search not configured")
		return echo.NewHTTPError(http.StatusServiceUnavailable, "search not configured")
	}

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q required")
	}

	from := parseIntDefault(c.QueryParam("from"), 0)
	size := parseIntDefault(c.QueryParam("size"), 20)

	total, items, err := h.Search.Search(ctx, q, from, size)
	if err != nil {
		l.Error("search_failed", "status", 500, "reason", "query failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	l.Info("search_success", "total", total)
	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{"total": total, "from": from, "size": size},
	})
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
