package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/croshet/storefront-api/internal/application"
	"github.com/croshet/storefront-api/internal/domain/entity"
	"github.com/croshet/storefront-api/internal/interface/middleware"
	"github.com/croshet/storefront-api/pkg/response"
	"github.com/croshet/storefront-api/pkg/validation"
)

type OrderHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type checkoutLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

type checkoutRequest struct {
	Items            []checkoutLineRequest `json:"items" binding:"required,min=1,dive"`
	ShippingFeeCents int64                 `json:"shipping_fee_cents" binding:"gte=0"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=completed cancelled"`
}

// Checkout POST /api/v1/orders
func (h *OrderHandler) Checkout(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "invalid payload", validation.ToDetails(err))
		return
	}

	lines := make([]application.CheckoutLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, application.CheckoutLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	o, err := h.Svc.Checkout(c.Request.Context(), user, lines, req.ShippingFeeCents)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrProductNotFound):
			response.Error(c, http.StatusNotFound, response.CodeProductNotFound, "product not found", nil)
		case errors.Is(err, application.ErrInvalidQuantity):
			response.Error(c, http.StatusBadRequest, response.CodeInvalidQuantity, "quantity must be at least 1", nil)
		default:
			h.Logger.WithError(err).Error("checkout failed")
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, toOrderView(o), "order placed", nil)
}

// ListMine GET /api/v1/orders
func (h *OrderHandler) ListMine(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	orders, err := h.Svc.ListMine(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("order list failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		return
	}
	response.Success(c, http.StatusOK, toOrderViews(orders), "orders", gin.H{"count": len(orders)})
}

// ListAll GET /api/v1/admin/orders (admin)
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("admin order list failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		return
	}
	response.Success(c, http.StatusOK, toOrderViews(orders), "orders", gin.H{"count": len(orders)})
}

// UpdateStatus PATCH /api/v1/admin/orders/:id/status (admin)
// Only pending orders may change, to completed or cancelled.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation,
			"status must be one of: "+entity.OrderCompleted+", "+entity.OrderCancelled, validation.ToDetails(err))
		return
	}
	o, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrOrderNotFound):
			response.Error(c, http.StatusNotFound, response.CodeOrderNotFound, "order not found", nil)
		case errors.Is(err, application.ErrInvalidStatusChange):
			response.Error(c, http.StatusBadRequest, response.CodeInvalidStatusChange, "order status cannot change from its current state", nil)
		default:
			h.Logger.WithError(err).Error("order status update failed")
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, toOrderView(o), "order status updated", nil)
}
