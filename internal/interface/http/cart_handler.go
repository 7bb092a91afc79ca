package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/croshet/storefront-api/internal/application"
	"github.com/croshet/storefront-api/internal/interface/middleware"
	"github.com/croshet/storefront-api/pkg/response"
	"github.com/croshet/storefront-api/pkg/validation"
)

type CartHandler struct {
	Svc    *application.CartService
	Logger *logrus.Logger
}

func NewCartHandler(svc *application.CartService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Svc: svc, Logger: logger}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Get GET /api/v1/cart
func (h *CartHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	cart, err := h.Svc.Get(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("cart get failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		return
	}
	response.Success(c, http.StatusOK, toCartView(cart), "cart", nil)
}

// AddItem POST /api/v1/cart/items
// Adding a product already in the cart increments its quantity.
func (h *CartHandler) AddItem(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "invalid payload", validation.ToDetails(err))
		return
	}
	cart, err := h.Svc.Add(c.Request.Context(), uid, req.ProductID, req.Quantity)
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toCartView(cart), "item added", nil)
}

// SetQuantity PUT /api/v1/cart/items/:productID
// A quantity of zero or below removes the line.
func (h *CartHandler) SetQuantity(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "invalid payload", validation.ToDetails(err))
		return
	}
	cart, err := h.Svc.SetQuantity(c.Request.Context(), uid, c.Param("productID"), req.Quantity)
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toCartView(cart), "cart updated", nil)
}

// RemoveItem DELETE /api/v1/cart/items/:productID
func (h *CartHandler) RemoveItem(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	cart, err := h.Svc.Remove(c.Request.Context(), uid, c.Param("productID"))
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toCartView(cart), "item removed", nil)
}

// Clear DELETE /api/v1/cart
func (h *CartHandler) Clear(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Clear(c.Request.Context(), uid); err != nil {
		h.writeCartError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "cart cleared", nil)
}

func (h *CartHandler) writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrProductNotFound):
		response.Error(c, http.StatusNotFound, response.CodeProductNotFound, "product not found", nil)
	case errors.Is(err, application.ErrInvalidQuantity):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidQuantity, "quantity must be at least 1", nil)
	default:
		h.Logger.WithError(err).Error("cart operation failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
	}
}
