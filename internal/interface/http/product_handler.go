package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/croshet/storefront-api/internal/application"
	"github.com/croshet/storefront-api/pkg/response"
	"github.com/croshet/storefront-api/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

type productRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	Currency    string `json:"currency"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	Stock       int    `json:"stock" binding:"gte=0"`
}

func (r *productRequest) toInput() application.ProductInput {
	return application.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		Currency:    r.Currency,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Stock:       r.Stock,
	}
}

// List GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.Logger.WithError(err).Error("product list failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		return
	}
	response.Success(c, http.StatusOK, toProductViews(products), "products", gin.H{"count": len(products)})
}

// Get GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeProductNotFound, "product not found", nil)
			return
		}
		h.Logger.WithError(err).Error("product get failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		return
	}
	response.Success(c, http.StatusOK, toProductView(p), "product", nil)
}

// Search GET /api/v1/products/search?q=...&size=...
func (h *ProductHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("product search failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}

// Create POST /api/v1/products (admin)
func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.Logger.WithError(err).Error("product create failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		return
	}
	response.Success(c, http.StatusCreated, toProductView(p), "product created", nil)
}

// Update PUT /api/v1/products/:id (admin)
func (h *ProductHandler) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeProductNotFound, "product not found", nil)
			return
		}
		h.Logger.WithError(err).Error("product update failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		return
	}
	response.Success(c, http.StatusOK, toProductView(p), "product updated", nil)
}

// Delete DELETE /api/v1/products/:id (admin)
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeProductNotFound, "product not found", nil)
			return
		}
		h.Logger.WithError(err).Error("product delete failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "product deleted", nil)
}
