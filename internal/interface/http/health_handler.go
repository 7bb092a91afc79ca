package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/croshet/storefront-api/pkg/response"
)

type HealthHandler struct {
	AppName string
	Env     string
}

func NewHealthHandler(appName, env string) *HealthHandler {
	return &HealthHandler{AppName: appName, Env: env}
}

// Health GET /api/v1/health
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"app": h.AppName,
		"env": h.Env,
	}, "ok", nil)
}
