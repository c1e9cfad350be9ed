package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"showcase-backend/internal/middleware"
	"showcase-backend/internal/service"
)

type DecorateHandler struct {
	decorateService *service.DecorateService
}

func NewDecorateHandler(decorateService *service.DecorateService) *DecorateHandler {
	return &DecorateHandler{decorateService: decorateService}
}

type decorateRequest struct {
	Type string `json:"type" binding:"required,blocktype"`
	HTML string `json:"html" binding:"required"`
}

// Decorate renders one raw authored block into final markup.
func (h *DecorateHandler) Decorate(c *gin.Context) {
	var req decorateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	block, err := h.decorateService.Decorate(c.Request.Context(), req.Type, req.HTML)
	if err != nil {
		middleware.ObserveRender(req.Type, "error", time.Since(start))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	middleware.ObserveRender(req.Type, "ok", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"block": block})
}

// ListTypes reports the registered block types.
func (h *DecorateHandler) ListTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": h.decorateService.BlockTypes()})
}
