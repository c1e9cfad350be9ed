package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"showcase-backend/internal/service"
)

// DatasetHandler serves the remote datasets the decorators consume, mostly
// for authoring previews and debugging. Responses always contain data; the
// services degrade to bundled defaults on any upstream failure.
type DatasetHandler struct {
	specService    *service.SpecService
	productService *service.ProductService
}

func NewDatasetHandler(specService *service.SpecService, productService *service.ProductService) *DatasetHandler {
	return &DatasetHandler{
		specService:    specService,
		productService: productService,
	}
}

func (h *DatasetHandler) GetSpecs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"specs": h.specService.Entries(c.Request.Context())})
}

func (h *DatasetHandler) GetProduct(c *gin.Context) {
	path := c.Param("path")
	if path == "" || path == "/" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product path is required"})
		return
	}

	product := h.productService.Product(c.Request.Context(), path)
	c.JSON(http.StatusOK, gin.H{"product": product})
}
