package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"showcase-backend/pkg/cache"
	"showcase-backend/pkg/logger"
)

type CacheHandler struct {
	cache *cache.Cache
}

func NewCacheHandler(c *cache.Cache) *CacheHandler {
	return &CacheHandler{cache: c}
}

// PurgeRenders drops cached markup, optionally for one block type only.
func (h *CacheHandler) PurgeRenders(c *gin.Context) {
	blockType := c.Query("type")

	var err error
	if blockType == "" {
		err = h.cache.InvalidateAllRenders()
	} else {
		err = h.cache.InvalidateRenders(blockType)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Render cache purged", map[string]interface{}{"type": blockType})
	c.JSON(http.StatusOK, gin.H{"message": "render cache purged"})
}

// PurgeDatasets drops cached remote datasets so the next render refetches.
func (h *CacheHandler) PurgeDatasets(c *gin.Context) {
	if err := h.cache.InvalidateDatasets(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "dataset cache purged"})
}
