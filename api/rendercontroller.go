package api

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vanzic/Project-Rivo/factory"
	"github.com/vanzic/Project-Rivo/types"
)

// RegisterRenderRoutes registers render pipeline endpoints.
func RegisterRenderRoutes(r *gin.Engine, f *factory.Factory) {
	g := r.Group("/api/render")
	g.POST("", handleRenderTrend(f))
	g.POST("/batch", handleRenderBatch(f))
}

// handleRenderTrend renders a video for a single trend supplied in the
// request body. Runs asynchronously and returns 202 Accepted immediately.
func handleRenderTrend(f *factory.Factory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var trend types.TrendOutput
		if err := c.ShouldBindJSON(&trend); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if trend.TrendKey == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "trend_key is required"})
			return
		}

		go func() {
			if err := f.ProcessTrend(context.Background(), &trend); err != nil {
				log.Printf("Render failed for %q: %v", trend.TrendKey, err)
			}
		}()
		c.JSON(http.StatusAccepted, gin.H{"status": "render started", "trend_key": trend.TrendKey})
	}
}

// handleRenderBatch runs the factory over the current top trends.
// Query params: limit (int, optional, default 3)
func handleRenderBatch(f *factory.Factory) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 3
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
				return
			}
			limit = n
		}

		go func() {
			if _, err := f.Run(context.Background(), limit); err != nil {
				log.Printf("Batch render failed: %v", err)
			}
		}()
		c.JSON(http.StatusAccepted, gin.H{"status": "batch started", "limit": limit})
	}
}
