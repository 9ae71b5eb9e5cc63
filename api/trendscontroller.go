package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vanzic/Project-Rivo/trends"
)

// RegisterTrendRoutes registers trend ranking endpoints.
func RegisterTrendRoutes(r *gin.Engine, store trends.Store) {
	g := r.Group("/api/trends")
	g.GET("/top", handleTopTrends(store))
}

// handleTopTrends returns the highest scoring recent trends.
// Query params: limit (int, optional, default 5, max 50)
func handleTopTrends(store trends.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 5
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
				return
			}
			limit = n
		}
		if limit > 50 {
			limit = 50
		}

		top, err := store.TopTrends(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(top), "trends": top})
	}
}
