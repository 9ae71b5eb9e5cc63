package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vanzic/Project-Rivo/trends"
)

// RegisterArticleRoutes registers article inspection endpoints.
func RegisterArticleRoutes(r *gin.Engine) {
	g := r.Group("/api/articles")
	g.GET("", handleFetchArticles)
}

// handleFetchArticles fetches a feed and extracts full article content.
// Query params: feed (preset name or URL, optional), count (int, optional)
func handleFetchArticles(c *gin.Context) {
	feed := c.DefaultQuery("feed", trends.DefaultFeedPreset)
	count := trends.DefaultCount
	if v := c.Query("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a positive integer"})
			return
		}
		count = n
	}

	feedURL := trends.ResolveFeedURL(feed)
	articles, err := trends.FetchArticles(feedURL, count)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	trends.ExtractAllContent(articles)

	c.JSON(http.StatusOK, gin.H{
		"feed_url": feedURL,
		"count":    len(articles),
		"articles": articles,
	})
}
