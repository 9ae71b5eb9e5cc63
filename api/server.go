// Package api exposes the trend engine over HTTP: rankings, article
// inspection, and on-demand renders.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/vanzic/Project-Rivo/factory"
	"github.com/vanzic/Project-Rivo/trends"
)

// Deps carries the services the controllers need.
type Deps struct {
	Store   trends.Store
	Factory *factory.Factory
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterHealthRoutes(r)
	RegisterTrendRoutes(r, deps.Store)
	RegisterArticleRoutes(r)
	RegisterRenderRoutes(r, deps.Factory)
	return r
}
