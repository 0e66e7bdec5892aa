// Package router assembles the gin engine.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	healthhandler "github.com/andresavalerio/software-engineering-backend/internal/platform/http/handler"
	"github.com/andresavalerio/software-engineering-backend/internal/platform/logger"
)

// Registrar mounts a feature's routes on its group.
type Registrar interface {
	Register(rg *gin.RouterGroup)
}

// NewRouter builds the engine with logging, recovery and CORS middleware.
// An empty origins list allows any origin.
func NewRouter(l zerolog.Logger, origins []string, users, notebooks Registrar) *gin.Engine {
	r := gin.New()
	r.Use(logger.Middleware(l), gin.Recovery(), cors.New(corsConfig(origins)))

	// no auth
	healthhandler.RegisterHealth(r)

	users.Register(r.Group("/users"))
	notebooks.Register(r.Group("/notebooks"))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions, http.MethodHead},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
