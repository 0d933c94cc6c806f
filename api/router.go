// Package api wires the HTTP surface of the local maze arena.
package api

import (
	"github.com/beka-birhanu/pony-rescuer/api/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
	}
}

// Handler builds the gin engine with every controller's routes registered
// under the base URL.
func (r *Router) Handler() *gin.Engine {
	gin.ForceConsoleColor()
	router := gin.Default()

	routes := router.Group(r.baseURL)
	{
		for _, c := range r.controllers {
			c.Register(routes)
		}
	}

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	return r.Handler().Run(r.addr)
}
