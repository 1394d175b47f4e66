// Package httpapi exposes the escape engine over HTTP for visual
// front-ends: solve a maze, or generate a random one. It is a harness
// collaborator; all algorithmic content lives in the core packages.
package httpapi

import "github.com/gin-gonic/gin"

// Controller registers a group of related routes on the router.
type Controller interface {
	Register(route *gin.RouterGroup)
}

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	controllers []Controller
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	Controllers []Controller
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		controllers: config.Controllers,
	}
}

// Run starts the HTTP server. All routes are grouped under /v1.
func (r *Router) Run() error {
	router := gin.Default()

	api := router.Group("/v1")
	for _, c := range r.controllers {
		c.Register(api)
	}

	return router.Run(r.addr)
}
