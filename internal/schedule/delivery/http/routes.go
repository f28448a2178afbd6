package http

import (
	"github.com/gin-gonic/gin"

	"weekly-agenda/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Everything is
// behind the loopback guard: this server only talks to the local UI shell.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sched := rg.Group("/schedule", mw.LocalOnly())
	{
		sched.POST("/parse", h.Parse)
		sched.GET("/presets", h.Presets)
		sched.GET("/week", h.Week)
		sched.POST("/events", h.Create)
		sched.PATCH("/events/:id/move", h.Move)
		sched.PATCH("/events/:id/resize", h.Resize)
		sched.DELETE("/events/:id", h.Delete)
	}
}
