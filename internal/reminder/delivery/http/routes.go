package http

import (
	"github.com/gin-gonic/gin"

	"viegrand-care/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	reminders := rg.Group("/reminders", mw.Scope())
	{
		reminders.POST("/preview", h.Preview)
		reminders.POST("", h.Create)
		reminders.GET("", h.List)
		reminders.DELETE("/:id", h.Delete)
	}
}
