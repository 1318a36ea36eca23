package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadsync/faculty-portal-api/internal/middleware"
	"github.com/acadsync/faculty-portal-api/internal/models"
	"github.com/acadsync/faculty-portal-api/internal/service"
)

// Handlers bundles the portal's HTTP handlers for route registration.
type Handlers struct {
	Auth      *AuthHandler
	Timetable *TimetableHandler
	Faculty   *FacultyHandler
	Swap      *SwapHandler
	Metrics   *service.MetricsService
	AuthSvc   *service.AuthService
}

// RegisterRoutes wires every endpoint under the API prefix.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}

	api := r.Group(prefix)

	api.POST("/auth/login", h.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.JWT(h.AuthSvc))

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.POST("/timetable/upload", h.Timetable.Upload)
	admin.GET("/audit/ingestions", h.Timetable.IngestionHistory)

	authed.GET("/timetable/status", h.Timetable.Status)
	authed.GET("/classes", h.Timetable.ListClasses)

	authed.GET("/faculties", h.Faculty.List)
	authed.GET("/faculties/:id", h.Faculty.Get)
	authed.GET("/faculties/:id/timetable", h.Faculty.Timetable)
	authed.GET("/faculties/:id/timetable/search", h.Faculty.SearchTimetable)
	authed.GET("/faculties/:id/timetable/export", h.Faculty.ExportTimetable)

	authed.POST("/swaps", h.Swap.Create)
	authed.GET("/swaps", h.Swap.List)
	authed.PATCH("/swaps/:id/status", h.Swap.UpdateStatus)
}
