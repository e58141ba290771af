package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Bassir-Elhoussein/gymapp/internal/interfaces/http/handlers"
)

// AttendanceRouteConfig holds dependencies for attendance and access routes.
type AttendanceRouteConfig struct {
	AttendanceHandler *handlers.AttendanceHandler
}

// SetupAttendanceRoutes configures check-in, access evaluation, and
// attendance history routes.
func SetupAttendanceRoutes(api *gin.RouterGroup, cfg *AttendanceRouteConfig) {
	attendance := api.Group("/attendance")
	{
		attendance.POST("/check-in", cfg.AttendanceHandler.CheckIn)
		attendance.GET("", cfg.AttendanceHandler.ListAttendance)
		attendance.GET("/today", cfg.AttendanceHandler.TodaySummary)
	}

	api.GET("/access/:client_id", cfg.AttendanceHandler.EvaluateAccess)
}
