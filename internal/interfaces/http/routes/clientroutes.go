package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Bassir-Elhoussein/gymapp/internal/interfaces/http/handlers"
)

// ClientRouteConfig holds dependencies for client routes.
type ClientRouteConfig struct {
	ClientHandler *handlers.ClientHandler
}

// SetupClientRoutes configures client routes.
func SetupClientRoutes(api *gin.RouterGroup, cfg *ClientRouteConfig) {
	clients := api.Group("/clients")
	{
		clients.POST("", cfg.ClientHandler.RegisterClient)
		clients.GET("", cfg.ClientHandler.ListClients)
		clients.GET("/:id", cfg.ClientHandler.GetClient)
		clients.PUT("/:id", cfg.ClientHandler.UpdateClient)
	}
}
