package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Bassir-Elhoussein/gymapp/internal/interfaces/http/handlers"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	PaymentHandler      *handlers.PaymentHandler
}

// SetupSubscriptionRoutes configures subscription and payment routes.
func SetupSubscriptionRoutes(api *gin.RouterGroup, cfg *SubscriptionRouteConfig) {
	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("", cfg.SubscriptionHandler.CreateSubscription)
		subscriptions.GET("", cfg.SubscriptionHandler.ListSubscriptions)
		subscriptions.GET("/:id", cfg.SubscriptionHandler.GetSubscription)
		subscriptions.POST("/:id/status", cfg.SubscriptionHandler.UpdateSubscriptionStatus)
		subscriptions.POST("/:id/renew", cfg.SubscriptionHandler.RenewSubscription)

		subscriptions.POST("/:id/payments", cfg.PaymentHandler.RecordPayment)
		subscriptions.GET("/:id/payments", cfg.PaymentHandler.ListSubscriptionPayments)
	}
}
