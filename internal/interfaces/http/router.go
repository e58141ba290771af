// Package http wires HTTP handlers, routes, and middleware into a gin engine.
package http

import (
	"gorm.io/gorm"

	attendanceusecases "github.com/Bassir-Elhoussein/gymapp/internal/application/attendance/usecases"
	clientusecases "github.com/Bassir-Elhoussein/gymapp/internal/application/client/usecases"
	membershipusecases "github.com/Bassir-Elhoussein/gymapp/internal/application/membership/usecases"
	paymentusecases "github.com/Bassir-Elhoussein/gymapp/internal/application/payment/usecases"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/config"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/repository"
	"github.com/Bassir-Elhoussein/gymapp/internal/interfaces/http/handlers"
	"github.com/Bassir-Elhoussein/gymapp/internal/interfaces/http/middleware"
	"github.com/Bassir-Elhoussein/gymapp/internal/interfaces/http/routes"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/db"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"

	"github.com/gin-gonic/gin"
)

// Router holds the configured gin engine and the use cases shared with
// other entry points (the scheduler reuses the expiry sweep).
type Router struct {
	engine   *gin.Engine
	ExpireUC *membershipusecases.ExpireSubscriptionsUseCase
}

// NewRouter creates the HTTP router with all dependencies wired.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))

	// Repositories
	clientRepo := repository.NewClientRepository(database, log)
	planRepo := repository.NewPlanRepository(database, log)
	subscriptionRepo := repository.NewSubscriptionRepository(database, log)
	paymentRepo := repository.NewPaymentRepository(database, log)
	attendanceRepo := repository.NewAttendanceRepository(database, log)

	txManager := db.NewTransactionManager(database)

	// Use cases
	registerClientUC := clientusecases.NewRegisterClientUseCase(clientRepo, log)
	getClientUC := clientusecases.NewGetClientUseCase(clientRepo, log)
	updateClientUC := clientusecases.NewUpdateClientUseCase(clientRepo, log)
	listClientsUC := clientusecases.NewListClientsUseCase(clientRepo, log)

	createPlanUC := membershipusecases.NewCreatePlanUseCase(planRepo, log)
	updatePlanUC := membershipusecases.NewUpdatePlanUseCase(planRepo, log)
	getPlanUC := membershipusecases.NewGetPlanUseCase(planRepo, log)
	listPlansUC := membershipusecases.NewListPlansUseCase(planRepo, log)

	createSubscriptionUC := membershipusecases.NewCreateSubscriptionUseCase(subscriptionRepo, planRepo, clientRepo, log)
	getSubscriptionUC := membershipusecases.NewGetSubscriptionUseCase(subscriptionRepo, log)
	listSubscriptionsUC := membershipusecases.NewListSubscriptionsUseCase(subscriptionRepo, log)
	updateStatusUC := membershipusecases.NewUpdateSubscriptionStatusUseCase(subscriptionRepo, log)
	renewSubscriptionUC := membershipusecases.NewRenewSubscriptionUseCase(subscriptionRepo, planRepo, txManager, log)
	expireSubscriptionsUC := membershipusecases.NewExpireSubscriptionsUseCase(subscriptionRepo, log)

	recordPaymentUC := paymentusecases.NewRecordPaymentUseCase(paymentRepo, subscriptionRepo, txManager, log)
	listPaymentsUC := paymentusecases.NewListSubscriptionPaymentsUseCase(paymentRepo, subscriptionRepo, log)

	evaluateAccessUC := attendanceusecases.NewEvaluateAccessUseCase(clientRepo, subscriptionRepo, log)
	checkInUC := attendanceusecases.NewCheckInUseCase(attendanceRepo, evaluateAccessUC, log)
	listAttendanceUC := attendanceusecases.NewListAttendanceUseCase(attendanceRepo, log)
	todaySummaryUC := attendanceusecases.NewTodaySummaryUseCase(attendanceRepo, log)

	// Handlers
	clientHandler := handlers.NewClientHandler(registerClientUC, getClientUC, updateClientUC, listClientsUC, log)
	planHandler := handlers.NewPlanHandler(createPlanUC, updatePlanUC, getPlanUC, listPlansUC, log)
	subscriptionHandler := handlers.NewSubscriptionHandler(
		createSubscriptionUC, getSubscriptionUC, listSubscriptionsUC, updateStatusUC, renewSubscriptionUC, log)
	paymentHandler := handlers.NewPaymentHandler(recordPaymentUC, listPaymentsUC, log)
	attendanceHandler := handlers.NewAttendanceHandler(checkInUC, evaluateAccessUC, listAttendanceUC, todaySummaryUC, log)

	// Routes
	api := engine.Group("/api")
	routes.SetupClientRoutes(api, &routes.ClientRouteConfig{ClientHandler: clientHandler})
	routes.SetupPlanRoutes(api, &routes.PlanRouteConfig{PlanHandler: planHandler})
	routes.SetupSubscriptionRoutes(api, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: subscriptionHandler,
		PaymentHandler:      paymentHandler,
	})
	routes.SetupAttendanceRoutes(api, &routes.AttendanceRouteConfig{AttendanceHandler: attendanceHandler})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Router{
		engine:   engine,
		ExpireUC: expireSubscriptionsUC,
	}
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
