package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-api/internal/auth"
	"github.com/BruksfildServices01/appointment-api/internal/config"
	domain "github.com/BruksfildServices01/appointment-api/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-api/internal/domain/user"
	"github.com/BruksfildServices01/appointment-api/internal/handlers"
	"github.com/BruksfildServices01/appointment-api/internal/httperr"
	"github.com/BruksfildServices01/appointment-api/internal/metrics"
	"github.com/BruksfildServices01/appointment-api/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/appointment-api/internal/usecase/appointment"
	"github.com/BruksfildServices01/appointment-api/internal/validators"
)

// Deps are the process-wide singletons the routes are built from.
type Deps struct {
	Config       *config.Config
	Logger       *zap.Logger
	Metrics      *metrics.Collector
	Appointments domain.Repository
	Users        user.Repository
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config
	log := deps.Logger

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestLogger(log),
		middleware.Metrics(deps.Metrics),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	listAppointmentsUC := ucAppointment.NewListAppointments(deps.Appointments, log)
	createAppointmentUC := ucAppointment.NewCreateAppointment(deps.Appointments, log)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(deps.Appointments, log)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(deps.Appointments, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)

	var domainCheck func(string) bool
	if cfg.EmailDomainCheck {
		domainCheck = validators.IsEmailDomainValid
	}

	authHandler := handlers.NewAuthHandler(deps.Users, tokens, log, domainCheck)
	meHandler := handlers.NewMeHandler(deps.Users, log)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		httperr.Policy{AuthorizationStatus: cfg.OwnershipMismatchStatus},
		deps.Metrics,
	)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/users", authHandler.Register)
		api.POST("/users/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/users/me", meHandler.GetMe)

			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
		}
	}
}
