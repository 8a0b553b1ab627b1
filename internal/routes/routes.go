package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pause-manager/internal/audit"
	"github.com/BruksfildServices01/pause-manager/internal/config"
	"github.com/BruksfildServices01/pause-manager/internal/handlers"
	"github.com/BruksfildServices01/pause-manager/internal/idempotency"
	infraRepo "github.com/BruksfildServices01/pause-manager/internal/infra/repository"
	"github.com/BruksfildServices01/pause-manager/internal/middleware"
	"github.com/BruksfildServices01/pause-manager/internal/timezone"
	ucDashboard "github.com/BruksfildServices01/pause-manager/internal/usecase/dashboard"
	ucReservation "github.com/BruksfildServices01/pause-manager/internal/usecase/reservation"

	_ "github.com/BruksfildServices01/pause-manager/docs"
)

// Deps são os singletons criados em main e compartilhados pelas rotas.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Audit  *audit.Dispatcher

	// Idempotency é nil quando REDIS_ADDR não está configurado.
	Idempotency idempotency.Store
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clock := timezone.ClockIn(d.Config.Timezone)

	reservationRepo := infraRepo.NewReservationGormRepository(d.DB)
	dashboardRepo := infraRepo.NewDashboardGormRepository(d.DB)

	// ======================================================
	// 🧠 USE CASES: RESERVATIONS
	// ======================================================
	checkAvailabilityUC := ucReservation.NewCheckAvailability(reservationRepo)

	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		d.Audit,
	)

	updateReservationUC := ucReservation.NewUpdateReservation(
		reservationRepo,
		d.Audit,
	)

	deleteReservationUC := ucReservation.NewDeleteReservation(
		reservationRepo,
		d.Audit,
	)

	listReservationsUC := ucReservation.NewListReservations(reservationRepo)
	getReservationUC := ucReservation.NewGetReservation(reservationRepo)
	listUpcomingUC := ucReservation.NewListUpcoming(reservationRepo, clock)
	weeklyStatsUC := ucReservation.NewWeeklyStats(reservationRepo, clock)

	// ======================================================
	// 🧠 USE CASES: DASHBOARD
	// ======================================================
	dashboardStatsUC := ucDashboard.NewGetStats(dashboardRepo, clock)
	dashboardOverviewUC := ucDashboard.NewGetOverview(dashboardRepo, clock)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(d.DB, d.Audit)
	serviceHandler := handlers.NewServiceHandler(d.DB, d.Audit)
	eventHandler := handlers.NewEventHandler(d.DB, d.Audit, dashboardRepo, clock)

	reservationHandler := handlers.NewReservationHandler(
		checkAvailabilityUC,
		createReservationUC,
		updateReservationUC,
		deleteReservationUC,
		listReservationsUC,
		getReservationUC,
		listUpcomingUC,
		weeklyStatsUC,
		d.Idempotency,
	)

	dashboardHandler := handlers.NewDashboardHandler(
		dashboardStatsUC,
		dashboardOverviewUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// 🔎 OPERAÇÃO
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/api/health", handlers.Health)
	r.GET("/api/docs/*any", gin.WrapH(httpSwagger.WrapHandler))
	r.NoRoute(handlers.NotFound)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(d.Config))
	{
		// ------------------------------
		// CLIENTS
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.GET("/clients/stats", clientHandler.Stats)
		api.GET("/clients/search/:term", clientHandler.Search)
		api.GET("/clients/:id", clientHandler.Get)
		api.POST("/clients", clientHandler.Create)
		api.PUT("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/type/:type", serviceHandler.ByType)
		api.GET("/services/:id", serviceHandler.Get)
		api.POST("/services", serviceHandler.Create)
		api.PUT("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)

		// ------------------------------
		// EVENTS
		// ------------------------------
		api.GET("/events", eventHandler.List)
		api.GET("/events/upcoming", eventHandler.Upcoming)
		api.GET("/events/stats", eventHandler.Stats)
		api.GET("/events/:id", eventHandler.Get)
		api.POST("/events", eventHandler.Create)
		api.PUT("/events/:id", eventHandler.Update)
		api.DELETE("/events/:id", eventHandler.Delete)

		// ------------------------------
		// RESERVATIONS
		// ------------------------------
		api.GET("/reservations", reservationHandler.List)
		api.GET("/reservations/availability", reservationHandler.CheckAvailability)
		api.GET("/reservations/upcoming", reservationHandler.Upcoming)
		api.GET("/reservations/stats/weekly", reservationHandler.WeeklyStats)
		api.GET("/reservations/:id", reservationHandler.Get)
		api.POST("/reservations", reservationHandler.Create)
		api.PUT("/reservations/:id", reservationHandler.Update)
		api.DELETE("/reservations/:id", reservationHandler.Delete)

		// ------------------------------
		// DASHBOARD
		// ------------------------------
		api.GET("/dashboard/stats", dashboardHandler.Stats)
		api.GET("/dashboard/overview", dashboardHandler.Overview)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
