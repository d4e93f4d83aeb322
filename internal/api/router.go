// Package api assembles the Echo application: middleware, dependency
// wiring, and the route table.
package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/digitechhealth/clinic-api/docs"
	"github.com/digitechhealth/clinic-api/internal/api/handler"
	"github.com/digitechhealth/clinic-api/internal/api/middleware"
	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
	"github.com/digitechhealth/clinic-api/internal/core/service"
	mongodb "github.com/digitechhealth/clinic-api/internal/infrastructure/db/mongo"
	redisdb "github.com/digitechhealth/clinic-api/internal/infrastructure/db/redis"
	"github.com/digitechhealth/clinic-api/internal/infrastructure/spreadsheet"
	"github.com/digitechhealth/clinic-api/internal/pkg/config"
)

// tokenStore is the revoked-token store as both sides see it: logout
// writes through it, the auth middleware reads through it.
type tokenStore interface {
	service.TokenStore
	middleware.RevocationChecker
}

// dependencies carries everything the route table needs that touches
// infrastructure, so assembly can run against in-memory doubles.
type dependencies struct {
	users        ports.UserRepository
	patients     ports.PatientRepository
	doctors      ports.DoctorRepository
	appointments ports.AppointmentRepository
	invoices     ports.InvoiceRepository
	tokens       tokenStore
	health       *handler.HealthHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	return newRouter(dependencies{
		users:        mongodb.NewUserRepository(db),
		patients:     mongodb.NewPatientRepository(db),
		doctors:      mongodb.NewDoctorRepository(db),
		appointments: mongodb.NewAppointmentRepository(db),
		invoices:     mongodb.NewInvoiceRepository(db),
		tokens:       redisdb.NewRevokedTokenStore(rdb),
		health:       handler.NewHealthHandler(db, rdb),
	}, cfg, log)
}

func newRouter(deps dependencies, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	// --- Services ---
	authService := service.NewAuthService(deps.users, deps.patients, deps.doctors, deps.tokens, cfg.JWTSecret, cfg.TokenTTL, log)
	patientService := service.NewPatientService(deps.patients, deps.appointments, deps.invoices, log)
	doctorService := service.NewDoctorService(deps.doctors, deps.users, log)
	appointmentService := service.NewAppointmentService(deps.appointments, deps.doctors, deps.patients, log)
	billingService := service.NewBillingService(deps.invoices, deps.patients, log)
	rosterService := service.NewRosterService(deps.patients, deps.doctors, deps.users, spreadsheet.NewCodec(), log)
	reportService := service.NewReportService(deps.patients, deps.doctors, deps.appointments, deps.invoices, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	patientHandler := handler.NewPatientHandler(patientService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	billingHandler := handler.NewBillingHandler(billingService)
	rosterHandler := handler.NewRosterHandler(rosterService)
	dashboardHandler := handler.NewDashboardHandler(reportService)
	healthHandler := deps.health

	authRequired := middleware.Auth(cfg.JWTSecret, deps.tokens)
	clinicalOnly := middleware.RequireRoles(domain.RoleAdmin, domain.RoleDoctor, domain.RoleReceptionist)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	doctorOnly := middleware.RequireRoles(domain.RoleDoctor)

	// --- Public ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "clinic-api",
			"status":  "ok",
		})
	})
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Session / account ---
	e.GET("/logout", authHandler.Logout, authRequired)
	e.GET("/account", authHandler.Account, authRequired)
	e.POST("/account", authHandler.UpdateAccount, authRequired)

	// --- Patients ---
	e.GET("/patients", patientHandler.List, authRequired)
	e.GET("/patient/:id", patientHandler.Get, authRequired)
	e.POST("/patient/new", patientHandler.Create, authRequired, clinicalOnly)
	e.POST("/patient/:id/update", patientHandler.Update, authRequired, clinicalOnly)
	e.POST("/patient/:id/delete", patientHandler.Delete, authRequired, clinicalOnly)
	e.GET("/patient/template", rosterHandler.PatientTemplate, authRequired, clinicalOnly)
	e.POST("/patient/import", rosterHandler.ImportPatients, authRequired, clinicalOnly)
	e.GET("/patient/export", rosterHandler.ExportPatients, authRequired, clinicalOnly)

	// --- Doctors ---
	e.GET("/doctors", doctorHandler.List, authRequired)
	e.GET("/doctor/profile", doctorHandler.Profile, authRequired, doctorOnly)
	e.POST("/doctor/profile", doctorHandler.UpdateProfile, authRequired, doctorOnly)
	e.POST("/doctor/add", doctorHandler.Add, authRequired, adminOnly)
	e.POST("/doctor/:id/update", doctorHandler.Update, authRequired, adminOnly)
	e.POST("/doctor/:id/delete", doctorHandler.Delete, authRequired, adminOnly)
	e.GET("/doctor/template", rosterHandler.DoctorTemplate, authRequired, adminOnly)
	e.POST("/doctor/import", rosterHandler.ImportDoctors, authRequired, adminOnly)
	e.GET("/doctor/export", rosterHandler.ExportDoctors, authRequired, adminOnly)

	// --- Appointments ---
	e.GET("/appointments", appointmentHandler.List, authRequired)
	e.POST("/appointment/book", appointmentHandler.Book, authRequired)
	e.POST("/appointment/:id/update", appointmentHandler.Update, authRequired)
	e.POST("/appointment/:id/delete", appointmentHandler.Delete, authRequired)

	// --- Billing ---
	e.GET("/invoices", billingHandler.List, authRequired)
	e.POST("/invoice/new", billingHandler.Create, authRequired, clinicalOnly)
	e.GET("/invoice/:id", billingHandler.Get, authRequired)

	// --- Reporting ---
	e.GET("/home", dashboardHandler.Home, authRequired)
	e.GET("/dashboard", dashboardHandler.Dashboard, authRequired, clinicalOnly)
	e.GET("/api/dashboard/stats", dashboardHandler.Stats, authRequired)

	return e
}
