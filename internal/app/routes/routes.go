package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/santamartha/hrportal/internal/app/controllers"
	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/middleware"
	"github.com/santamartha/hrportal/internal/pkg/logger"
)

// Controllers groups the HTTP handlers mounted by SetupRouter
type Controllers struct {
	Auth         *controllers.AuthController
	Users        *controllers.UserController
	Courses      *controllers.CourseController
	JobOffers    *controllers.JobOfferController
	Enrollments  *controllers.EnrollmentController
	Applications *controllers.ApplicationController
	Reports      *controllers.ReportController
	Health       *controllers.HealthController
}

// Options tunes route protection
type Options struct {
	// PublicAdminRoutes drops the auth guard from admin endpoints
	PublicAdminRoutes bool
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware, opts Options) {
	// Probes and metrics
	router.GET("/", ctrl.Health.Root)
	router.GET("/ping", ctrl.Health.Ping)
	router.GET("/health", ctrl.Health.Health)
	router.GET("/health/ready", ctrl.Health.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authMiddleware.OptionalAuth(), ctrl.Auth.Signup)
		auth.POST("/login", ctrl.Auth.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// --- Admin Routes Group ---
	var admin *gin.RouterGroup
	if opts.PublicAdminRoutes {
		logger.Warn().Msg("Admin routes are served without authentication (security.public_admin_routes=true)")
		admin = api.Group("")
	} else {
		admin = authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	}

	// User routes
	authenticated.GET("/usuarios/me", ctrl.Users.Me)
	admin.DELETE("/usuarios/:id", ctrl.Users.Delete)

	// Course catalog: reads are public, writes need admin
	cursos := api.Group("/cursos")
	{
		cursos.GET("", ctrl.Courses.GetAllCourses)
		cursos.GET("/:id", ctrl.Courses.GetCourseByID)
	}
	cursosAdmin := admin.Group("/cursos")
	{
		cursosAdmin.POST("", ctrl.Courses.CreateCourse)
		cursosAdmin.PUT("/:id", ctrl.Courses.UpdateCourse)
		cursosAdmin.DELETE("/:id", ctrl.Courses.DeleteCourse)
	}

	// Job offers and applications. Static segments sit next to /:id.
	ofertas := api.Group("/ofertas")
	{
		ofertas.GET("", ctrl.JobOffers.GetAllOffers)
		ofertas.GET("/:id", ctrl.JobOffers.GetOfferByID)
	}
	ofertasUser := authenticated.Group("/ofertas")
	{
		ofertasUser.POST("/postular", ctrl.Applications.Apply)
		ofertasUser.GET("/mis-postulaciones", ctrl.Applications.ListMine)
		ofertasUser.DELETE("/postulaciones/:id", ctrl.Applications.Cancel)
	}
	ofertasAdmin := admin.Group("/ofertas")
	{
		ofertasAdmin.GET("/postulantes", ctrl.Applications.ListApplicants)
		ofertasAdmin.POST("", ctrl.JobOffers.CreateOffer)
		ofertasAdmin.PUT("/:id", ctrl.JobOffers.UpdateOffer)
		ofertasAdmin.DELETE("/:id", ctrl.JobOffers.DeleteOffer)
	}

	// Enrollments, also reachable under the English alias
	for _, prefix := range []string{"/inscripciones", "/enrollments"} {
		user := authenticated.Group(prefix)
		{
			user.POST("", ctrl.Enrollments.Enroll)
			user.GET("/usuario", ctrl.Enrollments.ListMine)
			user.DELETE("/:id", ctrl.Enrollments.Cancel)
		}
		admin.GET(prefix, ctrl.Enrollments.ListAll)
	}

	// CSV reports
	reportes := admin.Group("/reportes")
	{
		reportes.GET("/inscripciones", ctrl.Reports.Enrollments)
		reportes.GET("/postulaciones", ctrl.Reports.Applications)
	}
}
