package routes

import (
	"log"

	"classroom-backend/internal/api/handlers"
	"classroom-backend/internal/api/middleware"
	"classroom-backend/internal/auth"
	"classroom-backend/internal/config"
	"classroom-backend/internal/repository"
	"classroom-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Rate limit policy; disabled under test so suites are not throttled
	rateLimitPolicy, err := middleware.LoadRateLimitPolicy(cfg.SecurityConfigPath)
	if err != nil {
		log.Printf("Warning: failed to load security config: %v", err)
		rateLimitPolicy = middleware.DefaultRateLimitPolicy()
	}
	if cfg.IsTest() {
		rateLimitPolicy.Enabled = false
	}

	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	classRepo := repository.NewClassRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Initialize services
	authService := auth.NewAuthService(organizationRepo, userRepo, sessionRepo, accountRepo, validator, cfg)
	organizationService := service.NewOrganizationService(organizationRepo)
	userService := service.NewUserService(userRepo, validator)
	departmentService := service.NewDepartmentService(departmentRepo, validator)
	subjectService := service.NewSubjectService(subjectRepo, departmentRepo, validator)
	classService := service.NewClassService(classRepo, subjectRepo, userRepo, enrollmentRepo, validator)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, classRepo, userRepo, validator)
	dashboardService := service.NewDashboardService(dashboardRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	userHandler := handlers.NewUserHandler(userService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	subjectHandler := handlers.NewSubjectHandler(subjectService)
	classHandler := handlers.NewClassHandler(classService)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes run before session resolution; guests hit the lowest tier
	authRoutes := router.Group("/api/auth")
	authRoutes.Use(middleware.RateLimit(rateLimitPolicy))
	{
		authRoutes.POST("/sign-up/email", authHandler.SignUp)
		authRoutes.POST("/sign-in/email", authHandler.SignIn)
		authRoutes.POST("/sign-out", authHandler.SignOut)
		authRoutes.GET("/get-session", authHandler.GetSession)
	}

	// Protected API routes; rate limits follow the caller's role
	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth())
	api.Use(middleware.RateLimit(rateLimitPolicy))
	{
		api.GET("/organization/:id", organizationHandler.GetOrganization)

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		departments := api.Group("/departments")
		{
			departments.GET("", departmentHandler.ListDepartments)
			departments.POST("", departmentHandler.CreateDepartment)
			departments.GET("/:id", departmentHandler.GetDepartment)
			departments.PUT("/:id", departmentHandler.UpdateDepartment)
			departments.DELETE("/:id", departmentHandler.DeleteDepartment)
		}

		subjects := api.Group("/subjects")
		{
			subjects.GET("", subjectHandler.ListSubjects)
			subjects.POST("", subjectHandler.CreateSubject)
			subjects.GET("/:id", subjectHandler.GetSubject)
			subjects.PUT("/:id", subjectHandler.UpdateSubject)
			subjects.DELETE("/:id", subjectHandler.DeleteSubject)
		}

		classes := api.Group("/classes")
		{
			classes.GET("", classHandler.ListClasses)
			classes.POST("", classHandler.CreateClass)
			classes.GET("/:id", classHandler.GetClass)
			classes.PUT("/:id", classHandler.UpdateClass)
			classes.DELETE("/:id", classHandler.DeleteClass)
		}

		enrollments := api.Group("/enrollments")
		{
			enrollments.POST("", enrollmentHandler.Enroll)
			enrollments.DELETE("", enrollmentHandler.Unenroll)
			enrollments.GET("/class/:classId", enrollmentHandler.GetRoster)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
			dashboard.GET("/charts/enrollment-trends", dashboardHandler.GetEnrollmentTrends)
			dashboard.GET("/charts/classes-by-dept", dashboardHandler.GetClassesByDepartment)
			dashboard.GET("/charts/user-distribution", dashboardHandler.GetUserDistribution)
			dashboard.GET("/charts/capacity-status", dashboardHandler.GetCapacityStatus)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
