package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/skapefps/unimap-api/api/swagger"
	"github.com/skapefps/unimap-api/internal/handler"
	"github.com/skapefps/unimap-api/internal/middleware"
	"github.com/skapefps/unimap-api/internal/models"
	"github.com/skapefps/unimap-api/internal/repository"
	"github.com/skapefps/unimap-api/internal/service"
	"github.com/skapefps/unimap-api/pkg/cache"
	"github.com/skapefps/unimap-api/pkg/config"
	"github.com/skapefps/unimap-api/pkg/database"
	"github.com/skapefps/unimap-api/pkg/jobs"
	"github.com/skapefps/unimap-api/pkg/logger"
	corsmiddleware "github.com/skapefps/unimap-api/pkg/middleware/cors"
	reqidmiddleware "github.com/skapefps/unimap-api/pkg/middleware/requestid"
)

// @title Unimap API
// @version 1.0.0
// @description Backend administrativo de horários acadêmicos
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Dashboard.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, true)
			defer cacheRepo.Close()
		}
	}

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	turmaRepo := repository.NewTurmaRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	aulaRepo := repository.NewAulaRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	authSvc := service.NewAuthService(userRepo, nil, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "unimap-api",
	})
	courseSvc := service.NewCourseService(courseRepo, nil, logr)
	roomSvc := service.NewRoomService(roomRepo, nil, logr)
	turmaSvc := service.NewTurmaService(turmaRepo, courseRepo, nil, logr)
	studentSvc := service.NewStudentService(studentRepo, nil, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, studentRepo, turmaRepo, nil, logr)
	aulaSvc := service.NewAulaService(aulaRepo, nil, logr)

	importGate := jobs.NewGate("import", logr)
	importSvc := service.NewImportService(aulaRepo, importGate, cfg.Import, metricsSvc, logr)

	var dashboardSvc *service.DashboardService
	if cfg.Dashboard.Enabled {
		dashboardSvc = service.NewDashboardService(dashboardRepo, cacheSvc, cfg.Dashboard.CacheTTL, logr)
	}
	var exportSvc *service.ExportService
	if cfg.Export.Enabled {
		exportSvc = service.NewExportService(turmaRepo, aulaRepo, nil, nil, logr)
	}

	authHandler := handler.NewAuthHandler(authSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	roomHandler := handler.NewRoomHandler(roomSvc)
	turmaHandler := handler.NewTurmaHandler(turmaSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc)
	aulaHandler := handler.NewAulaHandler(aulaSvc)
	importHandler := handler.NewImportHandler(importSvc, nil)
	if dashboardSvc != nil {
		importHandler = handler.NewImportHandler(importSvc, dashboardSvc)
	}
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", middleware.JWT(authSvc), authHandler.Logout)
	auth.GET("/me", middleware.JWT(authSvc), authHandler.Me)

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))
	admin := authed.Group("")
	admin.Use(middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin))

	authed.GET("/cursos", courseHandler.List)
	authed.GET("/cursos/:id", courseHandler.Get)
	admin.POST("/cursos", courseHandler.Create)
	admin.PUT("/cursos/:id", courseHandler.Update)
	admin.DELETE("/cursos/:id", courseHandler.Delete)

	authed.GET("/salas", roomHandler.List)
	authed.GET("/salas/:id", roomHandler.Get)
	admin.POST("/salas", roomHandler.Create)
	admin.PUT("/salas/:id", roomHandler.Update)
	admin.DELETE("/salas/:id", roomHandler.Delete)

	authed.GET("/turmas", turmaHandler.List)
	authed.GET("/turmas/:id", turmaHandler.Get)
	admin.POST("/turmas", turmaHandler.Create)
	admin.PUT("/turmas/:id", turmaHandler.Update)
	admin.DELETE("/turmas/:id", turmaHandler.Delete)

	authed.GET("/alunos", studentHandler.List)
	authed.GET("/alunos/:id", studentHandler.Get)
	admin.POST("/alunos", studentHandler.Create)
	admin.PUT("/alunos/:id", studentHandler.Update)
	admin.DELETE("/alunos/:id", studentHandler.Deactivate)

	authed.GET("/matriculas", enrollmentHandler.List)
	authed.GET("/turmas/:id/matriculas/count", enrollmentHandler.CountActive)
	admin.POST("/matriculas", enrollmentHandler.Matricular)
	admin.DELETE("/matriculas", enrollmentHandler.Desmatricular)

	authed.GET("/aulas", aulaHandler.List)
	authed.GET("/aulas/:id", aulaHandler.Get)
	admin.POST("/aulas", aulaHandler.Create)
	admin.PUT("/aulas/:id", aulaHandler.Update)
	admin.DELETE("/aulas/:id", aulaHandler.Delete)

	admin.POST("/import/aulas/validar", importHandler.Validate)
	admin.POST("/import/aulas", importHandler.Import)

	if dashboardSvc != nil {
		dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
		authed.GET("/dashboard/stats", dashboardHandler.Stats)
	}
	if exportSvc != nil {
		exportHandler := handler.NewExportHandler(exportSvc)
		authed.GET("/turmas/:id/export", exportHandler.TurmaSchedule)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
