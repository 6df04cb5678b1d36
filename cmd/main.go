package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gutshub/guts-api/config"
	"github.com/gutshub/guts-api/database"
	_ "github.com/gutshub/guts-api/docs" // Swagger docs
	"github.com/gutshub/guts-api/internal/controller"
	"github.com/gutshub/guts-api/internal/logger"
	"github.com/gutshub/guts-api/internal/middleware"
	"github.com/gutshub/guts-api/internal/model"
	"github.com/gutshub/guts-api/internal/repository"
	"github.com/gutshub/guts-api/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Guts API
// @version 1.0
// @description Backend for submitting automated test-run results for programming exercises and projects, and for browsing per-user pass/fail history.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewCourseRepository,
			repository.NewPeriodRepository,
			repository.NewChapterRepository,
			repository.NewProjectRepository,
			repository.NewAssignmentRepository,
			repository.NewTestRepository,
			repository.NewTestRunRepository,
		),

		fx.Provide(
			service.NewCourseService,
			service.NewChapterService,
			service.NewProjectService,
			service.NewAssignmentService,
			service.NewTestRunConverterService,
			service.NewTestRunService,
		),

		fx.Provide(
			controller.NewTestRunController,
			controller.NewCourseController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	testRunCtrl *controller.TestRunController,
	courseCtrl *controller.CourseController,
) {
	api := router.Group("/api", middleware.RequireAuth(cfg.Auth.JwtSecret))
	{
		api.POST("/exercises/testruns", testRunCtrl.PostExerciseTestRun)
		api.POST("/projects/testruns", testRunCtrl.PostProjectTestRun)
		api.GET("/testruns/:id", testRunCtrl.GetTestRun)
		api.GET("/exercises/:id/testrun-info", testRunCtrl.GetTestRunInfo)
		api.GET("/exercises/:id/sourcecodes", testRunCtrl.GetSourceCodes)

		api.GET("/courses", courseCtrl.GetCourses)
		api.GET("/courses/:id", courseCtrl.GetCourseContents)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Guts API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Period{},
		&model.Course{},
		&model.Chapter{},
		&model.Project{},
		&model.Assignment{},
		&model.Test{},
		&model.TestRun{},
		&model.TestResult{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
