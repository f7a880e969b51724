package main

import (
	"fmt"
	"log"
	"os"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxUploadBytes caps routine image uploads.
const maxUploadBytes = 5 << 20

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGODB_URI",
		"MONGODB_DB_NAME",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	// Initialize JWT
	utils.InitJWT()

	// Initialize MongoDB connection
	client, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	utils.MongoClient = client
}

func setupRouter(cache *services.ReadModelCache) *gin.Engine {
	// Create default gin router
	router := gin.Default()

	// Initialize repositories
	habitsRepo := repository.GetHabitsRepo(utils.MongoClient)
	entriesRepo := repository.GetEntriesRepo(utils.MongoClient)
	categoriesRepo := repository.GetCategoriesRepo(utils.MongoClient)
	goalsRepo := repository.GetGoalsRepo(utils.MongoClient)
	goalLogsRepo := repository.GetGoalLogsRepo(utils.MongoClient)
	routinesRepo := repository.GetRoutinesRepo(utils.MongoClient)
	journalRepo := repository.GetJournalRepo(utils.MongoClient)
	wellbeingRepo := repository.GetWellbeingRepo(utils.MongoClient)
	imagesRepo := repository.GetImagesRepo(utils.MongoClient)

	// Initialize services
	habitsService := usecase.NewHabitsService(habitsRepo, entriesRepo)
	entriesService := usecase.NewEntriesService(entriesRepo, habitsRepo)
	categoriesService := usecase.NewCategoriesService(categoriesRepo)
	goalsService := usecase.NewGoalsService(goalsRepo, goalLogsRepo, habitsRepo)
	progressService := usecase.NewGoalProgressService(goalsRepo, goalLogsRepo, habitsRepo, entriesRepo)
	dayViewService := usecase.NewDayViewService(habitsRepo, entriesRepo)
	dashboardService := usecase.NewDashboardService(habitsRepo, categoriesRepo, entriesRepo)
	skillTreeService := usecase.NewSkillTreeService(categoriesRepo, goalsRepo, goalLogsRepo, habitsRepo, entriesRepo)
	routinesService := usecase.NewRoutinesService(routinesRepo, habitsRepo, entriesRepo)
	journalService := usecase.NewJournalService(journalRepo)
	wellbeingService := usecase.NewWellbeingService(wellbeingRepo)
	imagesService := usecase.NewImagesService(imagesRepo)
	freezeService := usecase.NewFreezeService(habitsRepo, entriesRepo)

	// Initialize handlers
	habitsHandler := handler.NewHabitsHandler(habitsService, cache)
	entriesHandler := handler.NewEntriesHandler(entriesService, dayViewService, cache)
	categoriesHandler := handler.NewCategoriesHandler(categoriesService)
	goalsHandler := handler.NewGoalsHandler(goalsService, progressService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, skillTreeService, cache)
	routinesHandler := handler.NewRoutinesHandler(routinesService, cache)
	journalHandler := handler.NewJournalHandler(journalService)
	wellbeingHandler := handler.NewWellbeingHandler(wellbeingService)
	imagesHandler := handler.NewImagesHandler(imagesService)
	freezeHandler := handler.NewFreezeHandler(freezeService, cache)
	statsHandler := handler.NewStatsHandler(habitsRepo, entriesRepo, goalsRepo, routinesRepo)

	// Global middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Operational endpoints, unauthenticated
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes (authentication or demo mode required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		habits := protected.Group("/habits")
		{
			habits.GET("", habitsHandler.GetUserHabits)
			habits.POST("", habitsHandler.CreateHabit)
			habits.GET("/:id", habitsHandler.GetHabit)
			habits.PATCH("/:id", habitsHandler.UpdateHabit)
			habits.DELETE("/:id", habitsHandler.DeleteHabit)
			habits.POST("/:id/archive", habitsHandler.ArchiveHabit)
		}

		entries := protected.Group("/entries")
		{
			entries.GET("", entriesHandler.GetEntries)
			entries.POST("", entriesHandler.CreateEntry)
			entries.DELETE("/:id", entriesHandler.DeleteEntry)
		}
		protected.GET("/day-view", entriesHandler.GetDayView)

		categories := protected.Group("/categories")
		{
			categories.GET("", categoriesHandler.GetUserCategories)
			categories.POST("", categoriesHandler.CreateCategory)
			categories.PATCH("/:id", categoriesHandler.UpdateCategory)
			categories.DELETE("/:id", categoriesHandler.DeleteCategory)
		}

		goals := protected.Group("/goals")
		{
			goals.GET("", goalsHandler.GetUserGoals)
			goals.POST("", goalsHandler.CreateGoal)
			goals.PATCH("/:id", goalsHandler.UpdateGoal)
			goals.DELETE("/:id", goalsHandler.DeleteGoal)
			goals.GET("/:id/progress", goalsHandler.GetGoalProgress)
			goals.POST("/:id/manual-logs", goalsHandler.AddManualLog)
			goals.POST("/:id/complete", goalsHandler.CompleteGoal)
		}
		protected.GET("/goals-with-progress", goalsHandler.GetGoalsWithProgress)

		protected.GET("/skill-tree", dashboardHandler.GetSkillTree)
		protected.GET("/dashboard", dashboardHandler.GetMainDashboard)

		routines := protected.Group("/routines")
		{
			routines.GET("", routinesHandler.GetUserRoutines)
			routines.POST("", routinesHandler.CreateRoutine)
			routines.GET("/ordered", routinesHandler.GetOrderedRoutines)
			routines.PATCH("/:id", routinesHandler.UpdateRoutine)
			routines.DELETE("/:id", routinesHandler.DeleteRoutine)
			routines.POST("/:id/complete", routinesHandler.CompleteRoutine)
		}

		journal := protected.Group("/journal")
		{
			journal.GET("", journalHandler.GetUserEntries)
			journal.POST("", journalHandler.CreateEntry)
			journal.PATCH("/:id", journalHandler.UpdateEntry)
			journal.DELETE("/:id", journalHandler.DeleteEntry)
		}

		wellbeing := protected.Group("/wellbeing")
		{
			wellbeing.GET("", wellbeingHandler.GetCheckins)
			wellbeing.POST("", wellbeingHandler.RecordCheckin)
			wellbeing.GET("/summary", wellbeingHandler.GetSummary)
		}

		upload := protected.Group("/upload")
		upload.Use(middleware.RequestSizeLimiter(maxUploadBytes))
		{
			upload.POST("/routine-image", imagesHandler.UploadRoutineImage)
		}
		images := protected.Group("/routine-images")
		images.Use(middleware.CacheControlMiddleware("public, max-age=86400"))
		{
			images.GET("/:id", imagesHandler.GetImage)
			images.GET("/:id/thumbnail", imagesHandler.GetThumbnail)
			images.DELETE("/:id", imagesHandler.DeleteImage)
		}

		protected.POST("/freezes/run", freezeHandler.RunFreezes)
		protected.GET("/stats", statsHandler.GetUserStats)
	}

	return router
}

func main() {
	// Ensure query-critical indexes exist before serving
	if err := repository.SetupIndexes(utils.MongoDatabase()); err != nil {
		log.Printf("Index setup failed: %v", err)
	}

	// Redis-backed dashboard cache is optional; without REDIS_URL every
	// dashboard request recomputes.
	var cache *services.ReadModelCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		var err error
		cache, err = services.NewReadModelCache(redisURL)
		if err != nil {
			log.Printf("Read model cache disabled: %v", err)
			cache = nil
		}
	}

	// Set up router
	router := setupRouter(cache)

	// Nightly auto-freeze sweep
	habitsRepo := repository.GetHabitsRepo(utils.MongoClient)
	entriesRepo := repository.GetEntriesRepo(utils.MongoClient)
	freezeService := usecase.NewFreezeService(habitsRepo, entriesRepo)
	scheduler := services.NewFreezeScheduler(freezeService, habitsRepo)
	if err := scheduler.Start(os.Getenv("FREEZE_CRON_SPEC")); err != nil {
		log.Fatalf("Failed to start freeze scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
