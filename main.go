package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cropwatch/config"
	"cropwatch/cropdata"
	"cropwatch/database"
	"cropwatch/gemini"
	"cropwatch/handlers"
	"cropwatch/metrics"
	"cropwatch/rabbitmq"
	"cropwatch/service"
	"cropwatch/weather"
	ws "cropwatch/websocket"
)

func main() {
	// Load .env if present; real deployments set env directly
	_ = godotenv.Load()

	cfg := config.Load()

	// The static catalog must be intact before serving anything
	catalog := cropdata.New()
	if err := catalog.Validate(); err != nil {
		log.Fatalf("Invalid crop catalog: %v", err)
	}

	metrics.Register()

	// Initialize database
	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.CreateTables(context.Background()); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	// Optional enrichments
	weatherClient := weather.NewClient(cfg.WeatherAPIURL, cfg.WeatherAPIKey)

	var suggester service.Suggester
	if cfg.GeminiAPIKey != "" {
		suggester = gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		log.Printf("Suggestion model enabled: %s", cfg.GeminiModel)
	}

	var publisher service.AlertPublisher
	if cfg.PublisherEnabled {
		p, err := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.AlertExchange)
		if err != nil {
			log.Fatalf("Failed to initialize alert publisher: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	// WebSocket hub for the live alert stream
	hub := ws.NewHub()
	go hub.Run()

	svc := service.New(catalog, db, weatherClient, suggester, publisher, hub)

	h := handlers.NewHandlers(svc, catalog)
	wsHandler := handlers.NewWebSocketHandler(hub)

	// Setup HTTP server
	router := gin.Default()

	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/farms", h.SaveFarmProfile)
		api.GET("/farms/:id", h.GetFarmProfile)
		api.POST("/checkin", h.SubmitCheckIn)
		api.GET("/checkins", h.GetCheckIns)
		api.POST("/records/weekly", h.SubmitWeeklyRecord)
		api.GET("/records/weekly", h.GetWeeklyRecords)
		api.GET("/crops", h.GetCrops)
		api.GET("/crops/:type/questions", h.GetCropQuestions)
		api.GET("/crops/:type/stages", h.GetCropStages)
		api.GET("/crops/:type/notes", h.GetCropNotes)
	}

	router.GET("/ws/alerts", wsHandler.StreamAlerts)
	router.GET("/ws/health", wsHandler.HealthCheck)

	srv := &http.Server{
		Addr:    cfg.Host + ":" + cfg.Port,
		Handler: router,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Printf("Starting HTTP server on %s:%s", cfg.Host, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
