package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"hridsync/cmd/api/auth"
	"hridsync/cmd/api/chat"
	"hridsync/cmd/api/router"
	"hridsync/cmd/api/services"
	"hridsync/internal/logger"
	"hridsync/config"
	"hridsync/db"
	_ "hridsync/docs" // swag will generate this package
	"hridsync/eventbus"
	"hridsync/repositories"
)

func newEventBus(cfg config.AppConfig) eventbus.EventBus {
	if cfg.EventBus.Driver == "kafka" {
		bus, err := eventbus.NewKafkaEventBus(eventbus.GetBrokers())
		if err != nil {
			log.Fatal(err)
		}
		return bus
	}
	return eventbus.NewMemoryEventBus()
}

// @title           HridSync API
// @version         1.0
// @description     Heart-health screening and nutritionist chat API
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	cfg := config.GetConfig()

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}
	database := db.Database()

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repositories.NewUserRepository(database)
	sessionRepo := repositories.NewChatSessionRepository(database)
	messageRepo := repositories.NewChatMessageRepository(database)
	nutritionistRepo := repositories.NewNutritionistRepository(database)
	assessmentRepo := repositories.NewHealthAssessmentRepository(database)
	riskRepo := repositories.NewHealthRiskRepository(database)

	bus := newEventBus(cfg)
	defer bus.Close()

	llm := services.NewGeminiClient()

	authSvc := services.NewAuthService(userRepo, jwtManager)
	chatSvc := services.NewChatService(sessionRepo, messageRepo, bus)
	aiSvc := services.NewAIService(chatSvc, llm)
	nutritionistSvc := services.NewNutritionistService(nutritionistRepo, userRepo)
	assessmentSvc := services.NewAssessmentService(assessmentRepo, riskRepo, llm)

	hub := chat.NewHub(chatSvc, cfg.Chat.ReplayLimit())
	go func() {
		groupID := os.Getenv("KAFKA_GROUP_ID")
		if groupID == "" {
			groupID = "hridsync-api"
		}
		if err := hub.SubscribeBus(context.Background(), bus, groupID); err != nil {
			logger.ErrorWithFields("chat event subscription ended", logger.Fields{
				"error": err.Error(),
			})
		}
	}()

	r := router.New(router.Deps{
		Auth:           authSvc,
		Chat:           chatSvc,
		AI:             aiSvc,
		Nutritionists:  nutritionistSvc,
		Assessments:    assessmentSvc,
		Hub:            hub,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler(r)

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8080"
	}
	logger.InfoWithFields("api server starting", logger.Fields{"addr": addr})
	if err := http.ListenAndServe(addr, corsHandler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
