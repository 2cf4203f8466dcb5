package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"hridsync/cmd/api/chat"
	"hridsync/cmd/api/handlers"
	"hridsync/cmd/api/middleware"
	"hridsync/cmd/api/services"
	"hridsync/db"
	_ "hridsync/docs"
)

// Deps carries the constructed services the routes are wired against.
// main builds them once so the hub, the REST handlers and the event bus
// subscriber share the same chat service instance.
type Deps struct {
	Auth           *services.AuthService
	Chat           *services.ChatService
	AI             *services.AIService
	Nutritionists  *services.NutritionistService
	Assessments    *services.AssessmentService
	Hub            *chat.Hub
	AllowedOrigins []string
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Realtime relay. Does its own handshake auth (header or query token).
	r.GET("/ws", chat.ServeWS(deps.Hub, deps.Auth, deps.AllowedOrigins))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/auth/signup", handlers.SignupHandler(deps.Auth))
		api.POST("/auth/login", handlers.LoginHandler(deps.Auth))

		authed := api.Group("")
		authed.Use(middleware.UserAuthMiddleware(deps.Auth))
		{
			authed.GET("/users/profile", handlers.GetUserProfileHandler(deps.Auth))

			authed.GET("/nutritionists", handlers.ListNutritionistsHandler(deps.Nutritionists))
			authed.PUT("/nutritionists/profile", handlers.UpsertNutritionistProfileHandler(deps.Nutritionists))

			authed.POST("/chat/start", handlers.StartChatHandler(deps.Chat))
			authed.POST("/chat/nutritionist", handlers.StartNutritionistChatHandler(deps.Chat, deps.Nutritionists))
			authed.GET("/chat/:sessionId/messages", handlers.GetMessagesHandler(deps.Chat))
			authed.POST("/chat/:sessionId/message", handlers.SendMessageHandler(deps.Chat))
			authed.POST("/chat/ai", handlers.AIChatHandler(deps.AI))

			authed.POST("/assessments", handlers.CreateAssessmentHandler(deps.Assessments))
			authed.GET("/assessments/history", handlers.AssessmentHistoryHandler(deps.Assessments))
		}
	}

	return r
}
