package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/mohsinRafiq-dev/furniture-mart/internal/router"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/ai"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/catalog"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/global"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/session"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/storage"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/token"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	catalog.InitMongoDB()
	catalog.EnsureIndexesOnStartup()
	ai.InitializeAIService()

	primary := storage.NewRedisStore()
	fallback := storage.NewMemoryStore()
	codec := token.NewCodec(global.GetTokenSigningKey())

	auth, err := session.NewDefaultDemoAuthenticator()
	if err != nil {
		log.Fatalf("Failed to build demo authenticator: %v", err)
	}
	sessions := session.NewManager(primary, fallback, codec, auth)

	ctx, cancel := global.GetDefaultTimer()
	sessions.InitializeAuth(ctx)
	cancel()

	api := &router.API{
		Store:    primary,
		Sessions: sessions,
		Codec:    codec,
	}

	engine := router.InitEngine()
	api.RegisterRoutes(engine)

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := engine.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
