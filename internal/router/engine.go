package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/session"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/storage"
	"github.com/mohsinRafiq-dev/furniture-mart/pkg/token"
)

// API bundles the services the handlers need. Everything is constructed once
// in main and injected here; there are no ambient singletons, so tests can
// stand up an isolated API per test case.
type API struct {
	Store    storage.Store
	Sessions *session.Manager
	Codec    *token.Codec
}

func InitEngine() *gin.Engine {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	engine := gin.Default()

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "https://furnituremart.example.com"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Total-Count"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	return engine
}
