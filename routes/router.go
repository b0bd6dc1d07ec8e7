package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jacintha05/ElectoVote/config"
	"github.com/jacintha05/ElectoVote/controllers"
	"github.com/jacintha05/ElectoVote/email"
	"github.com/jacintha05/ElectoVote/middleware"
	"github.com/jacintha05/ElectoVote/storage"
)

func SetupRouter(cfg config.Config, store storage.Storage, mailer email.Mailer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "Origin", "X-Request-Id"},
		MaxAge:          240 * time.Hour,
	}))

	voters := controllers.NewVoterController(store)
	candidates := controllers.NewCandidateController(store)
	votes := controllers.NewVoteController(store, mailer)
	stats := controllers.NewStatsController(store, cfg.RegisteredVoters)
	auth := controllers.NewAuthController(store, cfg.JWTSecret)
	system := controllers.NewSystemController(cfg.SystemKey)

	api := router.Group("/api")

	// Voter routes
	api.POST("/voters/register", voters.Register)
	api.POST("/voters/login", voters.Login)

	// Candidate routes
	api.POST("/candidates/register", candidates.Register)
	api.POST("/candidates/login", candidates.Login)
	api.GET("/candidates", candidates.List)
	api.GET("/candidates/:id", candidates.Get)

	// Vote and statistics routes
	api.POST("/votes", votes.Cast)
	api.GET("/stats", stats.Get)

	// Local-auth user routes
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)
	api.GET("/auth/user", middleware.JWTAuthMiddleware(cfg.JWTSecret), auth.Me)

	// Operational routes
	api.GET("/system/health", system.Health)
	sys := api.Group("/system")
	sys.Use(system.Verify)
	sys.GET("/info", system.Info)
	sys.POST("/clean", system.TriggerGC)

	return router
}
