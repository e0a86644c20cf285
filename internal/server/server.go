package server

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inbucks/inbucks/internal/api/controller"
	"github.com/inbucks/inbucks/internal/api/middleware"
	"github.com/inbucks/inbucks/internal/api/repository"
	"github.com/inbucks/inbucks/internal/api/response"
	"github.com/inbucks/inbucks/internal/session"
	"github.com/inbucks/inbucks/internal/validator"
)

// Server owns the gin engine and the route table.
type Server struct {
	engine *gin.Engine
}

// Deps carries everything the route table needs.
type Deps struct {
	Auth         *controller.AuthController
	Offers       *controller.OfferController
	Transactions *controller.TransactionController
	Sessions     session.Store
	Users        repository.UserRepository
	CookieName   string
}

// NewServer builds the gin engine with the full middleware stack and all
// API routes registered.
func NewServer(deps Deps) (*Server, error) {
	if err := validator.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize validator: %w", err)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger())
	engine.Use(middleware.SessionLoader(deps.Sessions, deps.Users, deps.CookieName))

	api := engine.Group("/api")
	{
		api.GET("/health", handleHealth)

		api.POST("/register", deps.Auth.Register)
		api.POST("/login", deps.Auth.Login)
		api.POST("/logout", deps.Auth.Logout)
		api.GET("/user", deps.Auth.Me)

		api.GET("/offers", deps.Offers.List)
		api.GET("/offers/:id", deps.Offers.Get)
	}

	authed := api.Group("", middleware.RequireAuth())
	{
		authed.POST("/offers", deps.Offers.Create)
		authed.GET("/transactions", deps.Transactions.List)
		authed.POST("/transactions", deps.Transactions.Create)
	}

	return &Server{engine: engine}, nil
}

// Engine exposes the underlying gin engine for http.Server wiring and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func handleHealth(c *gin.Context) {
	response.SuccessResponse(c, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
