// Package router wires the gateway routes onto gin.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/mongogate/internal/cluster"
	"github.com/kart-io/mongogate/internal/gateway/biz"
	"github.com/kart-io/mongogate/internal/gateway/handler"
	"github.com/kart-io/mongogate/pkg/auth"
	"github.com/kart-io/mongogate/pkg/middleware"
)

// Config carries the router dependencies.
type Config struct {
	Biz              *biz.Biz
	Executor         cluster.Executor
	Authn            auth.Authenticator
	CORSAllowOrigins []string
	Health           func() error
}

// New builds the gin engine with the full middleware stack and all routes.
func New(cfg *Config) *gin.Engine {
	handler.RegisterValidations()

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigins),
	)

	engine.GET("/healthz", healthz(cfg.Health))

	authHandler := handler.NewAuthHandler(cfg.Biz.Auth)
	userHandler := handler.NewUserHandler(cfg.Biz.Users)
	connHandler := handler.NewConnectionHandler(cfg.Biz.Connections)
	clusterHandler := handler.NewClusterHandler(cfg.Executor)

	authn := middleware.Auth(cfg.Authn)

	// 认证相关
	authGroup := engine.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authn, authHandler.Logout)
		authGroup.GET("/me", authn, userHandler.Me)
	}

	v1 := engine.Group("/v1", authn)
	{
		// 连接注册表
		v1.POST("/connections", connHandler.Save)
		v1.GET("/connections", connHandler.List)
		v1.DELETE("/connections", connHandler.Remove)

		// 集群操作
		clusters := v1.Group("/clusters")
		{
			clusters.POST("/databases", clusterHandler.Databases)
			clusters.POST("/collections", clusterHandler.Collections)
			clusters.POST("/documents/query", clusterHandler.Documents)
			clusters.POST("/documents/search", clusterHandler.Search)
			clusters.POST("/documents/all", clusterHandler.AllDocuments)
			clusters.POST("/documents", clusterHandler.Insert)
		}
	}

	return engine
}

func healthz(check func() error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
