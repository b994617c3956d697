package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"teadiary/internal/core/auth"
	"teadiary/internal/domain"
	"teadiary/internal/repo"
	"teadiary/internal/transport/http/handler"
	mdw "teadiary/internal/transport/http/middleware"
)

// NewAPIEngine assembles the middleware chain and mounts the diary API under
// /api.
func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, allowOrigins []string) *gin.Engine {
	r := gin.New()

	// CORS goes first so rejections from the limiters below still carry the
	// headers the SPA needs to read the error envelope.
	r.Use(
		corsPolicy(allowOrigins),
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		ginzap.Ginzap(l, time.RFC3339, true),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := repo.NewUserRepo(db)
	teaTypes := repo.NewTeaTypeRepo(db)
	teas := repo.NewTeaRepo(db)
	impressions := repo.NewImpressionRepo(db)

	authH := handler.NewAuthHandler(users, jwter, l)
	userH := handler.NewUserHandler(users, l)
	teaH := handler.NewTeaHandler(teas, teaTypes, users, l)
	typeH := handler.NewTeaTypeHandler(teaTypes, l)
	imprH := handler.NewImpressionHandler(impressions, teas, users, l)

	api := r.Group("/api")

	ag := api.Group("/auth")
	ag.POST("/register", authH.Register)
	ag.POST("/login", authH.Login)
	ag.GET("/me", mdw.AuthJWT(jwter), authH.Me)
	ag.PUT("/me", mdw.AuthJWT(jwter), authH.UpdateMe)

	ug := api.Group("/user")
	ug.GET("", userH.List)
	ug.POST("", userH.Create)
	ug.GET("/:id", userH.Get)
	ug.PUT("/:id", userH.Update)
	ug.DELETE("/:id", userH.Delete)

	tg := api.Group("/tea")
	tg.GET("", teaH.List)
	tg.POST("", teaH.Create)
	tg.GET("/:id", teaH.Get)
	tg.PUT("/:id", teaH.Update)
	tg.DELETE("/:id", teaH.Delete)
	tg.GET("/user/:userId", teaH.ListByUser)

	ttg := api.Group("/teatype")
	ttg.GET("", typeH.List)
	ttg.POST("", typeH.Create)
	ttg.GET("/:id", typeH.Get)
	ttg.PUT("/:id", typeH.Update)
	ttg.DELETE("/:id", typeH.Delete)

	ig := api.Group("/impression")
	ig.Use(mdw.AuthJWT(jwter))
	ig.GET("", mdw.RequireRole(domain.RoleAdmin), imprH.List)
	ig.POST("", imprH.Create)
	ig.GET("/:id", imprH.Get)
	ig.PUT("/:id", imprH.Update)
	ig.DELETE("/:id", imprH.Delete)

	return r
}

// corsPolicy admits the SPA client; with no configured origins the default
// permissive dev policy is used.
func corsPolicy(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cors.New(cfg)
}
