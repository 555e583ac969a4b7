package server

import (
	"net/http"
	"os"
	"time"

	"citylegends/backend/internal/auth"
	"citylegends/backend/internal/config"
	"citylegends/backend/internal/handler"
	"citylegends/backend/internal/metrics"
	"citylegends/backend/internal/mw"
	"citylegends/backend/internal/service"
	"citylegends/backend/web"

	_ "citylegends/backend/docs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter wires middleware, the JSON API, the pages and the operational
// endpoints onto one gin engine. A nil limiter disables rate limiting; the
// caller owns it and stops it on shutdown.
func SetupRouter(cfg config.Config, db *gorm.DB, limiter *mw.RL) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(mw.RequestLogger())
	r.Use(metrics.GinMiddleware())
	r.Use(mw.CORS(cfg.CORSOrigins))
	if limiter != nil {
		r.Use(limiter.Middleware())
	}

	sessions := auth.NewSessions(cfg.SecretKey, time.Duration(cfg.SessionTTLHours)*time.Hour, cfg.CookieSecure)
	r.Use(sessions.Middleware())

	users := service.NewAuthService(db)
	authHandler := handler.NewAuthHandler(users, sessions)
	roomHandler := handler.NewRoomHandler(service.NewRoomService(db, cfg.WSBaseURL))
	chatHandler := handler.NewChatHandler(service.NewChatService(db))
	pageHandler := handler.NewPageHandler(sessions)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/reset", authHandler.Reset)
		authRoutes.POST("/logout", authHandler.Logout)
		authRoutes.GET("/logout", pageHandler.Logout)
	}
	r.POST("/profile/nickname", authHandler.UpdateNickname)

	// Room routes
	roomRoutes := r.Group("/rooms")
	{
		roomRoutes.GET("", roomHandler.List)
		roomRoutes.POST("", roomHandler.Create)
		roomRoutes.POST("/:id/join", roomHandler.Join)
	}

	// Chat routes
	chatRoutes := r.Group("/api/chat")
	{
		chatRoutes.GET("/:roomId", chatHandler.List)
		chatRoutes.POST("/:roomId", chatHandler.Post)
	}

	// Pages
	r.GET("/", pageHandler.Render("home.html", ""))
	r.GET("/auth", pageHandler.Render("auth.html", "Вхід"))
	r.GET("/authentication", pageHandler.Render("authentication.html", "Увійти"))
	r.GET("/registration", pageHandler.Render("registration.html", "Реєстрація"))
	r.GET("/reset-password", pageHandler.Render("reset-password.html", "Відновлення пароля"))
	r.GET("/faq", pageHandler.Render("faq.html", "FAQ"))
	r.GET("/faq-about-cards", pageHandler.Render("faq-about-cards.html", "Питання про карти"))
	r.GET("/how-to-play", pageHandler.Render("how-to-play.html", "Як грати"))
	r.GET("/playable-window", pageHandler.Render("playable-window.html", "Гра"))

	userPages := r.Group("", auth.RequirePageUser(users, "/auth"))
	{
		userPages.GET("/settings", pageHandler.RenderUser("settings.html", "Налаштування"))
		userPages.GET("/profile", pageHandler.RenderUser("profile.html", "Профіль"))
	}

	if fi, err := os.Stat(cfg.StaticDir); err == nil && fi.IsDir() {
		r.Static("/static", cfg.StaticDir)
	} else {
		log.Debug().Str("static_dir", cfg.StaticDir).Msg("static dir not found, serving embedded assets")
		r.StaticFS("/static", http.FS(web.Static()))
	}

	return r, nil
}
