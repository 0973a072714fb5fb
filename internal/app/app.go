package app

import (
	"context"
	"fmt"
	"html/template"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Goldlee001/CoeCarbon/internal/config"
	"github.com/Goldlee001/CoeCarbon/internal/db"
	"github.com/Goldlee001/CoeCarbon/internal/handlers"
	"github.com/Goldlee001/CoeCarbon/internal/i18n"
	"github.com/Goldlee001/CoeCarbon/internal/logger"
	"github.com/Goldlee001/CoeCarbon/internal/repositories"
	"github.com/Goldlee001/CoeCarbon/internal/routes"
	"github.com/Goldlee001/CoeCarbon/internal/services"
	"github.com/Goldlee001/CoeCarbon/internal/session"
)

func Run() {
	_ = godotenv.Load(".env")

	log, err := logger.New(os.Getenv("DEV_MODE") == "true")
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("configuration error", zap.Error(err))
	}
	if cfg.SessionSecret == config.InsecureSessionSecret {
		log.Warn("SESSION_SECRET is unset; using the insecure default, do not run this in production")
	}

	ctx := context.Background()

	// === DB ===
	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Warn("database close failed", zap.Error(err))
		}
	}()
	if err := db.Migrate(conn); err != nil {
		log.Fatal("migrations failed", zap.Error(err))
	}

	// === Redis (sessions) ===
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	// === Locales ===
	bundle, err := i18n.Load(cfg.LocalesDir, cfg.DefaultLocale)
	if err != nil {
		log.Fatal("locale tables failed to load", zap.Error(err))
	}

	// === Repos / services ===
	userRepo := repositories.NewUserRepository(conn)
	authService := services.NewAuthService()
	userService := services.NewUserService(userRepo, authService)

	sessionStore := session.NewRedisStore(rdb)
	sessionCodec := session.NewCookieCodec(cfg.SessionSecret)
	sessions := session.NewManager(sessionStore, sessionCodec, log)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, sessions, log)
	pagesHandler := handlers.NewPagesHandler(userService, sessions, log)
	adminHandler := handlers.NewAdminHandler(userService, log)

	// === Gin ===
	if !cfg.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))

	tmpl, err := template.ParseGlob(cfg.TemplatesDir + "/*.html")
	if err != nil {
		log.Fatal("templates failed to parse", zap.Error(err))
	}
	router.SetHTMLTemplate(tmpl)
	router.Static("/static", cfg.StaticDir)

	routes.SetupRoutes(router, sessions, userService, bundle, authHandler, pagesHandler, adminHandler, log)

	// === Run ===
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server starting", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
