package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pharmacare_backend/database"
	"pharmacare_backend/internal/auth"
	"pharmacare_backend/internal/cache"
	"pharmacare_backend/internal/config"
	"pharmacare_backend/internal/email"
	"pharmacare_backend/internal/handlers"
	"pharmacare_backend/internal/logger"
	"pharmacare_backend/internal/middleware"
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/routes"
	"pharmacare_backend/internal/services"
	"pharmacare_backend/internal/validator"
	"pharmacare_backend/internal/workers"
)

// Run boots the full application and blocks on the HTTP server.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	auth.Configure(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTLMin, cfg.JWT.RefreshTTLDays)

	db, err := database.ConnectGorm(cfg.Database.DSN)
	if err != nil {
		return err
	}

	router, sc := SetupRouter(cfg, db)

	if err := seedFirstAdmin(db, cfg); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go workers.NewTokenCleanupWorker(sc.RefreshTokens).Start(ctx)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter builds the gin engine with the full dependency graph. Tests
// call this directly against their own database handle.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, *services.ServiceContainer) {
	c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	var mailer email.Provider
	if cfg.Email.SMTPHost != "" {
		mailer = email.NewSMTPProvider(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUsername,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
			cfg.Email.FromName,
		)
	} else {
		mailer = email.NewMockProvider()
	}

	sc := services.NewServiceContainer(db, c, mailer)
	h := handlers.NewAppHandlers(sc, validator.New())

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	routes.Register(router, h)
	return router, sc
}

// seedFirstAdmin creates the bootstrap admin account when configured and
// absent. Runs in a transaction so concurrent instances cannot double-seed.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", cfg.FirstAdminEmail).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hash, err := auth.HashPassword(cfg.FirstAdminPassword)
		if err != nil {
			return err
		}

		adminEmail := cfg.FirstAdminEmail
		admin := &models.User{
			Email:         &adminEmail,
			PasswordHash:  hash,
			Name:          "Administrator",
			Role:          models.UserRoleAdmin,
			EmailVerified: true,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		logger.Info("first admin seeded", "email", cfg.FirstAdminEmail)
		return nil
	})
}
