package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"teadiary/internal/core/auth"
	"teadiary/internal/core/config"
	"teadiary/internal/core/database"
	"teadiary/internal/core/logger"
	"teadiary/internal/core/server"
	"teadiary/internal/domain"
	"teadiary/internal/repo"
	"teadiary/internal/transport/http/router"
	"teadiary/internal/validation"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := buildLogger(cfg.Log)
	defer cleanup()

	// weak or missing signing key is a startup error, not a runtime one
	jwter, err := auth.New(
		cfg.JWT.Key,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		time.Duration(cfg.JWT.ExpiresInMinutes)*time.Minute,
	)
	if err != nil {
		log.Fatal("jwt config", zap.Error(err))
	}

	if err := validation.Register(); err != nil {
		log.Fatal("validation setup", zap.Error(err))
	}

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.TeaType{},
			&domain.Tea{},
			&domain.Impression{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	if err := repo.Seed(db, cfg.App.AdminEmail, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	r := router.NewAPIEngine(log, db, jwter, cfg.App.AllowOrigins)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start failed", zap.Error(err))
		}
	}()
	log.Info("tea diary api started", zap.String("addr", addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func buildLogger(c config.Log) (*zap.Logger, func()) {
	if !c.Rotation.Enable {
		return logger.New(c.Level, c.JSON)
	}
	return logger.NewWithRotate(c.Level, c.JSON, logger.FileRotate{
		Enable:     true,
		Filename:   c.Rotation.Filename,
		MaxSizeMB:  c.Rotation.MaxSizeMB,
		MaxBackups: c.Rotation.MaxBackups,
		MaxAgeDays: c.Rotation.MaxAgeDays,
		Compress:   c.Rotation.Compress,
	})
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
