package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"artist-portfolio/internal/core/bootstrap"
	"artist-portfolio/internal/core/config"
	"artist-portfolio/internal/core/logger"
	"artist-portfolio/internal/core/server"
	"artist-portfolio/internal/service"
	"artist-portfolio/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err == nil {
		err = cfg.Validate()
	}
	if err == nil {
		err = cfg.ValidateAdmin()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, cleanup := bootstrap.Logger(cfg.Log)
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()
	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logger.ToWriter(log, zapcore.DebugLevel)
	gin.DefaultErrorWriter = logger.ToWriter(log, zapcore.ErrorLevel)

	if err := run(cfg, log); err != nil {
		log.Error("admin api stopped", zap.Error(err))
		cleanup()
		os.Exit(1)
	}
	log.Info("admin api stopped gracefully")
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Store.Driver == "memory" {
		log.Warn("memory store in a standalone admin process; writes are not visible to the site api, use app.admin.embedded instead")
	}
	store, closeStore, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	j := bootstrap.JWTer(cfg.JWT)
	a := service.NewAdminAuth(store, j, log)
	if _, err := a.Bootstrap(ctx, cfg.Bootstrap.Username, cfg.Bootstrap.Password); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	r := router.NewAdminEngine(log, a, service.NewContent(store), j, router.OptionsFrom(cfg))

	ad := cfg.App.Admin
	srv := server.BuildServer(server.Addr(ad.Host, ad.Port), r, 5*time.Second, 10*time.Second, 60*time.Second, log)
	base := server.BaseURL(ad.Host, ad.Port)
	log.Info("admin api",
		zap.String("open", base),
		zap.String("health", base+"/health"),
		zap.String("admin_v1", base+"/admin/v1"),
	)
	return server.Run(ctx, log, 10*time.Second, srv)
}
