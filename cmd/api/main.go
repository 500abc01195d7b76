package main

import (
	"context"
	"fmt"
	"net/http"
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
	"artist-portfolio/internal/domain"
	"artist-portfolio/internal/service"
	"artist-portfolio/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err == nil {
		err = cfg.Validate()
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
		log.Error("site api stopped", zap.Error(err))
		cleanup()
		os.Exit(1)
	}
	log.Info("site api stopped gracefully")
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	content := service.NewContent(store)
	opts := router.OptionsFrom(cfg)
	h := cfg.App.HTTP
	rt := time.Duration(h.ReadTimeoutSec) * time.Second
	wt := time.Duration(h.WriteTimeoutSec) * time.Second
	it := time.Duration(h.IdleTimeoutSec) * time.Second

	srvs := []*http.Server{
		server.BuildServer(server.Addr(h.Host, h.Port), router.NewAPIEngine(log, store, content, opts), rt, wt, it, log),
	}
	base := server.BaseURL(h.Host, h.Port)
	log.Info("site api",
		zap.String("open", base),
		zap.String("health", base+"/health"),
		zap.String("api", base+"/api"),
	)

	// The embedded admin shares this process's store.
	if cfg.App.Admin.Embedded {
		if err := cfg.ValidateAdmin(); err != nil {
			log.Warn("embedded admin disabled", zap.Error(err))
		} else {
			admin, err := adminEngine(ctx, cfg, log, store, content, opts)
			if err != nil {
				return err
			}
			a := cfg.App.Admin
			srvs = append(srvs, server.BuildServer(server.Addr(a.Host, a.Port), admin, rt, wt, it, log))
			log.Info("admin api (embedded)", zap.String("admin_v1", server.BaseURL(a.Host, a.Port)+"/admin/v1"))
		}
	}

	return server.Run(ctx, log, 10*time.Second, srvs...)
}

func adminEngine(ctx context.Context, cfg *config.Config, log *zap.Logger, store domain.Store, content *service.Content, opts router.Options) (http.Handler, error) {
	j := bootstrap.JWTer(cfg.JWT)
	a := service.NewAdminAuth(store, j, log)
	if _, err := a.Bootstrap(ctx, cfg.Bootstrap.Username, cfg.Bootstrap.Password); err != nil {
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}
	return router.NewAdminEngine(log, a, content, j, opts), nil
}
