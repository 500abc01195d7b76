package router

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"artist-portfolio/internal/core/config"
	"artist-portfolio/internal/core/server"
	"artist-portfolio/internal/domain"
	"artist-portfolio/internal/service"
	"artist-portfolio/internal/transport/http/handler"
	mdw "artist-portfolio/internal/transport/http/middleware"
	resp "artist-portfolio/internal/transport/http/response"
)

// Options carries the HTTP knobs shared by both engines.
type Options struct {
	AllowOrigins []string
	Limits       config.Limits
	// StaticDir, when set, is served for non-/api paths with index.html
	// as the fallback.
	StaticDir string
}

// OptionsFrom picks the engine options out of the loaded config.
func OptionsFrom(c *config.Config) Options {
	return Options{
		AllowOrigins: c.App.HTTP.AllowOrigins,
		Limits:       c.Limits,
		StaticDir:    c.App.HTTP.StaticDir,
	}
}

// newEngine applies the common middleware chain plus /health and /metrics.
func newEngine(l *zap.Logger, o Options) *gin.Engine {
	r := server.NewRouter(o.AllowOrigins)

	lim := o.Limits
	limiter := mdw.RateLimit(rate.Limit(lim.RPS), lim.Burst)
	if lim.PerIP {
		limiter = mdw.RateLimitPerIP(rate.Limit(lim.RPS), lim.Burst, 10*time.Minute)
	}
	chain := []gin.HandlerFunc{mdw.RequestID(), mdw.Recovery(l)}
	if lim.RPS > 0 {
		chain = append(chain, limiter)
	}
	if lim.MaxConcurrent > 0 {
		chain = append(chain, mdw.ConcurrencyLimit(lim.MaxConcurrent))
	}
	if lim.MaxBodyBytes > 0 {
		chain = append(chain, mdw.MaxBodyBytes(lim.MaxBodyBytes))
	}
	if lim.TimeoutSec > 0 {
		chain = append(chain, mdw.Timeout(time.Duration(lim.TimeoutSec)*time.Second))
	}
	chain = append(chain, mdw.Metrics(), mdw.AccessLog(l, "/health", "/metrics"))
	r.Use(chain...)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", mdw.MetricsHandler())
	return r
}

// NewAPIEngine builds the public site engine: /api routes backed by store,
// plus the optional single-page app.
func NewAPIEngine(l *zap.Logger, store domain.Store, content *service.Content, o Options) *gin.Engine {
	r := newEngine(l, o)

	var reg Registry
	reg.Register(
		handler.NewPortfolio(store, l),
		handler.NewSkills(store, l),
		handler.NewContact(content, l),
	)
	reg.MountAPI(r.Group("/api"))

	r.NoRoute(spaFallback(o.StaticDir))
	return r
}

// spaFallback answers unknown /api paths with a JSON 404 and everything
// else from dir, falling back to index.html so client-side routes load.
func spaFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if dir == "" || p == "/api" || strings.HasPrefix(p, "/api/") || c.Request.Method != http.MethodGet {
			c.AbortWithStatusJSON(http.StatusNotFound, resp.Error(http.StatusNotFound, ""))
			return
		}
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+p)))
		if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
			c.File(name)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}
