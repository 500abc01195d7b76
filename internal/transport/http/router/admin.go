package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artist-portfolio/internal/core/auth"
	"artist-portfolio/internal/service"
	"artist-portfolio/internal/transport/http/handler"
	resp "artist-portfolio/internal/transport/http/response"
)

// NewAdminEngine builds the content management engine under /admin/v1.
func NewAdminEngine(l *zap.Logger, a *service.AdminAuth, content *service.Content, j *auth.JWTer, o Options) *gin.Engine {
	o.StaticDir = ""
	r := newEngine(l, o)

	var reg Registry
	reg.Register(handler.NewAdmin(a, content, j, l))
	reg.MountAdmin(r.Group("/admin/v1"))

	r.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, resp.Error(http.StatusNotFound, ""))
	})
	return r
}
