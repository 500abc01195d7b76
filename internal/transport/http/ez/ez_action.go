package ez

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "artist-portfolio/internal/transport/http/response"
)

type Binder string

const (
	BindJSON  Binder = "json"  // request body
	BindQuery Binder = "query" // ?a=b
	BindURI   Binder = "uri"   // :param segments
	BindNone  Binder = "none"
)

// gin context keys shared with the middleware package.
const (
	KeyRequestID = "X-Request-ID"
	KeyUserID    = "userId"
	KeyRole      = "role"
)

type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, l *zap.Logger) EZ {
	if l == nil {
		l = zap.NewNop()
	}
	return EZ{g: g, log: l}
}

// Action is one endpoint: I is the bound input, O the JSON output.
type Action[I any, O any] struct {
	Method string
	Path   string
	Binder Binder
	// Status on success; 0 means 200.
	Status int
	// BindMsg replaces the validator text on bind failures.
	BindMsg string
	// FailMsg is what the client sees for any error that is not an *AErr.
	FailMsg string
	// Roles limits the action to these roles; empty allows everyone.
	Roles   []string
	Handler func(c *gin.Context, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		if len(a.Roles) > 0 && !slices.Contains(a.Roles, c.GetString(KeyRole)) {
			e.fail(c, a.FailMsg, Forbidden(""))
			return
		}

		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		case BindURI:
			bindErr = c.ShouldBindUri(&in)
		}
		if bindErr != nil {
			msg := a.BindMsg
			if msg == "" {
				msg = bindMessage(bindErr)
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, resp.Error(http.StatusBadRequest, msg))
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			e.fail(c, a.FailMsg, err)
			return
		}
		status := a.Status
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

// fail writes the error response. Anything that is not an *AErr is
// reported as a 500 with failMsg and only the log sees the cause.
func (e EZ) fail(c *gin.Context, failMsg string, err error) {
	_ = c.Error(err)

	var ae *AErr
	if !errors.As(err, &ae) {
		ae = &AErr{Status: http.StatusInternalServerError, Msg: failMsg, Err: err}
	}
	if ae.Status >= http.StatusInternalServerError {
		e.log.Error("action failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("rid", c.GetString(KeyRequestID)),
			zap.Error(err),
		)
		msg := ae.Msg
		if msg == "" {
			msg = failMsg
		}
		c.AbortWithStatusJSON(ae.Status, resp.Error(ae.Status, msg))
		return
	}
	c.AbortWithStatusJSON(ae.Status, resp.Error(ae.Status, ae.Msg))
}
