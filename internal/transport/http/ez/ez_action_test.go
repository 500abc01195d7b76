package ez

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() { gin.SetMode(gin.TestMode) }

type echoIn struct {
	Name  string `json:"name" binding:"required,min=2"`
	Email string `json:"email" binding:"required,email"`
}

type echoOut struct {
	Name string `json:"name"`
}

func do(r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	return w, m
}

func newEngine(l *zap.Logger) (*gin.Engine, EZ) {
	r := gin.New()
	return r, New(r.Group(""), l)
}

func TestRegisterActionSuccess(t *testing.T) {
	r, e := newEngine(nil)
	RegisterAction(e, Action[echoIn, echoOut]{
		Method: http.MethodPost,
		Path:   "/echo",
		Binder: BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *echoIn) (echoOut, error) {
			return echoOut{Name: in.Name}, nil
		},
	})

	w, body := do(r, http.MethodPost, "/echo", `{"name":"Ada","email":"ada@example.com"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Ada", body["name"])
}

func TestRegisterActionBindMessages(t *testing.T) {
	r, e := newEngine(nil)
	RegisterAction(e, Action[echoIn, echoOut]{
		Method: http.MethodPost,
		Path:   "/echo",
		Binder: BindJSON,
		Handler: func(c *gin.Context, in *echoIn) (echoOut, error) {
			return echoOut{}, nil
		},
	})

	cases := map[string]string{
		`{"name":"A","email":"ada@example.com"}`: "Name must be at least 2 characters",
		`{"name":"Ada","email":"nope"}`:          "Please enter a valid email address",
		`{"email":"ada@example.com"}`:            "Name is required",
		`{not json`:                              "Invalid request body",
	}
	for in, want := range cases {
		w, body := do(r, http.MethodPost, "/echo", in)
		assert.Equal(t, http.StatusBadRequest, w.Code, in)
		assert.Equal(t, want, body["message"], in)
	}
}

func TestRegisterActionErrorMapping(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r, e := newEngine(zap.New(core))

	errs := map[string]error{
		"/bad":      BadRequest("Invalid ID"),
		"/missing":  NotFound("Portfolio item not found"),
		"/conflict": &AErr{Status: http.StatusConflict, Msg: "taken"},
		"/boom":     errors.New("db exploded: secret detail"),
		"/internal": &AErr{Status: http.StatusInternalServerError, Err: errors.New("cause")},
	}
	for path, err := range errs {
		err := err
		RegisterAction(e, Action[struct{}, echoOut]{
			Method:  http.MethodGet,
			Path:    path,
			Binder:  BindNone,
			FailMsg: "Failed to fetch skills",
			Handler: func(c *gin.Context, _ *struct{}) (echoOut, error) { return echoOut{}, err },
		})
	}

	want := map[string]struct {
		code int
		msg  string
	}{
		"/bad":      {http.StatusBadRequest, "Invalid ID"},
		"/missing":  {http.StatusNotFound, "Portfolio item not found"},
		"/conflict": {http.StatusConflict, "taken"},
		"/boom":     {http.StatusInternalServerError, "Failed to fetch skills"},
		"/internal": {http.StatusInternalServerError, "Failed to fetch skills"},
	}
	for path, exp := range want {
		w, body := do(r, http.MethodGet, path, "")
		assert.Equal(t, exp.code, w.Code, path)
		assert.Equal(t, exp.msg, body["message"], path)
		assert.NotContains(t, w.Body.String(), "secret detail")
	}
	assert.Equal(t, 2, logs.Len())
}

func TestRegisterActionRoles(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(KeyRole, c.GetHeader("X-Role"))
		c.Next()
	})
	e := New(r.Group(""), nil)
	RegisterAction(e, Action[struct{}, echoOut]{
		Method:  http.MethodGet,
		Path:    "/secret",
		Binder:  BindNone,
		Roles:   []string{"admin"},
		Handler: func(c *gin.Context, _ *struct{}) (echoOut, error) { return echoOut{Name: "ok"}, nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("X-Role", "guest")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Forbidden"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("X-Role", "admin")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterActionURIBinding(t *testing.T) {
	type in struct {
		ID int `uri:"id" binding:"required"`
	}
	r, e := newEngine(nil)
	RegisterAction(e, Action[in, echoOut]{
		Method:  http.MethodGet,
		Path:    "/items/:id",
		Binder:  BindURI,
		BindMsg: "Invalid ID",
		Handler: func(c *gin.Context, in *in) (echoOut, error) { return echoOut{Name: "x"}, nil },
	})

	w, _ := do(r, http.MethodGet, "/items/7", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, body := do(r, http.MethodGet, "/items/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid ID", body["message"])
}
