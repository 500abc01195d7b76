package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artist-portfolio/internal/core/auth"
	"artist-portfolio/internal/domain"
	"artist-portfolio/internal/service"
	"artist-portfolio/internal/transport/http/ez"
	"artist-portfolio/internal/transport/http/middleware"
	resp "artist-portfolio/internal/transport/http/response"
)

type loginIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginOut struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type portfolioIn struct {
	Title        string   `json:"title"       binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Type         string   `json:"type"        binding:"required"`
	Category     string   `json:"category"    binding:"required"`
	ImageURL     string   `json:"imageUrl"    binding:"required,url"`
	MediaURL     *string  `json:"mediaUrl"`
	Technologies []string `json:"technologies"`
	ProjectURL   *string  `json:"projectUrl"`
}

type skillIn struct {
	Name       string `json:"name" binding:"required"`
	Type       string `json:"type" binding:"required"`
	Percentage *int   `json:"percentage" binding:"required"`
}

// Admin mounts content management under /admin/v1. Login is public, the
// rest sits behind AuthJWT with the admin role.
type Admin struct {
	auth    *service.AdminAuth
	content *service.Content
	jwt     *auth.JWTer
	log     *zap.Logger
}

func NewAdmin(a *service.AdminAuth, content *service.Content, j *auth.JWTer, l *zap.Logger) *Admin {
	return &Admin{auth: a, content: content, jwt: j, log: l}
}

func (h *Admin) MountAdmin(g *gin.RouterGroup) {
	ez.RegisterAction(ez.New(g, h.log), ez.Action[loginIn, loginOut]{
		Method:  http.MethodPost,
		Path:    "/auth/login",
		Binder:  ez.BindJSON,
		FailMsg: "Login failed",
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			tok, u, err := h.auth.Login(c.Request.Context(), in.Username, in.Password)
			if errors.Is(err, service.ErrInvalidCredentials) {
				return loginOut{}, ez.Unauthorized("Invalid username or password")
			}
			if err != nil {
				return loginOut{}, err
			}
			return loginOut{Token: tok, User: u}, nil
		},
	})

	authed := g.Group("")
	authed.Use(middleware.AuthJWT(h.jwt, auth.RoleAdmin))
	e := ez.New(authed, h.log)

	ez.RegisterAction(e, ez.Action[struct{}, domain.User]{
		Method:  http.MethodGet,
		Path:    "/me",
		Binder:  ez.BindNone,
		FailMsg: "Failed to load user",
		Roles:   []string{auth.RoleAdmin},
		Handler: func(c *gin.Context, _ *struct{}) (domain.User, error) {
			u, err := h.auth.Me(c.Request.Context(), c.GetInt(ez.KeyUserID))
			if err != nil {
				return domain.User{}, err
			}
			if u == nil {
				return domain.User{}, ez.NotFound("User not found")
			}
			return *u, nil
		},
	})

	ez.RegisterAction(e, ez.Action[portfolioIn, domain.PortfolioItem]{
		Method:  http.MethodPost,
		Path:    "/portfolio",
		Binder:  ez.BindJSON,
		Status:  http.StatusCreated,
		FailMsg: "Failed to create portfolio item",
		Roles:   []string{auth.RoleAdmin},
		Handler: func(c *gin.Context, in *portfolioIn) (domain.PortfolioItem, error) {
			item, err := h.content.CreatePortfolioItem(c.Request.Context(), service.NewPortfolioItem{
				Title:        in.Title,
				Description:  in.Description,
				Type:         in.Type,
				Category:     in.Category,
				ImageURL:     in.ImageURL,
				MediaURL:     in.MediaURL,
				Technologies: in.Technologies,
				ProjectURL:   in.ProjectURL,
			})
			switch {
			case errors.Is(err, domain.ErrInvalidKind):
				return item, ez.BadRequest(resp.MsgInvalidPortfolioType)
			case errors.Is(err, domain.ErrInvalidCategory):
				return item, ez.BadRequest("Invalid category for type " + in.Type)
			}
			return item, err
		},
	})

	ez.RegisterAction(e, ez.Action[skillIn, domain.Skill]{
		Method:  http.MethodPost,
		Path:    "/skills",
		Binder:  ez.BindJSON,
		Status:  http.StatusCreated,
		FailMsg: "Failed to create skill",
		Roles:   []string{auth.RoleAdmin},
		Handler: func(c *gin.Context, in *skillIn) (domain.Skill, error) {
			sk, err := h.content.CreateSkill(c.Request.Context(), in.Name, in.Type, *in.Percentage)
			switch {
			case errors.Is(err, domain.ErrInvalidKind):
				return sk, ez.BadRequest(resp.MsgInvalidSkillType)
			case errors.Is(err, service.ErrInvalidPercentage):
				return sk, ez.BadRequest("Percentage must be between 0 and 100")
			}
			return sk, err
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, []domain.ContactMessage]{
		Method:  http.MethodGet,
		Path:    "/messages",
		Binder:  ez.BindNone,
		FailMsg: "Failed to fetch messages",
		Roles:   []string{auth.RoleAdmin},
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.ContactMessage, error) {
			msgs, err := h.content.ContactMessages(c.Request.Context())
			return nonNil(msgs), err
		},
	})
}
