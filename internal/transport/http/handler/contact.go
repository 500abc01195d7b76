package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artist-portfolio/internal/domain"
	"artist-portfolio/internal/service"
	"artist-portfolio/internal/transport/http/ez"
	resp "artist-portfolio/internal/transport/http/response"
)

// contactIn mirrors the site's contact form rules.
type contactIn struct {
	Name    string `json:"name"    binding:"required,min=2"`
	Email   string `json:"email"   binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=5"`
	Message string `json:"message" binding:"required,min=10"`
}

type Contact struct {
	svc *service.Content
	log *zap.Logger
}

func NewContact(svc *service.Content, l *zap.Logger) *Contact {
	return &Contact{svc: svc, log: l}
}

func (h *Contact) Priority() int { return 30 }

func (h *Contact) MountAPI(g *gin.RouterGroup) {
	ez.RegisterAction(ez.New(g, h.log), ez.Action[contactIn, domain.ContactMessage]{
		Method:  http.MethodPost,
		Path:    "/contact",
		Binder:  ez.BindJSON,
		Status:  http.StatusCreated,
		FailMsg: resp.MsgSendMessage,
		Handler: func(c *gin.Context, in *contactIn) (domain.ContactMessage, error) {
			return h.svc.SubmitContact(c.Request.Context(), service.NewContactMessage{
				Name:    in.Name,
				Email:   in.Email,
				Subject: in.Subject,
				Message: in.Message,
			})
		},
	})
}
