package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artist-portfolio/internal/domain"
	"artist-portfolio/internal/transport/http/ez"
	resp "artist-portfolio/internal/transport/http/response"
)

type Skills struct {
	store domain.SkillRepository
	log   *zap.Logger
}

func NewSkills(s domain.SkillRepository, l *zap.Logger) *Skills {
	return &Skills{store: s, log: l}
}

func (h *Skills) Priority() int { return 20 }

func (h *Skills) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g, h.log)

	ez.RegisterAction(e, ez.Action[struct{}, []domain.Skill]{
		Method:  http.MethodGet,
		Path:    "/skills",
		Binder:  ez.BindNone,
		FailMsg: resp.MsgFetchSkills,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Skill, error) {
			skills, err := h.store.ListSkills(c.Request.Context())
			return nonNil(skills), err
		},
	})

	ez.RegisterAction(e, ez.Action[kindURI, []domain.Skill]{
		Method:  http.MethodGet,
		Path:    "/skills/:type",
		Binder:  ez.BindURI,
		FailMsg: resp.MsgFetchSkills,
		Handler: func(c *gin.Context, in *kindURI) ([]domain.Skill, error) {
			k, err := domain.ParseKind(in.Type)
			if err != nil {
				return nil, ez.BadRequest(resp.MsgInvalidSkillType)
			}
			skills, err := h.store.ListSkillsByKind(c.Request.Context(), k)
			return nonNil(skills), err
		},
	})
}
