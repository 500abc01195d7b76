package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artist-portfolio/internal/domain"
	"artist-portfolio/internal/transport/http/ez"
	resp "artist-portfolio/internal/transport/http/response"
)

type kindURI struct {
	Type string `uri:"type"`
}

type idURI struct {
	ID string `uri:"id"`
}

// Portfolio serves the read-only portfolio routes under /api.
type Portfolio struct {
	store domain.PortfolioRepository
	log   *zap.Logger
}

func NewPortfolio(s domain.PortfolioRepository, l *zap.Logger) *Portfolio {
	return &Portfolio{store: s, log: l}
}

func (h *Portfolio) Priority() int { return 10 }

func (h *Portfolio) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g, h.log)

	ez.RegisterAction(e, ez.Action[struct{}, []domain.PortfolioItem]{
		Method:  http.MethodGet,
		Path:    "/portfolio",
		Binder:  ez.BindNone,
		FailMsg: resp.MsgFetchItems,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.PortfolioItem, error) {
			items, err := h.store.ListPortfolio(c.Request.Context())
			return nonNil(items), err
		},
	})

	// Registered before /portfolio/:type; gin prefers the static segment.
	ez.RegisterAction(e, ez.Action[idURI, domain.PortfolioItem]{
		Method:  http.MethodGet,
		Path:    "/portfolio/item/:id",
		Binder:  ez.BindURI,
		FailMsg: resp.MsgFetchItem,
		Handler: func(c *gin.Context, in *idURI) (domain.PortfolioItem, error) {
			id, err := strconv.Atoi(in.ID)
			if err != nil {
				return domain.PortfolioItem{}, ez.BadRequest(resp.MsgInvalidID)
			}
			item, err := h.store.GetPortfolioItem(c.Request.Context(), id)
			if err != nil {
				return domain.PortfolioItem{}, err
			}
			if item == nil {
				return domain.PortfolioItem{}, ez.NotFound(resp.MsgItemNotFound)
			}
			return *item, nil
		},
	})

	ez.RegisterAction(e, ez.Action[kindURI, []domain.PortfolioItem]{
		Method:  http.MethodGet,
		Path:    "/portfolio/:type",
		Binder:  ez.BindURI,
		FailMsg: resp.MsgFetchItems,
		Handler: func(c *gin.Context, in *kindURI) ([]domain.PortfolioItem, error) {
			k, err := domain.ParseKind(in.Type)
			if err != nil {
				return nil, ez.BadRequest(resp.MsgInvalidPortfolioType)
			}
			items, err := h.store.ListPortfolioByKind(c.Request.Context(), k)
			return nonNil(items), err
		},
	})
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
