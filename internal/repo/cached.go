package repo

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"artist-portfolio/internal/core/cache"
	"artist-portfolio/internal/domain"
)

// Cache namespaces. List keys are <ns>:<view>:<generation>, view being
// "all" or a kind.
const (
	nsPortfolio = "portfolio"
	nsSkills    = "skills"
	viewAll     = "all"
)

func listKey(ns, view string, gen int64) string { return fmt.Sprintf("%s:%s:%d", ns, view, gen) }

// Cached serves the list reads from redis and passes everything else to
// the wrapped store. A create bumps the entity's generation, so a list
// load that started before it can only write to a key nobody reads.
type Cached struct {
	domain.Store
	c   *cache.Cache
	ttl time.Duration
	log *zap.Logger
}

func NewCached(s domain.Store, c *cache.Cache, ttl time.Duration, l *zap.Logger) *Cached {
	if l == nil {
		l = zap.NewNop()
	}
	return &Cached{Store: s, c: c, ttl: ttl, log: l}
}

func cachedList[T any](s *Cached, ctx context.Context, ns, view string, load func(context.Context) ([]T, error)) ([]T, error) {
	var (
		out []T
		err error
	)
	gen, gerr := s.c.Generation(ctx, ns)
	if gerr != nil {
		s.log.Debug("cache bypassed", zap.String("ns", ns), zap.Error(gerr))
		out, err = load(ctx)
	} else {
		out, err = cache.GetOrLoadJSON(ctx, s.c, listKey(ns, view, gen), s.ttl, load)
	}
	if err != nil {
		return nil, err
	}
	if out == nil {
		return []T{}, nil
	}
	return out, nil
}

func (s *Cached) ListPortfolio(ctx context.Context) ([]domain.PortfolioItem, error) {
	return cachedList(s, ctx, nsPortfolio, viewAll, s.Store.ListPortfolio)
}

func (s *Cached) ListPortfolioByKind(ctx context.Context, k domain.Kind) ([]domain.PortfolioItem, error) {
	return cachedList(s, ctx, nsPortfolio, string(k), func(ctx context.Context) ([]domain.PortfolioItem, error) {
		return s.Store.ListPortfolioByKind(ctx, k)
	})
}

func (s *Cached) CreatePortfolioItem(ctx context.Context, in domain.PortfolioItem) (domain.PortfolioItem, error) {
	out, err := s.Store.CreatePortfolioItem(ctx, in)
	if err != nil {
		return out, err
	}
	s.bump(ctx, nsPortfolio)
	return out, nil
}

func (s *Cached) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return cachedList(s, ctx, nsSkills, viewAll, s.Store.ListSkills)
}

func (s *Cached) ListSkillsByKind(ctx context.Context, k domain.Kind) ([]domain.Skill, error) {
	return cachedList(s, ctx, nsSkills, string(k), func(ctx context.Context) ([]domain.Skill, error) {
		return s.Store.ListSkillsByKind(ctx, k)
	})
}

func (s *Cached) CreateSkill(ctx context.Context, in domain.Skill) (domain.Skill, error) {
	out, err := s.Store.CreateSkill(ctx, in)
	if err != nil {
		return out, err
	}
	s.bump(ctx, nsSkills)
	return out, nil
}

// bump moves ns to a new generation and drops the previous generation's
// list keys; anything written to them later expires with the TTL.
func (s *Cached) bump(ctx context.Context, ns string) {
	gen, err := s.c.Bump(ctx, ns)
	if err != nil {
		s.log.Warn("cache generation bump failed", zap.String("ns", ns), zap.Error(err))
		return
	}
	old := []string{listKey(ns, viewAll, gen-1)}
	for _, k := range domain.Kinds {
		old = append(old, listKey(ns, string(k), gen-1))
	}
	if err := s.c.Invalidate(ctx, old...); err != nil {
		s.log.Warn("cache invalidate failed", zap.Strings("keys", old), zap.Error(err))
	}
}
