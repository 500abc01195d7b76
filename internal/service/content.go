package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"artist-portfolio/internal/domain"
)

var ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")

// Content validates writes before they reach the store. The store itself
// accepts anything.
type Content struct {
	store domain.Store
	now   func() time.Time
}

func NewContent(s domain.Store) *Content {
	return &Content{store: s, now: time.Now}
}

type NewPortfolioItem struct {
	Title        string
	Description  string
	Type         string
	Category     string
	ImageURL     string
	MediaURL     *string
	Technologies []string
	ProjectURL   *string
}

func (s *Content) CreatePortfolioItem(ctx context.Context, in NewPortfolioItem) (domain.PortfolioItem, error) {
	k, err := domain.ParseKind(in.Type)
	if err != nil {
		return domain.PortfolioItem{}, err
	}
	if !domain.ValidCategory(k, in.Category) {
		return domain.PortfolioItem{}, fmt.Errorf("%w: %q is not a %s category", domain.ErrInvalidCategory, in.Category, k)
	}
	return s.store.CreatePortfolioItem(ctx, domain.PortfolioItem{
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Type:         k,
		Category:     in.Category,
		ImageURL:     in.ImageURL,
		MediaURL:     blankToNil(in.MediaURL),
		Technologies: in.Technologies,
		ProjectURL:   blankToNil(in.ProjectURL),
	})
}

func (s *Content) CreateSkill(ctx context.Context, name, kind string, percentage int) (domain.Skill, error) {
	k, err := domain.ParseKind(kind)
	if err != nil {
		return domain.Skill{}, err
	}
	if percentage < 0 || percentage > 100 {
		return domain.Skill{}, ErrInvalidPercentage
	}
	return s.store.CreateSkill(ctx, domain.Skill{Name: strings.TrimSpace(name), Type: k, Percentage: percentage})
}

type NewContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func (s *Content) SubmitContact(ctx context.Context, in NewContactMessage) (domain.ContactMessage, error) {
	return s.store.CreateContactMessage(ctx, domain.ContactMessage{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: s.now().UTC(),
	})
}

func (s *Content) ContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.store.ListContactMessages(ctx)
}

func blankToNil(p *string) *string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil
	}
	return p
}
