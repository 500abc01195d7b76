package domain

import (
	"context"
	"errors"
)

// ErrDuplicate reports a unique constraint violation, e.g. a taken username.
var ErrDuplicate = errors.New("duplicate")

// Lookups return (nil, nil) when the record does not exist.
// Create methods ignore the ID of their argument and return the stored
// record with its assigned ID.

type PortfolioRepository interface {
	ListPortfolio(ctx context.Context) ([]PortfolioItem, error)
	ListPortfolioByKind(ctx context.Context, k Kind) ([]PortfolioItem, error)
	GetPortfolioItem(ctx context.Context, id int) (*PortfolioItem, error)
	CreatePortfolioItem(ctx context.Context, in PortfolioItem) (PortfolioItem, error)
}

type SkillRepository interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	ListSkillsByKind(ctx context.Context, k Kind) ([]Skill, error)
	CreateSkill(ctx context.Context, in Skill) (Skill, error)
}

type UserRepository interface {
	GetUser(ctx context.Context, id int) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	// CreateUser returns ErrDuplicate when the username is taken.
	CreateUser(ctx context.Context, in User) (User, error)
}

type ContactRepository interface {
	CreateContactMessage(ctx context.Context, in ContactMessage) (ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]ContactMessage, error)
}

// Store is the full data access surface used by the servers.
type Store interface {
	PortfolioRepository
	SkillRepository
	UserRepository
	ContactRepository
}
