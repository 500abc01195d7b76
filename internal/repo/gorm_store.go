package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"artist-portfolio/internal/domain"
)

// GormStore keeps the tables in a SQL database through gorm.
type GormStore struct{ db *gorm.DB }

var _ domain.Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

// Migrate creates or updates every table the store uses.
func (s *GormStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&domain.User{},
		&domain.PortfolioItem{},
		&domain.Skill{},
		&domain.ContactMessage{},
	)
}

// SeedIfEmpty writes the sample data only when no portfolio rows exist.
func (s *GormStore) SeedIfEmpty(ctx context.Context) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&domain.PortfolioItem{}).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count portfolio: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return Seed(ctx, NewGormStore(tx))
	})
	return err == nil, err
}

func (s *GormStore) ListPortfolio(ctx context.Context) ([]domain.PortfolioItem, error) {
	var out []domain.PortfolioItem
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (s *GormStore) ListPortfolioByKind(ctx context.Context, k domain.Kind) ([]domain.PortfolioItem, error) {
	var out []domain.PortfolioItem
	err := s.db.WithContext(ctx).Where("type = ?", string(k)).Order("id").Find(&out).Error
	return out, err
}

func (s *GormStore) GetPortfolioItem(ctx context.Context, id int) (*domain.PortfolioItem, error) {
	var p domain.PortfolioItem
	err := s.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) CreatePortfolioItem(ctx context.Context, in domain.PortfolioItem) (domain.PortfolioItem, error) {
	in.ID = 0
	err := s.db.WithContext(ctx).Create(&in).Error
	return in, err
}

func (s *GormStore) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	var out []domain.Skill
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (s *GormStore) ListSkillsByKind(ctx context.Context, k domain.Kind) ([]domain.Skill, error) {
	var out []domain.Skill
	err := s.db.WithContext(ctx).Where("type = ?", string(k)).Order("id").Find(&out).Error
	return out, err
}

func (s *GormStore) CreateSkill(ctx context.Context, in domain.Skill) (domain.Skill, error) {
	in.ID = 0
	err := s.db.WithContext(ctx).Create(&in).Error
	return in, err
}

func (s *GormStore) GetUser(ctx context.Context, id int) (*domain.User, error) {
	var u domain.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) CreateUser(ctx context.Context, in domain.User) (domain.User, error) {
	in.ID = 0
	if err := s.db.WithContext(ctx).Create(&in).Error; err != nil {
		if isDupKey(err) {
			return domain.User{}, domain.ErrDuplicate
		}
		return domain.User{}, err
	}
	return in, nil
}

func (s *GormStore) CreateContactMessage(ctx context.Context, in domain.ContactMessage) (domain.ContactMessage, error) {
	in.ID = 0
	err := s.db.WithContext(ctx).Create(&in).Error
	return in, err
}

func (s *GormStore) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	var out []domain.ContactMessage
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

// isDupKey matches on the message so it works without gorm's TranslateError.
func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
