package repo

import (
	"context"
	"sync"

	"artist-portfolio/internal/domain"
)

// table is one id-keyed collection. Counter increment and insert happen
// under the same lock so concurrent creates never share an id.
type table[T any] struct {
	mu     sync.RWMutex
	nextID int
	rows   map[int]T
	order  []int
	clone  func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{nextID: 1, rows: make(map[int]T), clone: clone}
}

func (t *table[T]) insert(build func(id int) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	v := build(id)
	t.rows[id] = t.clone(v)
	t.order = append(t.order, id)
	return t.clone(v)
}

func (t *table[T]) get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		return v, false
	}
	return t.clone(v), true
}

// filter returns matching rows in insertion order; keep == nil keeps all.
func (t *table[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		v := t.rows[id]
		if keep == nil || keep(v) {
			out = append(out, t.clone(v))
		}
	}
	return out
}

// MemStore keeps every table in process memory. Nothing is persisted.
type MemStore struct {
	users     *table[domain.User]
	portfolio *table[domain.PortfolioItem]
	skills    *table[domain.Skill]
	messages  *table[domain.ContactMessage]

	// guards username uniqueness across lookup + insert
	userMu sync.Mutex
}

var _ domain.Store = (*MemStore)(nil)

// NewMemStore returns an empty store. Use NewSeededMemStore for the
// sample data set.
func NewMemStore() *MemStore {
	return &MemStore{
		users:     newTable[domain.User](nil),
		portfolio: newTable(domain.PortfolioItem.Clone),
		skills:    newTable[domain.Skill](nil),
		messages:  newTable[domain.ContactMessage](nil),
	}
}

// NewSeededMemStore returns a store holding the sample portfolio and skills.
func NewSeededMemStore() *MemStore {
	s := NewMemStore()
	// MemStore writes cannot fail.
	_ = Seed(context.Background(), s)
	return s
}

func (s *MemStore) ListPortfolio(_ context.Context) ([]domain.PortfolioItem, error) {
	return s.portfolio.filter(nil), nil
}

func (s *MemStore) ListPortfolioByKind(_ context.Context, k domain.Kind) ([]domain.PortfolioItem, error) {
	return s.portfolio.filter(func(p domain.PortfolioItem) bool { return p.Type == k }), nil
}

func (s *MemStore) GetPortfolioItem(_ context.Context, id int) (*domain.PortfolioItem, error) {
	p, ok := s.portfolio.get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *MemStore) CreatePortfolioItem(_ context.Context, in domain.PortfolioItem) (domain.PortfolioItem, error) {
	return s.portfolio.insert(func(id int) domain.PortfolioItem {
		in.ID = id
		return in
	}), nil
}

func (s *MemStore) ListSkills(_ context.Context) ([]domain.Skill, error) {
	return s.skills.filter(nil), nil
}

func (s *MemStore) ListSkillsByKind(_ context.Context, k domain.Kind) ([]domain.Skill, error) {
	return s.skills.filter(func(sk domain.Skill) bool { return sk.Type == k }), nil
}

func (s *MemStore) CreateSkill(_ context.Context, in domain.Skill) (domain.Skill, error) {
	return s.skills.insert(func(id int) domain.Skill {
		in.ID = id
		return in
	}), nil
}

func (s *MemStore) GetUser(_ context.Context, id int) (*domain.User, error) {
	u, ok := s.users.get(id)
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *MemStore) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	found := s.users.filter(func(u domain.User) bool { return u.Username == username })
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (s *MemStore) CreateUser(ctx context.Context, in domain.User) (domain.User, error) {
	s.userMu.Lock()
	defer s.userMu.Unlock()
	if u, _ := s.GetUserByUsername(ctx, in.Username); u != nil {
		return domain.User{}, domain.ErrDuplicate
	}
	return s.users.insert(func(id int) domain.User {
		in.ID = id
		return in
	}), nil
}

func (s *MemStore) CreateContactMessage(_ context.Context, in domain.ContactMessage) (domain.ContactMessage, error) {
	return s.messages.insert(func(id int) domain.ContactMessage {
		in.ID = id
		return in
	}), nil
}

func (s *MemStore) ListContactMessages(_ context.Context) ([]domain.ContactMessage, error) {
	return s.messages.filter(nil), nil
}
