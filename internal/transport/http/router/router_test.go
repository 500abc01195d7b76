package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"artist-portfolio/internal/core/auth"
	"artist-portfolio/internal/domain"
	"artist-portfolio/internal/repo"
	"artist-portfolio/internal/service"
)

func init() { gin.SetMode(gin.TestMode) }

func newAPI(t *testing.T, store domain.Store, o Options) *gin.Engine {
	t.Helper()
	return NewAPIEngine(zap.NewNop(), store, service.NewContent(store), o)
}

func do(r http.Handler, method, target, body string, hdr ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["message"]
}

func TestSeededCounts(t *testing.T) {
	r := newAPI(t, repo.NewSeededMemStore(), Options{})

	w := do(r, http.MethodGet, "/api/portfolio", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.PortfolioItem](t, w), 9)

	w = do(r, http.MethodGet, "/api/skills", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Skill](t, w), 9)

	for _, k := range domain.Kinds {
		w = do(r, http.MethodGet, "/api/skills/"+string(k), "")
		require.Equal(t, http.StatusOK, w.Code)
		skills := decode[[]domain.Skill](t, w)
		assert.Len(t, skills, 3)
		for _, s := range skills {
			assert.Equal(t, k, s.Type)
		}
	}
}

func TestPortfolioPartitionByType(t *testing.T) {
	r := newAPI(t, repo.NewSeededMemStore(), Options{})
	all := decode[[]domain.PortfolioItem](t, do(r, http.MethodGet, "/api/portfolio", ""))

	seen := map[int]bool{}
	for _, k := range domain.Kinds {
		w := do(r, http.MethodGet, "/api/portfolio/"+string(k), "")
		require.Equal(t, http.StatusOK, w.Code)
		items := decode[[]domain.PortfolioItem](t, w)
		assert.Len(t, items, 3)
		for _, it := range items {
			assert.Equal(t, k, it.Type)
			assert.False(t, seen[it.ID], "id %d listed twice", it.ID)
			seen[it.ID] = true
		}
	}
	assert.Len(t, seen, len(all))
	for _, it := range all {
		assert.True(t, seen[it.ID])
	}
}

func TestEmptyKindEncodesAsArray(t *testing.T) {
	r := newAPI(t, repo.NewMemStore(), Options{})
	w := do(r, http.MethodGet, "/api/portfolio/audio", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetItemIsIdempotent(t *testing.T) {
	r := newAPI(t, repo.NewSeededMemStore(), Options{})
	first := do(r, http.MethodGet, "/api/portfolio/item/1", "")
	require.Equal(t, http.StatusOK, first.Code)
	second := do(r, http.MethodGet, "/api/portfolio/item/1", "")
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, decode[domain.PortfolioItem](t, first).ID)
}

func TestClientErrors(t *testing.T) {
	r := newAPI(t, repo.NewSeededMemStore(), Options{})
	cases := []struct {
		path   string
		status int
		msg    string
	}{
		{"/api/portfolio/abc", http.StatusBadRequest, "Invalid portfolio type"},
		{"/api/portfolio/AUDIO", http.StatusBadRequest, "Invalid portfolio type"},
		{"/api/portfolio/item/abc", http.StatusBadRequest, "Invalid ID"},
		{"/api/portfolio/item/12abc", http.StatusBadRequest, "Invalid ID"},
		{"/api/portfolio/item/999999", http.StatusNotFound, "Portfolio item not found"},
		{"/api/skills/abc", http.StatusBadRequest, "Invalid skill type"},
		{"/api/nope", http.StatusNotFound, "Not found"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := do(r, http.MethodGet, tc.path, "")
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.msg, message(t, w))
		})
	}
}

func TestCreatedItemIsServed(t *testing.T) {
	store := repo.NewSeededMemStore()
	r := newAPI(t, store, Options{})
	media := "https://example.com/a.mp3"
	in := domain.PortfolioItem{
		Title:        "New Track",
		Description:  "d",
		Type:         domain.KindAudio,
		Category:     "music",
		ImageURL:     "https://example.com/a.jpg",
		MediaURL:     &media,
		Technologies: []string{"Ableton"},
	}
	created, err := store.CreatePortfolioItem(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)

	got := decode[domain.PortfolioItem](t, do(r, http.MethodGet, "/api/portfolio/item/10", ""))
	in.ID = created.ID
	assert.Equal(t, in, got)
	assert.Len(t, decode[[]domain.PortfolioItem](t, do(r, http.MethodGet, "/api/portfolio/audio", "")), 4)
}

type brokenStore struct {
	domain.Store
	panics bool
}

func (b brokenStore) ListPortfolio(context.Context) ([]domain.PortfolioItem, error) {
	if b.panics {
		panic("boom")
	}
	return nil, errors.New("connection refused")
}

func (b brokenStore) GetPortfolioItem(context.Context, int) (*domain.PortfolioItem, error) {
	return nil, errors.New("connection refused")
}

func (b brokenStore) ListSkillsByKind(context.Context, domain.Kind) ([]domain.Skill, error) {
	return nil, errors.New("connection refused")
}

func TestStoreFailuresBecomeGeneric500(t *testing.T) {
	r := newAPI(t, brokenStore{}, Options{})

	w := do(r, http.MethodGet, "/api/portfolio", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch portfolio items", message(t, w))

	w = do(r, http.MethodGet, "/api/portfolio/item/1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch portfolio item", message(t, w))

	w = do(r, http.MethodGet, "/api/skills/visual", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch skills", message(t, w))
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestPanicBecomesGeneric500(t *testing.T) {
	r := newAPI(t, brokenStore{panics: true}, Options{})
	w := do(r, http.MethodGet, "/api/portfolio", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", message(t, w))
}

func TestContact(t *testing.T) {
	store := repo.NewMemStore()
	r := newAPI(t, store, Options{})

	w := do(r, http.MethodPost, "/api/contact", `{"name":"Bo","email":"bo@example.com","subject":"Hello","message":"Loved the show"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	m := decode[domain.ContactMessage](t, w)
	assert.Equal(t, 1, m.ID)
	assert.False(t, m.CreatedAt.IsZero())

	cases := []struct{ body, msg string }{
		{`{"name":"B","email":"bo@example.com","subject":"Hello","message":"Loved the show"}`, "Name must be at least 2 characters"},
		{`{"name":"Bo","email":"nope","subject":"Hello","message":"Loved the show"}`, "Please enter a valid email address"},
		{`{"name":"Bo","email":"bo@example.com","subject":"Hi","message":"Loved the show"}`, "Subject must be at least 5 characters"},
		{`{"name":"Bo","email":"bo@example.com","subject":"Hello","message":"short"}`, "Message must be at least 10 characters"},
		{`{"email":"bo@example.com","subject":"Hello","message":"Loved the show"}`, "Name is required"},
		{`not json`, "Invalid request body"},
	}
	for _, tc := range cases {
		w := do(r, http.MethodPost, "/api/contact", tc.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.body)
		assert.Equal(t, tc.msg, message(t, w), tc.body)
	}

	msgs, err := store.ListContactMessages(context.Background())
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestHealthAndMetrics(t *testing.T) {
	r := newAPI(t, repo.NewMemStore(), Options{})
	w := do(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":1}`, w.Body.String())

	w = do(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestSPAFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))
	r := newAPI(t, repo.NewMemStore(), Options{StaticDir: dir})

	w := do(r, http.MethodGet, "/app.js", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	w = do(r, http.MethodGet, "/projects/audio", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "app")

	w = do(r, http.MethodGet, "/../../etc/passwd", "")
	assert.NotContains(t, w.Body.String(), "root:")

	w = do(r, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", message(t, w))
}

func TestRegistryOrdersByPriority(t *testing.T) {
	var order []string
	var reg Registry
	reg.Register(
		mountFunc{name: "late", order: &order},
		mountFunc{name: "early", prio: 1, order: &order},
		struct{}{},
	)
	reg.MountAPI(gin.New().Group("/"))
	assert.Equal(t, []string{"early", "late"}, order)
}

type mountFunc struct {
	name  string
	prio  int
	order *[]string
}

func (m mountFunc) MountAPI(*gin.RouterGroup) { *m.order = append(*m.order, m.name) }

func (m mountFunc) Priority() int {
	if m.prio == 0 {
		return 100
	}
	return m.prio
}

func newAdmin(t *testing.T, store domain.Store) *gin.Engine {
	t.Helper()
	j := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}
	a := service.NewAdminAuth(store, j, nil)
	_, err := a.Bootstrap(context.Background(), "admin", "changeme")
	require.NoError(t, err)
	return NewAdminEngine(zap.NewNop(), a, service.NewContent(store), j, Options{})
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	w := do(r, http.MethodPost, "/admin/v1/auth/login", `{"username":"admin","password":"changeme"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode[struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}](t, w)
	require.NotEmpty(t, out.Token)
	assert.NotContains(t, w.Body.String(), "password")
	return out.Token
}

func TestAdminLogin(t *testing.T) {
	r := newAdmin(t, repo.NewMemStore())

	w := do(r, http.MethodPost, "/admin/v1/auth/login", `{"username":"admin","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid username or password", message(t, w))

	tok := login(t, r)
	w = do(r, http.MethodGet, "/admin/v1/me", "", "Authorization", "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", decode[domain.User](t, w).Username)

	w = do(r, http.MethodGet, "/admin/v1/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = do(r, http.MethodGet, "/admin/v1/me", "", "Authorization", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminCreatesAreVisibleOnPublicAPI(t *testing.T) {
	store := repo.NewSeededMemStore()
	admin := newAdmin(t, store)
	api := newAPI(t, store, Options{})
	bearer := "Bearer " + login(t, admin)

	w := do(admin, http.MethodPost, "/admin/v1/portfolio",
		`{"title":"Glass","description":"Installation","type":"visual","category":"digital-art","imageUrl":"https://example.com/g.jpg","technologies":["TouchDesigner"]}`,
		"Authorization", bearer)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	item := decode[domain.PortfolioItem](t, w)
	assert.Equal(t, 10, item.ID)

	got := decode[domain.PortfolioItem](t, do(api, http.MethodGet, "/api/portfolio/item/10", ""))
	assert.Equal(t, item, got)

	w = do(admin, http.MethodPost, "/admin/v1/portfolio",
		`{"title":"Glass","description":"x","type":"visual","category":"music","imageUrl":"https://example.com/g.jpg"}`,
		"Authorization", bearer)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid category for type visual", message(t, w))

	w = do(admin, http.MethodPost, "/admin/v1/portfolio",
		`{"title":"Glass","description":"x","type":"sculpture","category":"music","imageUrl":"https://example.com/g.jpg"}`,
		"Authorization", bearer)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid portfolio type", message(t, w))

	w = do(admin, http.MethodPost, "/admin/v1/skills", `{"name":"Synthesis","type":"audio","percentage":70}`, "Authorization", bearer)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, decode[[]domain.Skill](t, do(api, http.MethodGet, "/api/skills/audio", "")), 4)

	w = do(admin, http.MethodPost, "/admin/v1/skills", `{"name":"Synthesis","type":"audio","percentage":170}`, "Authorization", bearer)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Percentage must be between 0 and 100", message(t, w))

	w = do(admin, http.MethodPost, "/admin/v1/skills", `{"name":"Synthesis","type":"audio","percentage":70}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminListsMessages(t *testing.T) {
	store := repo.NewMemStore()
	admin := newAdmin(t, store)
	api := newAPI(t, store, Options{})
	bearer := "Bearer " + login(t, admin)

	w := do(admin, http.MethodGet, "/admin/v1/messages", "", "Authorization", bearer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(api, http.MethodPost, "/api/contact", `{"name":"Bo","email":"bo@example.com","subject":"Hello","message":"Loved the show"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(admin, http.MethodGet, "/admin/v1/messages", "", "Authorization", bearer)
	require.Equal(t, http.StatusOK, w.Code)
	msgs := decode[[]domain.ContactMessage](t, w)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Hello", msgs[0].Subject)
}
