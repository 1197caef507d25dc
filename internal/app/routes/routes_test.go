package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/otabek/juniorhub/internal/app/admin"
	"github.com/otabek/juniorhub/internal/app/controllers"
	"github.com/otabek/juniorhub/internal/app/models"
	"github.com/otabek/juniorhub/internal/app/repositories"
	"github.com/otabek/juniorhub/internal/app/repositories/repositorytest"
	"github.com/otabek/juniorhub/internal/app/services"
	"github.com/otabek/juniorhub/internal/middleware"
	"github.com/otabek/juniorhub/internal/pkg/auth"
)

type testEnv struct {
	router     *gin.Engine
	months     *repositorytest.MonthRepo
	heroes     *repositorytest.HeroRepo
	mentors    *repositorytest.MentorRepo
	directions *repositorytest.DirectionRepo
	news       *repositorytest.NewsRepo
	users      *repositorytest.UserRepo
	jwtService *auth.JWTService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		months:     repositorytest.NewMonthRepo(),
		heroes:     repositorytest.NewHeroRepo(),
		mentors:    repositorytest.NewMentorRepo(),
		directions: repositorytest.NewDirectionRepo(),
		news:       repositorytest.NewNewsRepo(),
		users:      repositorytest.NewUserRepo(),
	}
	env.jwtService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "juniorhub.test",
	})

	repos := &repositories.Repositories{
		Months:     env.months,
		Directions: env.directions,
		Mentors:    env.mentors,
		News:       env.news,
		Heroes:     env.heroes,
		Users:      env.users,
	}
	svcs := services.New(repos, repositorytest.NewImageStorage(), env.jwtService)
	registry := admin.NewRegistry()

	cfg := func(name string) admin.EntityConfig {
		c, ok := registry.Get(name)
		if !ok {
			t.Fatalf("missing admin configuration for %q", name)
		}
		return c
	}

	env.router = gin.New()
	SetupRouter(env.router, Controllers{
		Index:      controllers.NewIndexController(),
		Months:     controllers.NewMonthController(svcs.Months, cfg("months")),
		Heroes:     controllers.NewHeroController(svcs.Heroes, cfg("heroes")),
		Mentors:    controllers.NewMentorController(svcs.Mentors, cfg("mentors")),
		Directions: controllers.NewDirectionController(svcs.Directions, cfg("directions")),
		News:       controllers.NewNewsController(svcs.News, cfg("news")),
		Auth:       controllers.NewAuthController(svcs.Auth),
		Admin:      controllers.NewAdminController(registry),
	}, middleware.NewAuthMiddleware(env.jwtService))

	return env
}

func (env *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	token, _, err := env.jwtService.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestPublicAPI_WriteMethodGets405(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/months", "", map[string]any{"name": "x"})
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}

	body := decodeBody(t, w)
	errObj := body["error"].(map[string]any)
	if errObj["code"] != "REQ_001" {
		t.Errorf("expected error code REQ_001, got %v", errObj["code"])
	}
}

func TestPublicAPI_UnknownRouteGets404(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/unknown", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestPublicAPI_RootListsCollections(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	for _, key := range []string{"months", "heroes", "mentors", "directions", "news"} {
		if _, ok := body[key]; !ok {
			t.Errorf("root link list missing %q", key)
		}
	}
}

func TestPublicMonths_PaginationEnvelope(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	env.months.Create(ctx, &models.Month{Name: "January 2025", IsActive: true})
	env.months.Create(ctx, &models.Month{Name: "February 2025"})

	w := env.request(t, http.MethodGet, "/api/months?page=2&size=1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	pagination := body["pagination"].(map[string]any)
	if pagination["currentPage"].(float64) != 2 {
		t.Errorf("expected currentPage 2, got %v", pagination["currentPage"])
	}
	if pagination["totalItems"].(float64) != 2 {
		t.Errorf("inactive months are still listed publicly, expected totalItems 2, got %v", pagination["totalItems"])
	}
	if items := body["items"].([]any); len(items) != 1 {
		t.Errorf("expected 1 item on a size-1 page, got %d", len(items))
	}
}

func TestPublicNews_InactiveHidden(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	draft := &models.News{Title: "Draft", Content: "x", IsActive: false}
	env.news.Create(ctx, draft)

	w := env.request(t, http.MethodGet, "/api/news", "", nil)
	body := decodeBody(t, w)
	pagination := body["pagination"].(map[string]any)
	if pagination["totalItems"].(float64) != 0 {
		t.Errorf("inactive news must not be listed publicly, got %v items", pagination["totalItems"])
	}

	w = env.request(t, http.MethodGet, "/api/news/1", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("inactive news detail should 404 publicly, got %d", w.Code)
	}
}

func TestPublicHeroes_TypeFilter(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	env.months.Create(ctx, &models.Month{Name: "March 2025", IsActive: true})
	env.heroes.Create(ctx, &models.MonthHero{MonthID: 1, UserID: 1, Type: models.HeroTypeStudent, IsActive: true})
	env.heroes.Create(ctx, &models.MonthHero{MonthID: 1, UserID: 2, Type: models.HeroTypeTeacher, IsActive: true})

	w := env.request(t, http.MethodGet, "/api/heroes?type=teacher", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if items := body["items"].([]any); len(items) != 1 {
		t.Errorf("expected only the teacher hero, got %d items", len(items))
	}

	w = env.request(t, http.MethodGet, "/api/heroes?type=trainer", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown hero type, got %d", w.Code)
	}
}

func TestPublicMonths_UnsupportedFacetGets400(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/months?type=student", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("months have no type facet, expected 400, got %d", w.Code)
	}
}

func TestPublicAPI_InvalidIDGets400(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/months/abc", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a non-numeric id, got %d", w.Code)
	}
}

func TestAdminAPI_RequiresToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/admin/months", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}

	w = env.request(t, http.MethodGet, "/api/admin/months", "not-a-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with a garbage token, got %d", w.Code)
	}
}

func TestAdminAPI_ExpiredTokenDistinguished(t *testing.T) {
	env := setupTestEnv(t)

	backdated := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: -time.Minute,
		TokenIssuer: "juniorhub.test",
	})
	token, _, err := backdated.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	w := env.request(t, http.MethodGet, "/api/admin/months", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for an expired token, got %d", w.Code)
	}

	body := decodeBody(t, w)
	errObj := body["error"].(map[string]any)
	if errObj["code"] != "AUTH_003" {
		t.Errorf("an expired token must be reported as expired, got code %v", errObj["code"])
	}
}

func TestAdminLogin_IssuesToken(t *testing.T) {
	env := setupTestEnv(t)

	hashed, err := auth.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	env.users.Create(context.Background(), &models.User{Username: "admin", Password: hashed, IsStaff: true})

	w := env.request(t, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "admin",
		"password": "s3cret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a token in the response")
	}

	w = env.request(t, http.MethodGet, "/api/admin/months", token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("issued token should open the admin surface, got %d", w.Code)
	}
}

func TestAdminMonths_CreateAndConflict(t *testing.T) {
	env := setupTestEnv(t)
	token := env.adminToken(t)

	w := env.request(t, http.MethodPost, "/api/admin/months", token, map[string]any{"name": "January 2025"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["is_active"] != false {
		t.Error("a created month should default to inactive")
	}

	w = env.request(t, http.MethodPost, "/api/admin/months", token, map[string]any{"name": "January 2025"})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for a duplicate name, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminMonths_ValidationError(t *testing.T) {
	env := setupTestEnv(t)
	token := env.adminToken(t)

	w := env.request(t, http.MethodPost, "/api/admin/months", token, map[string]any{"description": "no name"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing name, got %d", w.Code)
	}

	body := decodeBody(t, w)
	errObj := body["error"].(map[string]any)
	if errObj["field"] != "name" {
		t.Errorf("expected the offending field to be reported, got %v", errObj["field"])
	}
}

func TestAdminBulk_UnsupportedActionGets400(t *testing.T) {
	env := setupTestEnv(t)
	token := env.adminToken(t)

	w := env.request(t, http.MethodPost, "/api/admin/months/bulk", token, map[string]any{
		"ids":    []int64{1},
		"action": "duplicate",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("months do not support duplicate, expected 400, got %d", w.Code)
	}
}

func TestAdminBulk_ReportsMatched(t *testing.T) {
	env := setupTestEnv(t)
	token := env.adminToken(t)
	ctx := context.Background()

	env.news.Create(ctx, &models.News{Title: "A", Content: "x", IsActive: true})
	env.news.Create(ctx, &models.News{Title: "B", Content: "y", IsActive: true})

	w := env.request(t, http.MethodPost, "/api/admin/news/bulk", token, map[string]any{
		"ids":    []int64{1, 2, 99},
		"action": "deactivate",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["matched"].(float64) != 2 {
		t.Errorf("expected 2 matched rows, got %v", body["matched"])
	}
}

func TestAdminList_UnsupportedFacetGets400(t *testing.T) {
	env := setupTestEnv(t)
	token := env.adminToken(t)

	w := env.request(t, http.MethodGet, "/api/admin/months?type=student", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("months have no type facet, expected 400, got %d", w.Code)
	}
}

func TestAdminSchema_ListsEntities(t *testing.T) {
	env := setupTestEnv(t)
	token := env.adminToken(t)

	w := env.request(t, http.MethodGet, "/api/admin/schema", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if len(body) != 5 {
		t.Errorf("expected 5 configured entities, got %d", len(body))
	}
	heroes := body["heroes"].(map[string]any)
	actions := heroes["bulk_actions"].([]any)
	if len(actions) != 4 {
		t.Errorf("heroes should expose 4 bulk actions, got %v", actions)
	}
}
