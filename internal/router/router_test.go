package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/digitalhub/internal/application"
	"github.com/oksasatya/digitalhub/internal/container"
	"github.com/oksasatya/digitalhub/pkg/helpers"
)

func TestRoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	container.SetLogger(helpers.NewDiscardLogger())
	container.SetStore(application.NewStore(application.Deps{}))

	engine := gin.New()
	reg := NewRegistry(engine)
	InitModules(reg)
	reg.RegisterAll()

	want := map[string]bool{
		"GET /api/session":            false,
		"POST /api/login":             false,
		"GET /api/startups/featured":  false,
		"PUT /api/startups/:id":       false,
		"POST /api/events/:id/join":   false,
		"POST /api/events/:id/leave":  false,
		"DELETE /api/discussions/:id": false,
		"POST /api/images":            false,
		"GET /api/dashboard":          false,
		"GET /api/debug/vars":         false,
	}
	for _, r := range engine.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for k, found := range want {
		if !found {
			t.Errorf("route %s not registered", k)
		}
	}
}

func TestDashboardRequiresAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	container.SetLogger(helpers.NewDiscardLogger())
	container.SetStore(application.NewStore(application.Deps{}))

	engine := gin.New()
	reg := NewRegistry(engine)
	InitModules(reg)
	reg.RegisterAll()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

type pingModule struct{}

func (pingModule) Register(api *gin.RouterGroup) {
	api.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("tag")) })
}

func TestRegistryMountsOnceUnderAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	reg := NewRegistry(engine)
	reg.Use(func(c *gin.Context) { c.Set("tag", "api") })
	reg.Add(pingModule{})
	reg.RegisterAll()
	reg.RegisterAll()

	if n := len(engine.Routes()); n != 1 {
		t.Fatalf("expected 1 route, got %d", n)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if w.Code != http.StatusOK || w.Body.String() != "api" {
		t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
	}
}
