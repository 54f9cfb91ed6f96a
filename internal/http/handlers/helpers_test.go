package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/rogerio-castellano/resto-dashboard/internal/auth"
	"github.com/rogerio-castellano/resto-dashboard/internal/dashboard"
	httpapi "github.com/rogerio-castellano/resto-dashboard/internal/http"
	handler "github.com/rogerio-castellano/resto-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/resto-dashboard/internal/mail"
	"github.com/rogerio-castellano/resto-dashboard/internal/repo"
)

var (
	orderRepo     *repo.InMemoryOrderRepository
	inventoryRepo *repo.InMemoryInventoryRepository
	userRepo      *repo.InMemoryUserRepository
)

// setupRouter wires fresh in-memory repositories behind the real router.
func setupRouter() http.Handler {
	httpapi.CleanupAllVisitors()

	orderRepo = repo.NewInMemoryOrderRepository()
	inventoryRepo = repo.NewInMemoryInventoryRepository()
	userRepo = repo.NewInMemoryUserRepository()

	handler.SetDashboardLoader(dashboard.NewLoader(orderRepo, inventoryRepo))
	handler.SetInventoryRepo(inventoryRepo)
	handler.SetUserRepo(userRepo)
	handler.SetIdentityProvider(auth.NewLocalProvider(userRepo, mail.LogMailer{}, "http://localhost:8080"))
	handler.SetTokenStore(auth.NewInMemoryTokenStore())

	return httpapi.NewRouter()
}

func getJSON(r http.Handler, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r http.Handler, url string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
