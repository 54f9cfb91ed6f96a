package handlers

import (
	"github.com/rogerio-castellano/resto-dashboard/internal/auth"
	"github.com/rogerio-castellano/resto-dashboard/internal/dashboard"
	"github.com/rogerio-castellano/resto-dashboard/internal/repo"
)

var (
	dashboardLoader *dashboard.Loader
	inventoryRepo   repo.InventoryRepository
	userRepo        repo.UserRepository
	identity        auth.IdentityProvider
	tokenStore      auth.TokenStore
)

func SetDashboardLoader(l *dashboard.Loader) {
	dashboardLoader = l
}

func SetInventoryRepo(r repo.InventoryRepository) {
	inventoryRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetIdentityProvider(p auth.IdentityProvider) {
	identity = p
}

func SetTokenStore(s auth.TokenStore) {
	tokenStore = s
}
