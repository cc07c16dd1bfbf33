package handlers

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/catalog"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/storage"
)

// Spinner is the engine operation the API exposes. Defined here so handler
// tests can substitute a mock engine.
type Spinner interface {
	Spin(ctx context.Context, req models.SpinRequest) (*models.SpinResult, error)
}

// StatsReader provides machine counter snapshots.
type StatsReader interface {
	Snapshot(machineID string) models.MachineStats
}

// ApiHandler holds the application's handler dependencies: the machine
// catalog, the spin engine, the read-side store, and the stats tracker.
type ApiHandler struct {
	Catalog *catalog.Catalog
	Engine  Spinner
	Store   storage.ApiStore
	Stats   StatsReader
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(cat *catalog.Catalog, engine Spinner, store storage.ApiStore, stats StatsReader) *ApiHandler {
	return &ApiHandler{
		Catalog: cat,
		Engine:  engine,
		Store:   store,
		Stats:   stats,
	}
}

// Mount attaches all routes to the router.
func (h *ApiHandler) Mount(r chi.Router) {
	r.Get("/machines", h.ListMachines)
	r.Get("/machines/{machineId}/stats", h.GetMachineStats)
	r.Post("/spins", h.ExecuteSpin)
	r.Get("/users/{userId}/wallets", h.ListWallets)
	r.Get("/users/{userId}/spins", h.ListSpins)
}
