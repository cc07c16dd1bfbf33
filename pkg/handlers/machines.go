package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/api"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/mapping"
)

// ListMachines handles the logic for listing the machine catalog.
func (h *ApiHandler) ListMachines(w http.ResponseWriter, r *http.Request) {
	machines := h.Catalog.List()

	apiMachines := make([]*api.Machine, len(machines))
	for i, m := range machines {
		apiMachines[i] = mapping.ToApiMachine(m)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiMachines); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetMachineStats handles the logic for retrieving a machine's aggregate counters.
func (h *ApiHandler) GetMachineStats(w http.ResponseWriter, r *http.Request) {
	machineID := chi.URLParam(r, "machineId")
	if _, ok := h.Catalog.Get(machineID); !ok {
		http.Error(w, fmt.Sprintf("Machine %s not found", machineID), http.StatusNotFound)
		return
	}

	snapshot := h.Stats.Snapshot(machineID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiMachineStats(snapshot)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
