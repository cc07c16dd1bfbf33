package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/api"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/mapping"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/slots"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/storage"
)

// ExecuteSpin handles the logic for executing one spin.
func (h *ApiHandler) ExecuteSpin(w http.ResponseWriter, r *http.Request) {
	// Decode the request body.
	var newSpin api.NewSpin
	if err := json.NewDecoder(r.Body).Decode(&newSpin); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	// Map the API request to our internal domain model and run the spin.
	result, err := h.Engine.Spin(r.Context(), mapping.ToDomainSpinRequest(&newSpin))
	if err != nil {
		writeSpinError(w, err)
		return
	}

	// Map the domain model response back to the API model and respond.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiSpinResult(result)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// writeSpinError maps engine errors to HTTP statuses. Every rejection is
// user-facing and left the wallet, stats, and history untouched.
func writeSpinError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, slots.ErrMachineNotFound):
		http.Error(w, "Machine not found", http.StatusNotFound)
	case errors.Is(err, slots.ErrMachineInactive):
		http.Error(w, "Machine is inactive", http.StatusConflict)
	case errors.Is(err, slots.ErrBetOutOfRange), errors.Is(err, slots.ErrInvalidCurrency):
		http.Error(w, fmt.Sprintf("Invalid spin request: %v", err), http.StatusBadRequest)
	case errors.Is(err, storage.ErrInsufficientFunds):
		http.Error(w, "Insufficient funds", http.StatusUnprocessableEntity)
	default:
		http.Error(w, fmt.Sprintf("Failed to execute spin: %v", err), http.StatusInternalServerError)
	}
}

// ListSpins handles the logic for retrieving a user's spin history.
func (h *ApiHandler) ListSpins(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	limit := int32(20)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = int32(parsed)
	}

	records, err := h.Store.ListSpins(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve spin history: %v", err), http.StatusInternalServerError)
		return
	}

	apiRecords := make([]*api.SpinRecord, len(records))
	for i, rec := range records {
		apiRecords[i] = mapping.ToApiSpinRecord(&rec)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiRecords); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
