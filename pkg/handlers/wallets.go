package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/api"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/mapping"
)

// ListWallets handles the logic for retrieving a user's balances, one per currency.
func (h *ApiHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	wallets, err := h.Store.ListWallets(r.Context(), userID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve wallets: %v", err), http.StatusInternalServerError)
		return
	}

	apiWallets := make([]*api.Wallet, len(wallets))
	for i, wallet := range wallets {
		apiWallets[i] = mapping.ToApiWallet(&wallet)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiWallets); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
