package handler

import (
	"encoding/json"
	"net/http"

	"medkit/internal/auth"
	"medkit/internal/health"
	"medkit/internal/store"
)

type ProfileHandler struct {
	Store *store.Store
}

// GetProfile returns the stored profile, or null if the account never
// saved one.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	key, _ := auth.AccountKeyFromContext(r.Context())
	writeJSON(w, h.Store.Profile(key))
}

func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	key, _ := auth.AccountKeyFromContext(r.Context())

	var p health.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeDecodeError(w, err)
		return
	}
	if err := h.Store.ReplaceProfile(key, p); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, map[string]string{"status": "success"})
}
