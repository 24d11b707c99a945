package handler

import (
	"net/http"

	"medkit/internal/auth"
)

type MeHandler struct{}

func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	key, _ := auth.AccountKeyFromContext(r.Context())
	writeJSON(w, map[string]any{
		"email": key,
	})
}
