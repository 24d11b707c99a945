package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medkit/internal/auth"
	"medkit/internal/health"
	"medkit/internal/store"
)

// RecordsHandler serves the three tenant collections. Every POST body is
// the full desired collection; the store replaces it wholesale.
type RecordsHandler struct {
	Store *store.Store
}

func (h *RecordsHandler) GetMedications(w http.ResponseWriter, r *http.Request) {
	key, _ := auth.AccountKeyFromContext(r.Context())
	writeJSON(w, h.Store.Medications(key))
}

func (h *RecordsHandler) SaveMedications(w http.ResponseWriter, r *http.Request) {
	key, _ := auth.AccountKeyFromContext(r.Context())

	var meds []health.Medication
	if err := json.NewDecoder(r.Body).Decode(&meds); err != nil {
		writeDecodeError(w, err)
		return
	}
	if err := h.Store.ReplaceMedications(key, meds); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, map[string]string{"status": "success"})
}

func (h *RecordsHandler) GetAdherence(w http.ResponseWriter, r *http.Request) {
	key, _ := auth.AccountKeyFromContext(r.Context())
	writeJSON(w, h.Store.Adherence(key))
}

func (h *RecordsHandler) SaveAdherence(w http.ResponseWriter, r *http.Request) {
	key, _ := auth.AccountKeyFromContext(r.Context())

	var recs []health.AdherenceRecord
	if err := json.NewDecoder(r.Body).Decode(&recs); err != nil {
		writeDecodeError(w, err)
		return
	}
	if err := h.Store.ReplaceAdherence(key, recs); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, map[string]string{"status": "success"})
}

func (h *RecordsHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	key, _ := auth.AccountKeyFromContext(r.Context())
	writeJSON(w, h.Store.Logs(key))
}

func (h *RecordsHandler) SaveLogs(w http.ResponseWriter, r *http.Request) {
	key, _ := auth.AccountKeyFromContext(r.Context())

	var logs []health.HealthLog
	if err := json.NewDecoder(r.Body).Decode(&logs); err != nil {
		writeDecodeError(w, err)
		return
	}
	if err := h.Store.ReplaceLogs(key, logs); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, map[string]string{"status": "success"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeDecodeError keeps type mismatches informative: the client learns
// which field held the wrong primitive, same as a schema violation.
func writeDecodeError(w http.ResponseWriter, err error) {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		http.Error(w, "schema violation at "+te.Field+": expected "+te.Type.String(), http.StatusBadRequest)
		return
	}
	http.Error(w, "bad json", http.StatusBadRequest)
}

func writeStoreError(w http.ResponseWriter, err error) {
	var se *health.SchemaError
	if errors.As(err, &se) {
		http.Error(w, se.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "server error", http.StatusInternalServerError)
}
