package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adviceworks/casedesk/clients"
)

// ListEnvelope is the wire shape of the paged client list: a status flag and
// the page of records. Consumers treat the records opaquely.
type ListEnvelope struct {
	Status bool             `json:"status"`
	Data   []clients.Record `json:"data"`
	Total  int              `json:"total"`
}

type clientHandler struct {
	store           clients.Store
	log             *zap.Logger
	defaultPageSize int
}

func (h *clientHandler) list(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "page_size", h.defaultPageSize)

	records, total, err := h.store.List(r.Context(), page, pageSize)
	if err != nil {
		h.log.Error("list clients failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ListEnvelope{Status: false, Data: []clients.Record{}})
		return
	}
	writeJSON(w, http.StatusOK, ListEnvelope{Status: true, Data: records, Total: total})
}

func (h *clientHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	rec, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *clientHandler) create(w http.ResponseWriter, r *http.Request) {
	var rec clients.Record
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_BODY", err.Error())
		return
	}
	created, err := h.store.Create(r.Context(), rec)
	if err != nil {
		writeStoreError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *clientHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var rec clients.Record
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_BODY", err.Error())
		return
	}
	rec.ID = id
	updated, err := h.store.Update(r.Context(), rec)
	if err != nil {
		writeStoreError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *clientHandler) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		writeStoreError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeStoreError(w http.ResponseWriter, log *zap.Logger, err error) {
	var notFound clients.NotFoundError
	var invalid clients.ValidationError
	switch {
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, "INVALID", err.Error())
	default:
		log.Error("store error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"error": message, "code": code})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "invalid client id: "+raw)
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
