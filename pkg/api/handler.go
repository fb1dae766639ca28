package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hazyhaar/barlaman-registry/pkg/alerts"
	"github.com/hazyhaar/barlaman-registry/pkg/kit"
)

// NewRouter returns an http.Handler with all Barlaman API routes.
func NewRouter(svc *Service) http.Handler {
	mux := http.NewServeMux()
	h := &handler{
		search:  searchEndpoint(svc),
		resolve: resolveEndpoint(svc),
		history: historyEndpoint(svc),
		svc:     svc,
	}

	mux.HandleFunc("GET /v1/search", h.handleSearch)
	mux.HandleFunc("GET /v1/resolve/{speaker}", h.handleResolve)
	mux.HandleFunc("GET /v1/mps", h.handleListMPs)
	mux.HandleFunc("GET /v1/mps/{id}", h.handleMP)
	mux.HandleFunc("GET /v1/mps/{id}/history", h.handleHistory)
	mux.HandleFunc("GET /v1/subscriptions", h.handleListSubscriptions)
	mux.HandleFunc("POST /v1/subscriptions", h.handleAddSubscription)
	mux.HandleFunc("DELETE /v1/subscriptions/{id}", h.handleRemoveSubscription)
	mux.HandleFunc("GET /v1/alerts", h.handleAlerts)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(mux)
}

type handler struct {
	search  kit.Endpoint
	resolve kit.Endpoint
	history kit.Endpoint
	svc     *Service
}

// --- search ---

func (h *handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	resp, err := h.search(r.Context(), &searchReq{Query: q})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- speaker resolution ---

func (h *handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	speaker := r.PathValue("speaker")
	if speaker == "" {
		writeError(w, http.StatusBadRequest, "missing speaker")
		return
	}

	resp, err := h.resolve(r.Context(), &resolveReq{Speaker: speaker})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- roster ---

func (h *handler) handleListMPs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"mps": h.svc.Store.Roster()})
}

func (h *handler) handleMP(w http.ResponseWriter, r *http.Request) {
	mp, ok := h.svc.Store.MPByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "mp not found")
		return
	}
	writeJSON(w, http.StatusOK, mp)
}

func (h *handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := h.history(r.Context(), &historyReq{MPID: r.PathValue("id")})
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- subscriptions ---

type addSubscriptionRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Email string `json:"email,omitempty"`
}

func (h *handler) handleAddSubscription(w http.ResponseWriter, r *http.Request) {
	if h.svc.Subs == nil {
		writeError(w, http.StatusServiceUnavailable, "subscription store not configured")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, 16*1024)
	var req addSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	switch req.Type {
	case alerts.TypeKeyword, alerts.TypeSpeaker, alerts.TypeMP:
	default:
		writeError(w, http.StatusBadRequest, "type must be keyword, speaker or mp")
		return
	}
	if strings.TrimSpace(req.Value) == "" {
		writeError(w, http.StatusBadRequest, "value is empty")
		return
	}

	sub, err := h.svc.Subs.Add(req.Type, req.Value, req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (h *handler) handleListSubscriptions(w http.ResponseWriter, r *http.Request) {
	if h.svc.Subs == nil {
		writeError(w, http.StatusServiceUnavailable, "subscription store not configured")
		return
	}
	subs, err := h.svc.Subs.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"subscriptions": subs})
}

func (h *handler) handleRemoveSubscription(w http.ResponseWriter, r *http.Request) {
	if h.svc.Subs == nil {
		writeError(w, http.StatusServiceUnavailable, "subscription store not configured")
		return
	}
	if err := h.svc.Subs.Remove(r.PathValue("id")); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- alerts ---

func (h *handler) handleAlerts(w http.ResponseWriter, r *http.Request) {
	if h.svc.Subs == nil {
		writeError(w, http.StatusServiceUnavailable, "subscription store not configured")
		return
	}
	subs, err := h.svc.Subs.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	generated := alerts.Generate(subs, h.svc.Store.Sessions())
	writeJSON(w, http.StatusOK, map[string]any{"alerts": generated})
}

// --- health ---

type healthResponse struct {
	Status   string `json:"status"`
	MPs      int    `json:"mps"`
	Sessions int    `json:"sessions"`
	Segments int    `json:"segments"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	mps, sessions, segments := h.svc.Store.Counts()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		MPs:      mps,
		Sessions: sessions,
		Segments: segments,
	})
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
