package handlers

import (
	"net/http"

	"ridehub/internal/router"
	"ridehub/internal/store"
)

// RouteHandler exposes the role-gated routing decision to the shell. The
// router consults only the session store; the requested path is the caller's.
type RouteHandler struct {
	store *store.Store
}

func NewRouteHandler(st *store.Store) *RouteHandler {
	return &RouteHandler{store: st}
}

func (h *RouteHandler) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /routes/resolve", h.Resolve)
}

func (h *RouteHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	var decision router.Decision
	if user, ok := h.store.Auth.User(); ok {
		decision = router.Resolve(path, &user)
	} else {
		decision = router.Resolve(path, nil)
	}
	writeJSON(w, http.StatusOK, decision)
}
