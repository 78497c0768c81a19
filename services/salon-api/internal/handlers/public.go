package handlers

import (
	"net/http"

	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/catalog"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/sitecfg"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/staff"
)

// PublicHandler serves the read-only reference data the booking site renders.
type PublicHandler struct {
	catalog  *catalog.Store
	staff    *staff.Directory
	settings *sitecfg.Store
}

func NewPublicHandler(catalogStore *catalog.Store, staffDir *staff.Directory, settingsStore *sitecfg.Store) *PublicHandler {
	return &PublicHandler{
		catalog:  catalogStore,
		staff:    staffDir,
		settings: settingsStore,
	}
}

// Services lists active catalog entries plus their categories.
func (h *PublicHandler) Services(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	ctx := r.Context()
	writeJSON(w, http.StatusOK, map[string]any{
		"services":   h.catalog.ActiveServices(ctx),
		"categories": h.catalog.ListCategories(ctx),
	})
}

// Professionals lists staff currently marked available, regardless of which
// services they perform.
func (h *PublicHandler) Professionals(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"professionals": h.staff.ListAvailable(r.Context()),
	})
}

func (h *PublicHandler) Settings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, h.settings.Get(r.Context()))
}
