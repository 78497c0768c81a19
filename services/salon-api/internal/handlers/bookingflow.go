package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/booking"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/catalog"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/sitecfg"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/staff"
)

const bookingCookie = "booking_session"

// BookingHandler drives the multi-step booking flow over HTTP. Each browsing
// session gets its own composer, keyed by an opaque cookie.
type BookingHandler struct {
	registry *booking.Registry
	service  *booking.Service
	catalog  *catalog.Store
	staff    *staff.Directory
	settings *sitecfg.Store
}

func NewBookingHandler(registry *booking.Registry, service *booking.Service, catalogStore *catalog.Store, staffDir *staff.Directory, settingsStore *sitecfg.Store) *BookingHandler {
	return &BookingHandler{
		registry: registry,
		service:  service,
		catalog:  catalogStore,
		staff:    staffDir,
		settings: settingsStore,
	}
}

type bookingState struct {
	Step           booking.Step    `json:"step"`
	Cart           []model.Service `json:"cart"`
	Total          int             `json:"total"`
	ProfessionalID string          `json:"professional_id"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
}

func stateOf(c *booking.Composer) bookingState {
	return bookingState{
		Step:           c.Step(),
		Cart:           c.Cart(),
		Total:          c.Total(),
		ProfessionalID: c.Professional().ID(),
		Date:           c.Day().String(),
		Time:           c.Time().String(),
	}
}

func (h *BookingHandler) composer(w http.ResponseWriter, r *http.Request) (string, *booking.Composer) {
	var token string
	if cookie, err := r.Cookie(bookingCookie); err == nil {
		token = cookie.Value
	}
	token, composer := h.registry.Get(token)
	http.SetCookie(w, &http.Cookie{
		Name:     bookingCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token, composer
}

func (h *BookingHandler) State(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	_, composer := h.composer(w, r)
	writeJSON(w, http.StatusOK, stateOf(composer))
}

// Toggle flips one service in and out of the cart.
func (h *BookingHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		ServiceID string `json:"service_id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	svc, ok := findService(h.catalog.ActiveServices(r.Context()), req.ServiceID)
	if !ok {
		http.Error(w, "service not found", http.StatusNotFound)
		return
	}
	_, composer := h.composer(w, r)
	composer.ToggleService(svc)
	writeJSON(w, http.StatusOK, stateOf(composer))
}

// Selection syncs the cart to an externally supplied id set, as used by the
// quick-book shortcut. Membership-equal sets leave the cart untouched.
func (h *BookingHandler) Selection(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		ServiceIDs []string `json:"service_ids"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	_, composer := h.composer(w, r)
	composer.SyncExternalSelection(req.ServiceIDs, h.catalog.ActiveServices(r.Context()))
	writeJSON(w, http.StatusOK, stateOf(composer))
}

// Details records the optional professional, day and time choices. Empty or
// sentinel values clear the field.
func (h *BookingHandler) Details(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		ProfessionalID string `json:"professional_id"`
		Date           string `json:"date"`
		Time           string `json:"time"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	_, composer := h.composer(w, r)
	composer.SetProfessional(model.ProfessionalID(req.ProfessionalID))
	composer.SetDay(model.Day(req.Date))
	composer.SetTime(model.TimeOfDay(req.Time))
	writeJSON(w, http.StatusOK, stateOf(composer))
}

func (h *BookingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	_, composer := h.composer(w, r)
	composer.AdvanceToCheckout()
	writeJSON(w, http.StatusOK, stateOf(composer))
}

// Submit fans the cart out into pending ledger rows and returns the wa.me
// deep link carrying the order summary for the client to open.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		ClientName  string `json:"client_name"`
		ClientPhone string `json:"client_phone"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	token, composer := h.composer(w, r)
	appointments := composer.Submit(req.ClientName, req.ClientPhone, time.Now().UTC(), uuid.NewString)
	if appointments == nil {
		http.Error(w, "cart, name and phone are required", http.StatusUnprocessableEntity)
		return
	}

	ctx := r.Context()
	result, err := h.service.Persist(ctx,
		appointments,
		h.catalog.ListServices(ctx),
		h.staff.List(ctx),
		h.settings.Get(ctx),
	)
	if err != nil {
		// the composer already moved to Success; the client retries from a
		// fresh session and the committed prefix stands
		http.Error(w, "failed to save booking", http.StatusInternalServerError)
		return
	}
	// the booking is done; retire the session so the next visit starts a
	// fresh cart instead of replaying Success
	h.registry.Drop(token)
	writeJSON(w, http.StatusCreated, map[string]any{
		"appointments":  result.Persisted,
		"whatsapp_link": result.Link,
		"state":         stateOf(composer),
	})
}

func (h *BookingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	_, composer := h.composer(w, r)
	composer.Reset()
	writeJSON(w, http.StatusOK, stateOf(composer))
}

func findService(services []model.Service, id string) (model.Service, bool) {
	for _, svc := range services {
		if svc.ID == id {
			return svc, true
		}
	}
	return model.Service{}, false
}
