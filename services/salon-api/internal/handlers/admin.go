package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/calendar"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/catalog"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/console"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/ledger"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/outbox"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/reminder"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/sitecfg"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/staff"
)

// AdminHandler is the scheduling console: calendar and list views over the
// ledger, status transitions, reminders, and reference-data management.
type AdminHandler struct {
	ledger     *ledger.Repository
	outbox     *outbox.Repository
	catalog    *catalog.Store
	staff      *staff.Directory
	settings   *sitecfg.Store
	dispatcher *reminder.Dispatcher
	logger     *slog.Logger
}

func NewAdminHandler(
	ledgerRepo *ledger.Repository,
	outboxRepo *outbox.Repository,
	catalogStore *catalog.Store,
	staffDir *staff.Directory,
	settingsStore *sitecfg.Store,
	dispatcher *reminder.Dispatcher,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		ledger:     ledgerRepo,
		outbox:     outboxRepo,
		catalog:    catalogStore,
		staff:      staffDir,
		settings:   settingsStore,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// listAppointments never fails the view: like the reference-data stores, a
// read failure degrades to an empty ledger rather than blocking rendering.
func (h *AdminHandler) listAppointments(ctx context.Context) []model.Appointment {
	appointments, err := h.ledger.List(ctx)
	if err != nil {
		h.logger.Warn("ledger read failed; rendering empty ledger", "err", err)
		return nil
	}
	return appointments
}

func professionalFilter(r *http.Request) string {
	id := r.URL.Query().Get("professional")
	if id == "" {
		return console.FilterAll
	}
	return id
}

// Appointments returns the flat list view, newest first, optionally
// narrowed to one professional.
func (h *AdminHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	appointments := console.FilterByProfessional(h.listAppointments(r.Context()), professionalFilter(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"appointments": console.RecentFirst(appointments),
	})
}

// scheduleRef resolves the date the schedule view centers on. A ref=YYYY-MM-DD
// param names the reference date directly; otherwise year/month pick a month
// absolutely, defaulting to the current one. A non-zero delta then steps the
// reference by view granularity (month, week or day).
func scheduleRef(r *http.Request, now time.Time) time.Time {
	q := r.URL.Query()
	ref, err := time.ParseInLocation("2006-01-02", q.Get("ref"), time.Local)
	if err != nil {
		year, month := now.Year(), int(now.Month())
		if v, e := strconv.Atoi(q.Get("year")); e == nil {
			year = v
		}
		if v, e := strconv.Atoi(q.Get("month")); e == nil && v >= 1 && v <= 12 {
			month = v
		}
		ref = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	}
	if delta, e := strconv.Atoi(q.Get("delta")); e == nil && delta != 0 {
		ref = calendar.Navigate(ref, scheduleGranularity(q.Get("view")), delta)
	}
	return ref
}

func scheduleGranularity(v string) calendar.Granularity {
	switch g := calendar.Granularity(v); g {
	case calendar.GranularityWeek, calendar.GranularityDay:
		return g
	default:
		return calendar.GranularityMonth
	}
}

// Schedule renders one month as a 7-column grid with the day's appointments
// attached to each cell by literal date-string match. The month shown is the
// one containing the resolved reference date, which the response echoes back
// so the client can chain further navigation steps off it.
func (h *AdminHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	now := time.Now()
	ref := scheduleRef(r, now)
	grid := calendar.MonthGrid(ref, now)

	appointments := console.FilterByProfessional(h.listAppointments(r.Context()), professionalFilter(r))

	byDay := make(map[string][]model.Appointment)
	for _, cell := range grid.Cells {
		if day := console.AppointmentsForDay(appointments, cell.Date); len(day) > 0 {
			byDay[cell.Date] = day
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ref":          ref.Format("2006-01-02"),
		"grid":         grid,
		"appointments": byDay,
	})
}

// SetStatus rewrites one row's status. Any target status is accepted; only
// the value itself is validated. The change and its event commit together.
func (h *AdminHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		ID     string       `json:"id"`
		Status model.Status `json:"status"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" || !req.Status.Valid() {
		http.Error(w, "id and a valid status are required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.ledger.Begin(ctx)
	if err != nil {
		http.Error(w, "failed to start transaction", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.ledger.SetStatus(ctx, tx, req.ID, req.Status); err != nil {
		if ledger.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		h.logger.Error("status update failed", "err", err, "appointment_id", req.ID)
		http.Error(w, "failed to update status", http.StatusInternalServerError)
		return
	}
	payload, _ := json.Marshal(map[string]string{
		"appointment_id": req.ID,
		"status":         string(req.Status),
	})
	if err := h.outbox.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   req.ID,
		EventType:     outbox.EventStatusChanged,
		Payload:       payload,
	}); err != nil {
		http.Error(w, "failed to record event", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": req.ID, "status": string(req.Status)})
}

func (h *AdminHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	ctx := r.Context()
	tx, err := h.ledger.Begin(ctx)
	if err != nil {
		http.Error(w, "failed to start transaction", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.ledger.Delete(ctx, tx, req.ID); err != nil {
		if ledger.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete appointment", http.StatusInternalServerError)
		return
	}
	payload, _ := json.Marshal(map[string]string{"appointment_id": req.ID})
	if err := h.outbox.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   req.ID,
		EventType:     outbox.EventAppointmentDeleted,
		Payload:       payload,
	}); err != nil {
		http.Error(w, "failed to record event", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History searches past bookings by client name or phone fragment and
// status, ordered by day and time.
func (h *AdminHandler) History(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	status := model.Status(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		http.Error(w, "invalid status filter", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"appointments": console.History(h.listAppointments(r.Context()), console.HistoryQuery{
			Search: r.URL.Query().Get("search"),
			Status: status,
			Desc:   r.URL.Query().Get("order") == "desc",
		}),
	})
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	ctx := r.Context()
	appointments := h.listAppointments(ctx)
	due := reminder.Due(appointments, time.Now())
	writeJSON(w, http.StatusOK, console.Summarize(appointments, h.catalog.ListServices(ctx), len(due)))
}

// Sales returns the monthly sales report for one year: confirmed revenue
// and appointment counts per month, plus the years that have scheduled
// appointments at all. year defaults to the current year.
func (h *AdminHandler) Sales(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	ctx := r.Context()
	now := time.Now()
	year := now.Year()
	if v, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		year = v
	}
	appointments := h.listAppointments(ctx)
	writeJSON(w, http.StatusOK, map[string]any{
		"report": console.Sales(appointments, h.catalog.ListServices(ctx), year),
		"years":  console.SalesYears(appointments, now),
	})
}

// RemindersDue lists confirmed, not-yet-reminded appointments dated
// tomorrow. Nothing is persisted by reading this view.
func (h *AdminHandler) RemindersDue(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"appointments": reminder.Due(h.listAppointments(r.Context()), time.Now()),
	})
}

// SendReminder fires the reminder for one appointment and returns the wa.me
// link. Re-sending an already-reminded row is allowed.
func (h *AdminHandler) SendReminder(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	ctx := r.Context()
	appt, err := h.ledger.Get(ctx, req.ID)
	if err != nil {
		if ledger.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}

	serviceName := "(removido)"
	if svc, ok := findService(h.catalog.ListServices(ctx), appt.ServiceID); ok {
		serviceName = svc.Name
	}
	link, err := h.dispatcher.Send(ctx, appt, serviceName, h.settings.Get(ctx).SalonName)
	if err != nil {
		h.logger.Error("reminder send failed", "err", err, "appointment_id", appt.ID)
		http.Error(w, "failed to send reminder", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": appt.ID, "whatsapp_link": link})
}

// --- reference data management ---

func (h *AdminHandler) UpsertServices(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Services []model.Service `json:"services"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.catalog.UpsertServices(r.Context(), req.Services); err != nil {
		h.logger.Error("service upsert failed", "err", err)
		http.Error(w, "failed to save services", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.catalog.DeleteService(r.Context(), req.ID); err != nil {
		http.Error(w, "failed to delete service", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) UpsertCategories(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Categories []model.Category `json:"categories"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.catalog.UpsertCategories(r.Context(), req.Categories); err != nil {
		http.Error(w, "failed to save categories", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.catalog.DeleteCategory(r.Context(), req.ID); err != nil {
		http.Error(w, "failed to delete category", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) UpsertProfessionals(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Professionals []model.Professional `json:"professionals"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.staff.Upsert(r.Context(), req.Professionals); err != nil {
		http.Error(w, "failed to save professionals", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.staff.Delete(r.Context(), req.ID); err != nil {
		http.Error(w, "failed to delete professional", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var settings model.SiteSettings
	if !decodeJSON(w, r, &settings) {
		return
	}
	if err := h.settings.Upsert(r.Context(), settings); err != nil {
		http.Error(w, "failed to save settings", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
