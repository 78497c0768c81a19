package booking

import (
	"strings"
	"time"

	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
)

// Step is the stage the composer is currently on.
type Step string

const (
	StepSelection Step = "selection"
	StepCheckout  Step = "checkout"
	StepSuccess   Step = "success"
)

// Composer accumulates a multi-service cart plus optional professional, day
// and time, and turns the whole selection into appointment rows on submit.
// It is not safe for concurrent use; the registry serializes access per
// session.
type Composer struct {
	step         Step
	cart         []model.Service
	professional model.ProfessionalRef
	day          model.DayRef
	timeOfDay    model.TimeRef
	clientName   string
	clientPhone  string
}

func NewComposer() *Composer {
	return &Composer{
		step:         StepSelection,
		professional: model.AnyProfessional(),
		day:          model.Unscheduled(),
		timeOfDay:    model.NoTime(),
	}
}

func (c *Composer) Step() Step { return c.step }

// Cart returns the selected services in selection order.
func (c *Composer) Cart() []model.Service {
	out := make([]model.Service, len(c.cart))
	copy(out, c.cart)
	return out
}

// ToggleService adds the service to the cart when absent and removes it when
// present. Membership is keyed by service id, so toggling twice restores the
// original cart.
func (c *Composer) ToggleService(svc model.Service) {
	for i, got := range c.cart {
		if got.ID == svc.ID {
			c.cart = append(c.cart[:i], c.cart[i+1:]...)
			return
		}
	}
	c.cart = append(c.cart, svc)
}

// SyncExternalSelection overwrites the cart to match an externally supplied
// id set whenever its membership differs from the current cart. Membership
// is a set of distinct ids: repeated ids collapse to one cart entry, and ids
// with no matching catalog entry are dropped.
func (c *Composer) SyncExternalSelection(ids []string, catalog []model.Service) {
	if sameMembership(ids, c.cart) {
		return
	}
	byID := make(map[string]model.Service, len(catalog))
	for _, svc := range catalog {
		byID[svc.ID] = svc
	}
	seen := make(map[string]bool, len(ids))
	next := make([]model.Service, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if svc, ok := byID[id]; ok {
			next = append(next, svc)
		}
	}
	c.cart = next
}

func sameMembership(ids []string, cart []model.Service) bool {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	if len(want) != len(cart) {
		return false
	}
	for _, svc := range cart {
		if !want[svc.ID] {
			return false
		}
	}
	return true
}

func (c *Composer) SetProfessional(ref model.ProfessionalRef) { c.professional = ref }
func (c *Composer) SetDay(ref model.DayRef)                   { c.day = ref }
func (c *Composer) SetTime(ref model.TimeRef)                 { c.timeOfDay = ref }

func (c *Composer) Professional() model.ProfessionalRef { return c.professional }
func (c *Composer) Day() model.DayRef                   { return c.day }
func (c *Composer) Time() model.TimeRef                 { return c.timeOfDay }

// AdvanceToCheckout moves Selection -> Checkout. An empty cart is not
// blocked; checkout then shows zero line items and a zero total.
func (c *Composer) AdvanceToCheckout() {
	if c.step == StepSelection {
		c.step = StepCheckout
	}
}

// Total sums the cart prices in integer minor units.
func (c *Composer) Total() int {
	total := 0
	for _, svc := range c.cart {
		total += svc.Price
	}
	return total
}

// Submit fans the cart out into one pending appointment per selected
// service. All rows share client, professional, day and time; each row gets
// its own id from newID. Returns nil when the cart, name or phone is empty,
// leaving the composer on Checkout.
func (c *Composer) Submit(clientName, clientPhone string, now time.Time, newID func() string) []model.Appointment {
	clientName = strings.TrimSpace(clientName)
	clientPhone = strings.TrimSpace(clientPhone)
	if len(c.cart) == 0 || clientName == "" || clientPhone == "" {
		return nil
	}
	c.clientName = clientName
	c.clientPhone = clientPhone
	appointments := make([]model.Appointment, 0, len(c.cart))
	for _, svc := range c.cart {
		appointments = append(appointments, model.Appointment{
			ID:           newID(),
			ClientName:   clientName,
			ClientPhone:  clientPhone,
			ServiceID:    svc.ID,
			Professional: c.professional,
			Day:          c.day,
			Time:         c.timeOfDay,
			Status:       model.StatusPending,
			ReminderSent: false,
			CreatedAt:    now,
		})
	}
	c.step = StepSuccess
	return appointments
}

// Reset clears everything and returns to Selection.
func (c *Composer) Reset() {
	*c = *NewComposer()
}
