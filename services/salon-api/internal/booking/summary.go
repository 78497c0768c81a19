package booking

import (
	"fmt"
	"strings"

	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/whatsapp"
)

// OrderSummary renders the human-readable booking summary handed to the
// salon's WhatsApp number after checkout. Professional, day and time lines
// are only present when the client actually chose them.
func OrderSummary(appointments []model.Appointment, services []model.Service, professionals []model.Professional, salonName string) string {
	if len(appointments) == 0 {
		return ""
	}
	first := appointments[0]
	serviceByID := make(map[string]model.Service, len(services))
	for _, svc := range services {
		serviceByID[svc.ID] = svc
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🌟 Novo agendamento - %s\n", salonName)
	fmt.Fprintf(&b, "Pedido: #%s\n", orderNumber(first.ID))
	fmt.Fprintf(&b, "Cliente: %s (%s)\n", first.ClientName, first.ClientPhone)
	if first.Professional.Assigned() {
		fmt.Fprintf(&b, "Profissional: %s\n", professionalName(professionals, first.Professional.ID()))
	}
	if first.Day.Scheduled() {
		fmt.Fprintf(&b, "Data: %s\n", first.Day.String())
	}
	if first.Time.Chosen() {
		fmt.Fprintf(&b, "Horário: %s\n", first.Time.String())
	}
	b.WriteString("Serviços:\n")
	total := 0
	for _, appt := range appointments {
		svc, ok := serviceByID[appt.ServiceID]
		if !ok {
			b.WriteString("- (removido)\n")
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", svc.Name, whatsapp.FormatPrice(svc.Price))
		total += svc.Price
	}
	fmt.Fprintf(&b, "Total: %s", whatsapp.FormatPrice(total))
	return b.String()
}

func orderNumber(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

func professionalName(professionals []model.Professional, id string) string {
	for _, p := range professionals {
		if p.ID == id {
			return p.Name
		}
	}
	return "(indefinido)"
}
