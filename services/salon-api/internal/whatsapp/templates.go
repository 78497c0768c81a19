package whatsapp

import (
	"fmt"
	"strings"
)

const reminderTemplate = "Olá, {name}! 😊 Passando para lembrar do seu agendamento de {service} amanhã, dia {date}, às {time}, aqui na {salon}. Qualquer imprevisto é só avisar. Até lá!"

// ReminderMessage fills the reminder template for a confirmed appointment
// happening tomorrow.
func ReminderMessage(clientName, date, timeOfDay, serviceName, salonName string) string {
	r := strings.NewReplacer(
		"{name}", clientName,
		"{date}", date,
		"{time}", timeOfDay,
		"{service}", serviceName,
		"{salon}", salonName,
	)
	return r.Replace(reminderTemplate)
}

// FormatPrice renders an integer amount in reais, e.g. 120 -> "R$ 120,00".
func FormatPrice(amount int) string {
	return fmt.Sprintf("R$ %d,00", amount)
}
