package model

import "time"

// Service is a bookable catalog entry. Price is in minor currency units.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Duration    int    `json:"duration"`
	CategoryID  string `json:"category_id"`
	IsActive    bool   `json:"is_active"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Professional is a staff member. Services holds the ids of catalog entries
// the professional performs; dangling ids are tolerated and rendered as absent.
// IsActive doubles as the available/absent toggle.
type Professional struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Avatar   string   `json:"avatar"`
	Bio      string   `json:"bio"`
	Services []string `json:"services"`
	IsActive bool     `json:"is_active"`
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Appointment is one ledger row. A multi-service checkout produces one row per
// service sharing client, professional, day and time but carrying distinct ids.
type Appointment struct {
	ID           string          `json:"id"`
	ClientName   string          `json:"client_name"`
	ClientPhone  string          `json:"client_phone"`
	ServiceID    string          `json:"service_id"`
	Professional ProfessionalRef `json:"professional_id"`
	Day          DayRef          `json:"date"`
	Time         TimeRef         `json:"time"`
	Status       Status          `json:"status"`
	ReminderSent bool            `json:"reminder_sent"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SiteSettings is the editable site content plus the salon's outbound contact
// number. Only a few fields matter to the booking core; the rest round-trip
// through the settings store untouched.
type SiteSettings struct {
	SalonName             string            `json:"salon_name"`
	Logo                  string            `json:"logo"`
	HeroTitle             string            `json:"hero_title"`
	HeroSubtitle          string            `json:"hero_subtitle"`
	HeroImage             string            `json:"hero_image"`
	ServicesTitle         string            `json:"services_title"`
	ServicesSubtitle      string            `json:"services_subtitle"`
	ProfessionalsTitle    string            `json:"professionals_title"`
	ProfessionalsSubtitle string            `json:"professionals_subtitle"`
	AboutTitle            string            `json:"about_title"`
	AboutText             string            `json:"about_text"`
	AboutImage            string            `json:"about_image"`
	WhatsAppNumber        string            `json:"whatsapp_number"`
	Address               string            `json:"address"`
	OpeningHours          map[string]string `json:"opening_hours"`
	PrimaryColor          string            `json:"primary_color"`
	AccentColor           string            `json:"accent_color"`
}
