package sitecfg

import "github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"

func Defaults() model.SiteSettings {
	return model.SiteSettings{
		SalonName:             "Glow Beauty Studio",
		Logo:                  "✨",
		HeroTitle:             "Realce sua Beleza Natural",
		HeroSubtitle:          "Agende seu momento de cuidado com os melhores profissionais da região.",
		HeroImage:             "https://images.unsplash.com/photo-1560066984-138dadb4c035?auto=format&fit=crop&q=80&w=1200",
		ServicesTitle:         "Serviços Exclusivos",
		ServicesSubtitle:      "Oferecemos o que há de melhor em tratamentos de beleza, com produtos premium e técnicas modernas.",
		ProfessionalsTitle:    "Nossa Equipe",
		ProfessionalsSubtitle: "Especialistas apaixonados por elevar sua autoestima e realçar sua beleza única.",
		AboutTitle:            "Conforto e Estilo em cada detalhe",
		AboutText:             "Focamos na sua experiência completa, desde o café até o resultado final. Nossa missão é elevar sua autoestima.",
		AboutImage:            "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?auto=format&fit=crop&q=80&w=800",
		WhatsAppNumber:        "5511999999999",
		Address:               "Rua das Flores, 123 - Centro, São Paulo",
		OpeningHours: map[string]string{
			"Segunda - Sexta": "09:00 - 19:00",
			"Sábado":          "09:00 - 17:00",
			"Domingo":         "Fechado",
		},
		PrimaryColor: "rose-500",
		AccentColor:  "rose-100",
	}
}
