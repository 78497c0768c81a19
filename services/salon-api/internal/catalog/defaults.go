package catalog

import "github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"

// Seed data served while the store is empty or unreachable. Mirrors the
// dataset the site launched with.

func DefaultServices() []model.Service {
	return []model.Service{
		{
			ID:          "1",
			Name:        "Corte Feminino",
			Description: "Corte moderno com lavagem inclusa",
			Price:       120,
			Duration:    60,
			CategoryID:  "cat1",
			IsActive:    true,
		},
		{
			ID:          "2",
			Name:        "Manicure",
			Description: "Cutilagem e esmaltação tradicional",
			Price:       45,
			Duration:    40,
			CategoryID:  "cat2",
			IsActive:    true,
		},
	}
}

func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: "cat1", Name: "Cabelo"},
		{ID: "cat2", Name: "Unhas"},
		{ID: "cat3", Name: "Maquiagem"},
	}
}
