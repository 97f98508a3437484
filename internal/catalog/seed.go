package catalog

import (
	"github.com/fitgirl/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Seed returns the shop's product line. Image paths are served from the
// static assets directory by the frontend.
func Seed() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Top Esportivo Rosa",
			Description: "Top esportivo de alta performance com tecido respirável e suporte médio. Ideal para treinos intensos e atividades de baixo impacto.",
			Price:       price("89.90"),
			Images:      []string{"/assets/Macaquinho-Fitness-sem-bolso.jpg", "/assets/Macaquinho-Fitness-sem-bolso2.jpg"},
			Colors: []domain.Color{
				{Name: "Rosa Vibrante", Value: "#E91E63"},
				{Name: "Roxo", Value: "#9C27B0"},
				{Name: "Preto", Value: "#000000"},
				{Name: "Coral", Value: "#FF7043"},
			},
			Sizes: []domain.Size{
				{Name: "PP", Available: true},
				{Name: "P", Available: true},
				{Name: "M", Available: true},
				{Name: "G", Available: true},
				{Name: "GG", Available: false},
			},
			Category: "Tops",
		},
		{
			ID:          "2",
			Name:        "Legging Premium Gradient",
			Description: "Legging de cintura alta com estampa gradient exclusiva. Tecido compressivo que modela o corpo e oferece máximo conforto.",
			Price:       price("129.90"),
			Images:      []string{"/assets/product-2.jpg", "/assets/product-2.jpg", "/assets/product-2.jpg"},
			Colors: []domain.Color{
				{Name: "Gradient Roxo", Value: "#673AB7"},
				{Name: "Gradient Rosa", Value: "#E91E63"},
				{Name: "Gradient Azul", Value: "#2196F3"},
			},
			Sizes: []domain.Size{
				{Name: "PP", Available: true},
				{Name: "P", Available: true},
				{Name: "M", Available: true},
				{Name: "G", Available: true},
				{Name: "GG", Available: true},
			},
			Category: "Leggings",
		},
		{
			ID:          "3",
			Name:        "Regata Fitness Coral",
			Description: "Regata cropped em tecido dry-fit com proteção UV. Corte moderno e feminino para máxima liberdade de movimento.",
			Price:       price("69.90"),
			Images:      []string{"/assets/product-3.jpg", "/assets/product-3.jpg", "/assets/product-3.jpg"},
			Colors: []domain.Color{
				{Name: "Coral", Value: "#FF7043"},
				{Name: "Rosa", Value: "#E91E63"},
				{Name: "Branco", Value: "#FFFFFF"},
			},
			Sizes: []domain.Size{
				{Name: "PP", Available: true},
				{Name: "P", Available: true},
				{Name: "M", Available: false},
				{Name: "G", Available: true},
				{Name: "GG", Available: true},
			},
			Category: "Regatas",
		},
		{
			ID:          "4",
			Name:        "Short Fitness Lavanda",
			Description: "Short de compressão em tecido premium com detalhes laterais. Perfeito para corrida e treinos funcionais.",
			Price:       price("79.90"),
			Images:      []string{"/assets/product-4.jpg", "/assets/product-4.jpg", "/assets/product-4.jpg"},
			Colors: []domain.Color{
				{Name: "Lavanda", Value: "#9C27B0"},
				{Name: "Rosa", Value: "#E91E63"},
				{Name: "Preto", Value: "#000000"},
			},
			Sizes: []domain.Size{
				{Name: "PP", Available: true},
				{Name: "P", Available: true},
				{Name: "M", Available: true},
				{Name: "G", Available: true},
				{Name: "GG", Available: false},
			},
			Category: "Shorts",
		},
		{
			ID:          "5",
			Name:        "Jaqueta Gradient Pro",
			Description: "Jaqueta esportiva com zíper e capuz. Tecido resistente ao vento com forro interno macio e bolsos funcionais.",
			Price:       price("189.90"),
			Images:      []string{"/assets/product-5.jpg", "/assets/product-5.jpg", "/assets/product-5.jpg"},
			Colors: []domain.Color{
				{Name: "Gradient Pink", Value: "#E91E63"},
				{Name: "Gradient Purple", Value: "#9C27B0"},
				{Name: "Gradient Blue", Value: "#2196F3"},
			},
			Sizes: []domain.Size{
				{Name: "PP", Available: false},
				{Name: "P", Available: true},
				{Name: "M", Available: true},
				{Name: "G", Available: true},
				{Name: "GG", Available: true},
			},
			Category: "Jaquetas",
		},
		{
			ID:          "6",
			Name:        "Conjunto Fitness Complete",
			Description: "Conjunto completo com top e legging coordenados. Design exclusivo com tecnologia de secagem rápida e proteção antimicrobiana.",
			Price:       price("199.90"),
			Images:      []string{"/assets/product-6.jpg", "/assets/product-6.jpg", "/assets/product-6.jpg"},
			Colors: []domain.Color{
				{Name: "Rosa Intenso", Value: "#E91E63"},
				{Name: "Roxo Royal", Value: "#673AB7"},
				{Name: "Coral Sunset", Value: "#FF5722"},
			},
			Sizes: []domain.Size{
				{Name: "PP", Available: true},
				{Name: "P", Available: true},
				{Name: "M", Available: true},
				{Name: "G", Available: false},
				{Name: "GG", Available: true},
			},
			Category: "Conjuntos",
		},
	}
}
