package catalog

import (
	"strconv"

	"danielsbarber/models"
)

// CatalogService serves the shop roster and service menu shown on the
// marketing pages and the booking flow.
type CatalogService interface {
	Barbers() []models.Barber
	Services() []models.Service
	BarberByID(id string) (*models.Barber, bool)
}

type DefaultCatalogService struct{}

// Static shop data, maintained here until the roster moves to a table.
var barbers = []models.Barber{
	{
		ID:    1,
		Name:  "Niajere Daniels",
		Role:  "Master Barber & Owner",
		Image: "/niajere.jpg",
		Bio:   "With over a decade of experience, Niajere brings unparalleled expertise and artistry to every cut.",
		Qualifications: []string{
			"Licensed Master Barber",
			"Precision Cutting Specialist",
			"10+ Years Experience",
		},
		Specialties: "Fades, Design Work, Beard Sculpting",
		Social:      models.SocialLinks{Instagram: "#", Facebook: "#", TikTok: "#"},
	},
	{
		ID:     2,
		Name:   "Marcus Johnson",
		Role:   "Senior Barber",
		Image:  "/barber2.jpg",
		Bio:    "Marcus specializes in classic cuts and modern color treatments, bringing a fresh perspective to traditional styles.",
		Social: models.SocialLinks{Instagram: "#", Facebook: "#", TikTok: "#"},
	},
	{
		ID:     3,
		Name:   "David Rodriguez",
		Role:   "Style Specialist",
		Image:  "/barber3.jpg",
		Bio:    "David is known for his innovative approach to textured hair and contemporary styling techniques.",
		Social: models.SocialLinks{Instagram: "#", Facebook: "#", TikTok: "#"},
	},
}

var serviceMenu = []models.Service{
	{
		Title:       "Classic Haircut",
		Price:       "$55",
		Description: "Precision cut tailored to your style, includes hot towel and styling",
		Duration:    "45 min",
	},
	{
		Title:       "Beard Trim & Shape",
		Price:       "$35",
		Description: "Expert beard grooming with precise trimming and shaping",
		Duration:    "30 min",
	},
	{
		Title:       "Hair & Beard Combo",
		Price:       "$60",
		Description: "Complete grooming package with haircut and beard service",
		Duration:    "1 hour",
	},
	{
		Title:       "Kids' Cut",
		Price:       "$25",
		Description: "Gentle and patient service for our younger gentlemen",
		Duration:    "30 min",
	},
}

func (s *DefaultCatalogService) Barbers() []models.Barber {
	return barbers
}

func (s *DefaultCatalogService) Services() []models.Service {
	return serviceMenu
}

// BarberByID resolves a barber from the string id used on the wire.
func (s *DefaultCatalogService) BarberByID(id string) (*models.Barber, bool) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, false
	}
	for i := range barbers {
		if barbers[i].ID == n {
			return &barbers[i], true
		}
	}
	return nil, false
}
