package models

// SocialLinks holds a barber's social media handles.
type SocialLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	TikTok    string `json:"tiktok"`
}

// Barber is a member of the shop roster.
type Barber struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	Role           string      `json:"role"`
	Image          string      `json:"image"`
	Bio            string      `json:"bio"`
	Qualifications []string    `json:"qualifications,omitempty"`
	Specialties    string      `json:"specialties,omitempty"`
	Social         SocialLinks `json:"social"`
}

// Service is an entry on the service menu. Price and duration are
// display values; the booking fee charged at checkout is flat.
type Service struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}
