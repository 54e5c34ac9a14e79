package models

import "gorm.io/gorm"

// Trip is a bookable listing managed by admins.
// Duration is free text ("5 days", "2 weeks"); Image is a URL, not a stored file.
type Trip struct {
	gorm.Model
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}
