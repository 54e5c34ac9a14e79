package models

import "gorm.io/gorm"

// Booking statuses. Any status may be set from any other; there is no
// transition graph.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking records a user's reservation against a trip.
//
// UserEmail and TripTitle are snapshots taken at creation time and are never
// re-synced if the source User or Trip changes later. TripID may dangle after
// the trip is deleted; there is no cascade.
type Booking struct {
	gorm.Model
	UserID     uint   `json:"user_id"`
	UserEmail  string `json:"user_email"`
	TripID     uint   `json:"trip_id"`
	TripTitle  string `json:"trip_title"`
	Reference  string `json:"reference"` // confirmation code shown to the traveler
	TravelDate string `json:"travel_date"`
	Travelers  int    `json:"travelers"`
	Status     string `json:"status"`
}
