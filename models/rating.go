package models

import "time"

// Rating is a user's score for a parking lot. A pair of
// (Email, ParkingLotID) appears at most once in the collection.
//
// Score is expected in 0..5 with half points but the range is not enforced.
type Rating struct {
	RatingID     int64   `json:"rating_id"`
	Email        string  `json:"email"`
	ParkingLotID int64   `json:"p_id"`
	Score        float64 `json:"score"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
