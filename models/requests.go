package models

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Email           string          `json:"email" validate:"required"`
	Password        string          `json:"password" validate:"required"`
	Nickname        string          `json:"nickname" validate:"required"`
	PreferredFactor PreferredFactor `json:"preferred_factor" validate:"required,oneof=FEE DISTANCE RATING CONGESTION"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PasswordChangeRequest is the body of PATCH /api/users/password.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// BookmarkRequest is the body of POST /api/bookmarks.
type BookmarkRequest struct {
	ParkingLotID int64 `json:"p_id" validate:"required,gt=0"`
}

// RatingCreateRequest is the body of POST /api/ratings.
type RatingCreateRequest struct {
	ParkingLotID int64    `json:"p_id" validate:"required,gt=0"`
	Score        *float64 `json:"score" validate:"required"`
}

// RatingUpdateRequest is the body of PATCH /api/ratings.
type RatingUpdateRequest struct {
	RatingID int64    `json:"rating_id" validate:"required,gt=0"`
	Score    *float64 `json:"score" validate:"required"`
}

// RatingDeleteRequest is the body accepted by DELETE /api/ratings for
// clients that send the id in the body instead of the path.
type RatingDeleteRequest struct {
	RatingID int64 `json:"rating_id" validate:"required,gt=0"`
}

// RecommendationRequest is the body of both recommendation endpoints.
//
// Lat and Lng are accepted as aliases of Latitude and Longitude.
// Weekday and Hour are carried for the scoring model and do not affect the
// bounding-box filter.
type RecommendationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
	Lat       *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Lng       *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
	Weekday   *int     `json:"weekday,omitempty" validate:"omitempty,gte=0,lte=7"`
	Hour      *int     `json:"hour,omitempty" validate:"omitempty,gte=0,lte=23"`
}

// Point resolves the requested coordinates, preferring the long field
// names. ok is false when either coordinate is missing.
func (r RecommendationRequest) Point() (lat, lng float64, ok bool) {
	latPtr, lngPtr := r.Latitude, r.Longitude
	if latPtr == nil {
		latPtr = r.Lat
	}
	if lngPtr == nil {
		lngPtr = r.Lng
	}
	if latPtr == nil || lngPtr == nil {
		return 0, 0, false
	}
	return *latPtr, *lngPtr, true
}

// ParkingLotCreateRequest is the body of POST /admin/api/parking-lots.
type ParkingLotCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	Fee         int64   `json:"fee" validate:"gte=0"`
	Latitude    float64 `json:"latitude" validate:"latitude"`
	Longitude   float64 `json:"longitude" validate:"longitude"`
	TotalSpaces int64   `json:"total_spaces" validate:"gte=0"`
}

// ScoreRefreshRequest is the optional body of
// POST /admin/api/parking-lots/scores. Zero values mean "now".
type ScoreRefreshRequest struct {
	Weekday *int `json:"weekday,omitempty" validate:"omitempty,gte=0,lte=6"`
	Hour    *int `json:"hour,omitempty" validate:"omitempty,gte=0,lte=23"`
}
