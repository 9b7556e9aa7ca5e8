package models

// Bookmark links a user to a saved parking lot.
// A pair of (Email, ParkingLotID) appears at most once in the collection.
type Bookmark struct {
	Email        string `json:"email"`
	ParkingLotID int64  `json:"p_id"`
}

// BookmarkView is the list projection returned to the owner.
type BookmarkView struct {
	ParkingLotID int64 `json:"p_id"`
}
