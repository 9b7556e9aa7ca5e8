package store

import (
	"context"

	"github.com/MKhiriev/go-parking-mate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// UserRepository manages the users collection. Emails are unique and matched
// case-sensitively.
type UserRepository interface {
	// CreateUser assigns the next id and appends user. Returns
	// [ErrEmailAlreadyExists] if the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser replaces the record with the same email.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	// DeleteUser removes the user together with their bookmarks and ratings
	// and refreshes the average rating of every lot they had rated.
	DeleteUser(ctx context.Context, email string) error
}

// BookmarkRepository manages the bookmarks collection. Add and Remove are
// idempotent.
type BookmarkRepository interface {
	ListBookmarks(ctx context.Context, email string) ([]models.Bookmark, error)
	AddBookmark(ctx context.Context, bookmark models.Bookmark) error
	RemoveBookmark(ctx context.Context, bookmark models.Bookmark) error
}

// RatingRepository manages the ratings collection. Every mutation refreshes
// the affected lot's average rating.
type RatingRepository interface {
	ListRatings(ctx context.Context) ([]models.Rating, error)
	ListRatingsByEmail(ctx context.Context, email string) ([]models.Rating, error)
	FindRating(ctx context.Context, ratingID int64) (models.Rating, error)
	// CreateRating assigns the next rating_id. Returns
	// [ErrRatingAlreadyExists] if the (email, p_id) pair is already rated.
	CreateRating(ctx context.Context, rating models.Rating) (models.Rating, error)
	// UpdateRating overwrites the score of the rating with the same id.
	UpdateRating(ctx context.Context, ratingID int64, score float64) (models.Rating, error)
	DeleteRating(ctx context.Context, ratingID int64) error
}

// ParkingLotRepository manages the parking lots collection.
type ParkingLotRepository interface {
	ListParkingLots(ctx context.Context) ([]models.ParkingLot, error)
	FindParkingLot(ctx context.Context, id int64) (models.ParkingLot, error)
	// CreateParkingLot assigns the next p_id. Returns
	// [ErrParkingLotAlreadyExists] if the name is taken.
	CreateParkingLot(ctx context.Context, lot models.ParkingLot) (models.ParkingLot, error)
	UpdateParkingLot(ctx context.Context, update models.ParkingLotUpdate) (models.ParkingLot, error)
	// DeleteParkingLot removes the lot together with its bookmarks and
	// ratings.
	DeleteParkingLot(ctx context.Context, id int64) error
	// SaveScores stores scoring module output and returns how many lots were
	// updated. Scores for unknown lots are ignored.
	SaveScores(ctx context.Context, scores []models.LotScore) (int, error)
}
