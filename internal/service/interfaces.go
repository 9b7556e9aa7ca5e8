package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-parking-mate/models"
)

// AuthService registers and authenticates users and resolves the caller of
// a request.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Identify resolves the caller from the identity header value or the
	// session token, in that order. Returns ErrUnauthenticated when neither
	// names a stored user.
	Identify(ctx context.Context, headerEmail, sessionToken string) (models.User, error)
	SessionsEnabled() bool
}

type UserService interface {
	GetProfile(ctx context.Context, email string) (models.User, error)
	UpdateProfile(ctx context.Context, email string, update models.ProfileUpdate) (models.User, error)
	ChangePassword(ctx context.Context, email string, req models.PasswordChangeRequest) error
	DeleteUser(ctx context.Context, email string) error
}

type BookmarkService interface {
	ListBookmarks(ctx context.Context, email string) ([]models.BookmarkView, error)
	AddBookmark(ctx context.Context, email string, req models.BookmarkRequest) error
	RemoveBookmark(ctx context.Context, email string, parkingLotID int64) error
}

type RatingService interface {
	ListRatings(ctx context.Context, email string) ([]models.Rating, error)
	CreateRating(ctx context.Context, email string, req models.RatingCreateRequest) (models.Rating, error)
	UpdateRating(ctx context.Context, email string, req models.RatingUpdateRequest) (models.Rating, error)
	DeleteRating(ctx context.Context, email string, ratingID int64) error
}

type ParkingLotService interface {
	ListParkingLots(ctx context.Context) ([]models.ParkingLot, error)
	SearchParkingLots(ctx context.Context, keyword string) ([]models.ParkingLot, error)
	GetParkingLot(ctx context.Context, id int64) (models.ParkingLot, error)
	RecommendNearby(ctx context.Context, user models.User, req models.RecommendationRequest) ([]models.RecommendedParkingLot, error)
	RecommendDestination(ctx context.Context, user models.User, req models.RecommendationRequest) ([]models.RecommendedParkingLot, error)
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]models.UserProfile, error)
	SearchUsers(ctx context.Context, keyword string) ([]models.UserProfile, error)
	DeleteUser(ctx context.Context, id int64) error

	ListParkingLots(ctx context.Context) ([]models.ParkingLot, error)
	SearchParkingLots(ctx context.Context, keyword string) ([]models.ParkingLot, error)
	CreateParkingLot(ctx context.Context, req models.ParkingLotCreateRequest) (models.ParkingLot, error)
	UpdateParkingLot(ctx context.Context, update models.ParkingLotUpdate) (models.ParkingLot, error)
	DeleteParkingLot(ctx context.Context, id int64) error
	// RefreshScores asks the scoring module for fresh scores of every lot
	// and stores them. Returns the number of lots updated.
	RefreshScores(ctx context.Context, req models.ScoreRefreshRequest) (int, error)

	ListRatings(ctx context.Context) ([]models.Rating, error)
	SearchRatings(ctx context.Context, keyword string) ([]models.Rating, error)
	DeleteRating(ctx context.Context, ratingID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}
