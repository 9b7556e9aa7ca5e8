// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for outbound HTTP
// calls.
//
// [ScoringAdapter] decouples the service layer from the external AI scoring
// module's contract; [APIAdapter] is the terminal client's view of the
// parking-mate REST API. Both ship resty-backed implementations
// ([NewHTTPScoringAdapter], [NewHTTPAPIAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError and mapAPIError so that callers can use [errors.Is]
// regardless of which status the remote side answered with.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-parking-mate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ScoringAdapter computes the four per-preference recommendation scores for a
// batch of parking lots.
type ScoringAdapter interface {
	// Score sends every lot in req to the scoring module and returns one
	// [models.LotScore] per lot the module answered for. Lots the module
	// does not mention are left out of the result. Returns an error wrapping
	// [ErrScoringFailed] if the request fails or the module answers with a
	// non-2xx status.
	Score(ctx context.Context, req ScoreRequest) ([]models.LotScore, error)
}

// ScoreRequest describes one scoring round.
type ScoreRequest struct {
	// Lots are the candidates. The module identifies them by name and uses
	// AvgRating as the review input.
	Lots []models.ParkingLot

	// Weekday is 0 (Monday) through 6 (Sunday).
	Weekday int
	// Hour is 0 through 23.
	Hour int

	// ParkingDuration in minutes; zero means the module default of 120.
	ParkingDuration int

	// BaseLat and BaseLon anchor the distance component. When nil the module
	// treats every lot as equidistant.
	BaseLat *float64
	BaseLon *float64
}

// APIAdapter is the terminal client's view of the parking-mate REST API.
// Every call decodes the {status, message, data} envelope and returns the
// data part. Non-2xx answers are returned as errors wrapping one of the
// ErrAPI* sentinels, carrying the server's message.
type APIAdapter interface {
	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, req models.RegisterRequest) error
	// Login authenticates and remembers the identity for subsequent calls.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	// Logout tells the server to drop the session and forgets the identity.
	Logout(ctx context.Context) error
	// Profile returns the logged-in user's profile.
	Profile(ctx context.Context) (models.UserProfile, error)

	// ParkingLots lists every lot, or searches by name and address when
	// keyword is not blank.
	ParkingLots(ctx context.Context, keyword string) ([]models.ParkingLot, error)
	// ParkingLot fetches a single lot by id.
	ParkingLot(ctx context.Context, id int64) (models.ParkingLot, error)
	// RecommendNearby ranks the lots around a point by the user's factor.
	RecommendNearby(ctx context.Context, lat, lng float64) ([]models.RecommendedParkingLot, error)

	Bookmarks(ctx context.Context) ([]models.BookmarkView, error)
	AddBookmark(ctx context.Context, parkingLotID int64) error
	RemoveBookmark(ctx context.Context, parkingLotID int64) error

	Ratings(ctx context.Context) ([]models.Rating, error)
	RateParkingLot(ctx context.Context, parkingLotID int64, score float64) (models.Rating, error)

	ServerVersion(ctx context.Context) (models.VersionInfo, error)
}
