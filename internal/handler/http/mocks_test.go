// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-parking-mate/models"
)

// ─────────────────────────────────────────────
// Service mocks. Each method field can be overridden per test case; an
// unset field panics so an unexpected call fails loudly.
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn        func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn           func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn     func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn      func(ctx context.Context, tokenString string) (models.Token, error)
	identifyFn        func(ctx context.Context, headerEmail, sessionToken string) (models.User, error)
	sessionsEnabledFn func() bool
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Identify(ctx context.Context, headerEmail, sessionToken string) (models.User, error) {
	return m.identifyFn(ctx, headerEmail, sessionToken)
}

func (m *mockAuthService) SessionsEnabled() bool {
	if m.sessionsEnabledFn == nil {
		return false
	}
	return m.sessionsEnabledFn()
}

type mockUserService struct {
	getProfileFn     func(ctx context.Context, email string) (models.User, error)
	updateProfileFn  func(ctx context.Context, email string, update models.ProfileUpdate) (models.User, error)
	changePasswordFn func(ctx context.Context, email string, req models.PasswordChangeRequest) error
	deleteUserFn     func(ctx context.Context, email string) error
}

func (m *mockUserService) GetProfile(ctx context.Context, email string) (models.User, error) {
	return m.getProfileFn(ctx, email)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, email string, update models.ProfileUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, email, update)
}

func (m *mockUserService) ChangePassword(ctx context.Context, email string, req models.PasswordChangeRequest) error {
	return m.changePasswordFn(ctx, email, req)
}

func (m *mockUserService) DeleteUser(ctx context.Context, email string) error {
	return m.deleteUserFn(ctx, email)
}

type mockBookmarkService struct {
	listFn   func(ctx context.Context, email string) ([]models.BookmarkView, error)
	addFn    func(ctx context.Context, email string, req models.BookmarkRequest) error
	removeFn func(ctx context.Context, email string, parkingLotID int64) error
}

func (m *mockBookmarkService) ListBookmarks(ctx context.Context, email string) ([]models.BookmarkView, error) {
	return m.listFn(ctx, email)
}

func (m *mockBookmarkService) AddBookmark(ctx context.Context, email string, req models.BookmarkRequest) error {
	return m.addFn(ctx, email, req)
}

func (m *mockBookmarkService) RemoveBookmark(ctx context.Context, email string, parkingLotID int64) error {
	return m.removeFn(ctx, email, parkingLotID)
}

type mockRatingService struct {
	listFn   func(ctx context.Context, email string) ([]models.Rating, error)
	createFn func(ctx context.Context, email string, req models.RatingCreateRequest) (models.Rating, error)
	updateFn func(ctx context.Context, email string, req models.RatingUpdateRequest) (models.Rating, error)
	deleteFn func(ctx context.Context, email string, ratingID int64) error
}

func (m *mockRatingService) ListRatings(ctx context.Context, email string) ([]models.Rating, error) {
	return m.listFn(ctx, email)
}

func (m *mockRatingService) CreateRating(ctx context.Context, email string, req models.RatingCreateRequest) (models.Rating, error) {
	return m.createFn(ctx, email, req)
}

func (m *mockRatingService) UpdateRating(ctx context.Context, email string, req models.RatingUpdateRequest) (models.Rating, error) {
	return m.updateFn(ctx, email, req)
}

func (m *mockRatingService) DeleteRating(ctx context.Context, email string, ratingID int64) error {
	return m.deleteFn(ctx, email, ratingID)
}

type mockParkingLotService struct {
	listFn        func(ctx context.Context) ([]models.ParkingLot, error)
	searchFn      func(ctx context.Context, keyword string) ([]models.ParkingLot, error)
	getFn         func(ctx context.Context, id int64) (models.ParkingLot, error)
	nearbyFn      func(ctx context.Context, user models.User, req models.RecommendationRequest) ([]models.RecommendedParkingLot, error)
	destinationFn func(ctx context.Context, user models.User, req models.RecommendationRequest) ([]models.RecommendedParkingLot, error)
}

func (m *mockParkingLotService) ListParkingLots(ctx context.Context) ([]models.ParkingLot, error) {
	return m.listFn(ctx)
}

func (m *mockParkingLotService) SearchParkingLots(ctx context.Context, keyword string) ([]models.ParkingLot, error) {
	return m.searchFn(ctx, keyword)
}

func (m *mockParkingLotService) GetParkingLot(ctx context.Context, id int64) (models.ParkingLot, error) {
	return m.getFn(ctx, id)
}

func (m *mockParkingLotService) RecommendNearby(ctx context.Context, user models.User, req models.RecommendationRequest) ([]models.RecommendedParkingLot, error) {
	return m.nearbyFn(ctx, user, req)
}

func (m *mockParkingLotService) RecommendDestination(ctx context.Context, user models.User, req models.RecommendationRequest) ([]models.RecommendedParkingLot, error) {
	return m.destinationFn(ctx, user, req)
}

type mockAdminService struct {
	listUsersFn     func(ctx context.Context) ([]models.UserProfile, error)
	searchUsersFn   func(ctx context.Context, keyword string) ([]models.UserProfile, error)
	deleteUserFn    func(ctx context.Context, id int64) error
	listLotsFn      func(ctx context.Context) ([]models.ParkingLot, error)
	searchLotsFn    func(ctx context.Context, keyword string) ([]models.ParkingLot, error)
	createLotFn     func(ctx context.Context, req models.ParkingLotCreateRequest) (models.ParkingLot, error)
	updateLotFn     func(ctx context.Context, update models.ParkingLotUpdate) (models.ParkingLot, error)
	deleteLotFn     func(ctx context.Context, id int64) error
	refreshScoresFn func(ctx context.Context, req models.ScoreRefreshRequest) (int, error)
	listRatingsFn   func(ctx context.Context) ([]models.Rating, error)
	searchRatingsFn func(ctx context.Context, keyword string) ([]models.Rating, error)
	deleteRatingFn  func(ctx context.Context, ratingID int64) error
}

func (m *mockAdminService) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	return m.listUsersFn(ctx)
}

func (m *mockAdminService) SearchUsers(ctx context.Context, keyword string) ([]models.UserProfile, error) {
	return m.searchUsersFn(ctx, keyword)
}

func (m *mockAdminService) DeleteUser(ctx context.Context, id int64) error {
	return m.deleteUserFn(ctx, id)
}

func (m *mockAdminService) ListParkingLots(ctx context.Context) ([]models.ParkingLot, error) {
	return m.listLotsFn(ctx)
}

func (m *mockAdminService) SearchParkingLots(ctx context.Context, keyword string) ([]models.ParkingLot, error) {
	return m.searchLotsFn(ctx, keyword)
}

func (m *mockAdminService) CreateParkingLot(ctx context.Context, req models.ParkingLotCreateRequest) (models.ParkingLot, error) {
	return m.createLotFn(ctx, req)
}

func (m *mockAdminService) UpdateParkingLot(ctx context.Context, update models.ParkingLotUpdate) (models.ParkingLot, error) {
	return m.updateLotFn(ctx, update)
}

func (m *mockAdminService) DeleteParkingLot(ctx context.Context, id int64) error {
	return m.deleteLotFn(ctx, id)
}

func (m *mockAdminService) RefreshScores(ctx context.Context, req models.ScoreRefreshRequest) (int, error) {
	return m.refreshScoresFn(ctx, req)
}

func (m *mockAdminService) ListRatings(ctx context.Context) ([]models.Rating, error) {
	return m.listRatingsFn(ctx)
}

func (m *mockAdminService) SearchRatings(ctx context.Context, keyword string) ([]models.Rating, error) {
	return m.searchRatingsFn(ctx, keyword)
}

func (m *mockAdminService) DeleteRating(ctx context.Context, ratingID int64) error {
	return m.deleteRatingFn(ctx, ratingID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetVersionInfo(_ context.Context) models.VersionInfo {
	return models.VersionInfo{Version: m.version, BuildDate: "N/A", BuildCommit: "N/A"}
}
