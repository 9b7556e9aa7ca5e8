package store

import (
	"context"
	"os"
	"testing"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (*userRepository, *JSONStore, string) {
	t.Helper()
	dir := t.TempDir()
	s := newTestStore(t, dir)
	return NewUserRepository(s, logger.Nop()).(*userRepository), s, dir
}

func TestCreateUser_AssignsSequentialIDs(t *testing.T) {
	repo, _, dir := newTestUserRepo(t)
	ctx := context.Background()

	first, err := repo.CreateUser(ctx, models.User{Email: "kim@parking.kr", Nickname: "kim", JoinedAt: "2026-10-16"})
	require.NoError(t, err)
	second, err := repo.CreateUser(ctx, models.User{Email: "lee@parking.kr", Nickname: "lee"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	stored := readFixture[models.User](t, dir, usersFile)
	require.Len(t, stored, 2)
	assert.Equal(t, "2026-10-16", stored[0].JoinedAt)
}

func TestCreateUser_IDFollowsMaxExisting(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, usersFile, []models.User{{ID: 7, Email: "a@b.c"}, {ID: 3, Email: "d@e.f"}})
	repo := NewUserRepository(newTestStore(t, dir), logger.Nop())

	created, err := repo.CreateUser(context.Background(), models.User{Email: "new@b.c"})

	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo, s, _ := newTestUserRepo(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Email: "kim@parking.kr"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{Email: "kim@parking.kr", Nickname: "other"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Len(t, s.users, 1)
}

func TestCreateUser_EmailIsCaseSensitive(t *testing.T) {
	repo, _, _ := newTestUserRepo(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Email: "kim@parking.kr"})
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, models.User{Email: "Kim@parking.kr"})

	assert.NoError(t, err)
}

func TestCreateUser_PersistFailureLeavesMemoryUnchanged(t *testing.T) {
	repo, s, dir := newTestUserRepo(t)
	require.NoError(t, os.RemoveAll(dir))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "kim@parking.kr"})

	assert.ErrorIs(t, err, ErrPersistingCollection)
	assert.Empty(t, s.users)
}

func TestFindUser(t *testing.T) {
	repo, _, _ := newTestUserRepo(t)
	ctx := context.Background()
	created, err := repo.CreateUser(ctx, models.User{Email: "kim@parking.kr", Nickname: "kim"})
	require.NoError(t, err)

	byEmail, err := repo.FindUserByEmail(ctx, "kim@parking.kr")
	require.NoError(t, err)
	assert.Equal(t, created, byEmail)

	byID, err := repo.FindUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	_, err = repo.FindUserByEmail(ctx, "nobody@parking.kr")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
	_, err = repo.FindUserByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestListUsers_ReturnsCopy(t *testing.T) {
	repo, s, _ := newTestUserRepo(t)
	ctx := context.Background()
	_, err := repo.CreateUser(ctx, models.User{Email: "kim@parking.kr", Nickname: "kim"})
	require.NoError(t, err)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	users[0].Nickname = "changed"

	assert.Equal(t, "kim", s.users[0].Nickname)
}

func TestUpdateUser_KeepsIdentityFields(t *testing.T) {
	repo, _, dir := newTestUserRepo(t)
	ctx := context.Background()
	created, err := repo.CreateUser(ctx, models.User{Email: "kim@parking.kr", Nickname: "kim", JoinedAt: "2026-01-02"})
	require.NoError(t, err)

	updated, err := repo.UpdateUser(ctx, models.User{
		ID:              999,
		Email:           "kim@parking.kr",
		Nickname:        "kimmy",
		PreferredFactor: models.FactorFee,
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "2026-01-02", updated.JoinedAt)
	assert.Equal(t, "kimmy", updated.Nickname)

	stored := readFixture[models.User](t, dir, usersFile)
	assert.Equal(t, models.FactorFee, stored[0].PreferredFactor)
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, _, _ := newTestUserRepo(t)

	_, err := repo.UpdateUser(context.Background(), models.User{Email: "nobody@parking.kr"})

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestDeleteUser_Cascades(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, usersFile, []models.User{{ID: 1, Email: "kim@parking.kr"}, {ID: 2, Email: "lee@parking.kr"}})
	writeFixture(t, dir, bookmarksFile, []models.Bookmark{
		{Email: "kim@parking.kr", ParkingLotID: 1},
		{Email: "lee@parking.kr", ParkingLotID: 1},
		{Email: "kim@parking.kr", ParkingLotID: 2},
	})
	writeFixture(t, dir, ratingsFile, []models.Rating{
		{RatingID: 1, Email: "kim@parking.kr", ParkingLotID: 1, Score: 1},
		{RatingID: 2, Email: "lee@parking.kr", ParkingLotID: 1, Score: 5},
	})
	writeFixture(t, dir, parkingLotsFile, []models.ParkingLot{{ID: 1, Name: "A", AvgRating: 3}, {ID: 2, Name: "B"}})
	s := newTestStore(t, dir)
	repo := NewUserRepository(s, logger.Nop())

	require.NoError(t, repo.DeleteUser(context.Background(), "kim@parking.kr"))

	assert.Equal(t, []models.User{{ID: 2, Email: "lee@parking.kr"}}, readFixture[models.User](t, dir, usersFile))
	assert.Equal(t, []models.Bookmark{{Email: "lee@parking.kr", ParkingLotID: 1}}, readFixture[models.Bookmark](t, dir, bookmarksFile))

	ratings := readFixture[models.Rating](t, dir, ratingsFile)
	require.Len(t, ratings, 1)
	assert.Equal(t, "lee@parking.kr", ratings[0].Email)

	lots := readFixture[models.ParkingLot](t, dir, parkingLotsFile)
	assert.Equal(t, 5.0, lots[0].AvgRating)
	assert.Equal(t, int64(3), s.nextRatingID, "deleted ids are not reused")
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, _, _ := newTestUserRepo(t)

	err := repo.DeleteUser(context.Background(), "nobody@parking.kr")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
