package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func newTestRatingRepo(t *testing.T, dir string) (*ratingRepository, *JSONStore) {
	t.Helper()
	s := newTestStore(t, dir)
	repo := NewRatingRepository(s, logger.Nop()).(*ratingRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, s
}

func TestCreateRating_AssignsIDAndRefreshesAverage(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, parkingLotsFile, []models.ParkingLot{{ID: 1, Name: "A"}})
	repo, _ := newTestRatingRepo(t, dir)
	ctx := context.Background()

	first, err := repo.CreateRating(ctx, models.Rating{Email: "kim@parking.kr", ParkingLotID: 1, Score: 4})
	require.NoError(t, err)
	second, err := repo.CreateRating(ctx, models.Rating{Email: "lee@parking.kr", ParkingLotID: 1, Score: 3})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.RatingID)
	assert.Equal(t, int64(2), second.RatingID)
	require.NotNil(t, first.CreatedAt)
	assert.True(t, first.CreatedAt.Equal(fixedNow))
	assert.Nil(t, first.UpdatedAt)

	lots := readFixture[models.ParkingLot](t, dir, parkingLotsFile)
	assert.Equal(t, 3.5, lots[0].AvgRating)
}

func TestCreateRating_LotsWriteFailureKeepsRating(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, parkingLotsFile, []models.ParkingLot{{ID: 1, Name: "A"}})
	repo, s := newTestRatingRepo(t, dir)
	ctx := context.Background()

	// a directory in place of the temp file makes every lots write fail
	blocker := filepath.Join(dir, parkingLotsFile+".tmp")
	require.NoError(t, os.Mkdir(blocker, 0o755))

	rating, err := repo.CreateRating(ctx, models.Rating{Email: "kim@parking.kr", ParkingLotID: 1, Score: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rating.RatingID)
	assert.Len(t, readFixture[models.Rating](t, dir, ratingsFile), 1)
	assert.Zero(t, s.lots[0].AvgRating)
	assert.Zero(t, readFixture[models.ParkingLot](t, dir, parkingLotsFile)[0].AvgRating)

	_, err = repo.CreateRating(ctx, models.Rating{Email: "kim@parking.kr", ParkingLotID: 1, Score: 2})
	assert.ErrorIs(t, err, ErrRatingAlreadyExists)

	require.NoError(t, os.Remove(blocker))
	_, err = repo.CreateRating(ctx, models.Rating{Email: "lee@parking.kr", ParkingLotID: 1, Score: 2})
	require.NoError(t, err)

	assert.Equal(t, 3.0, readFixture[models.ParkingLot](t, dir, parkingLotsFile)[0].AvgRating)
}

func TestCreateRating_Duplicate(t *testing.T) {
	repo, s := newTestRatingRepo(t, t.TempDir())
	ctx := context.Background()

	_, err := repo.CreateRating(ctx, models.Rating{Email: "kim@parking.kr", ParkingLotID: 1, Score: 4})
	require.NoError(t, err)
	_, err = repo.CreateRating(ctx, models.Rating{Email: "kim@parking.kr", ParkingLotID: 1, Score: 2})

	assert.ErrorIs(t, err, ErrRatingAlreadyExists)
	assert.Len(t, s.ratings, 1)
}

func TestCreateRating_IDsNeverReused(t *testing.T) {
	repo, _ := newTestRatingRepo(t, t.TempDir())
	ctx := context.Background()

	first, err := repo.CreateRating(ctx, models.Rating{Email: "kim@parking.kr", ParkingLotID: 1, Score: 4})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteRating(ctx, first.RatingID))

	second, err := repo.CreateRating(ctx, models.Rating{Email: "kim@parking.kr", ParkingLotID: 1, Score: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(2), second.RatingID)
}

func TestCreateRating_ConcurrentSamePair(t *testing.T) {
	repo, s := newTestRatingRepo(t, t.TempDir())
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.CreateRating(ctx, models.Rating{Email: "kim@parking.kr", ParkingLotID: 1, Score: 4})
		}()
	}
	wg.Wait()

	assert.Len(t, s.ratings, 1)
}

func TestUpdateRating(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, parkingLotsFile, []models.ParkingLot{{ID: 1, Name: "A", AvgRating: 4}})
	writeFixture(t, dir, ratingsFile, []models.Rating{{RatingID: 5, Email: "kim@parking.kr", ParkingLotID: 1, Score: 4}})
	repo, _ := newTestRatingRepo(t, dir)

	updated, err := repo.UpdateRating(context.Background(), 5, 2.5)

	require.NoError(t, err)
	assert.Equal(t, 2.5, updated.Score)
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.Equal(fixedNow))
	assert.Equal(t, 2.5, readFixture[models.ParkingLot](t, dir, parkingLotsFile)[0].AvgRating)
}

func TestUpdateRating_NotFound(t *testing.T) {
	repo, _ := newTestRatingRepo(t, t.TempDir())

	_, err := repo.UpdateRating(context.Background(), 42, 1)

	assert.ErrorIs(t, err, ErrRatingNotFound)
}

func TestDeleteRating_ResetsAverage(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, parkingLotsFile, []models.ParkingLot{{ID: 1, Name: "A", AvgRating: 4}})
	writeFixture(t, dir, ratingsFile, []models.Rating{{RatingID: 5, Email: "kim@parking.kr", ParkingLotID: 1, Score: 4}})
	repo, _ := newTestRatingRepo(t, dir)

	require.NoError(t, repo.DeleteRating(context.Background(), 5))

	assert.Empty(t, readFixture[models.Rating](t, dir, ratingsFile))
	assert.Equal(t, 0.0, readFixture[models.ParkingLot](t, dir, parkingLotsFile)[0].AvgRating)
}

func TestDeleteRating_NotFound(t *testing.T) {
	repo, _ := newTestRatingRepo(t, t.TempDir())

	assert.ErrorIs(t, repo.DeleteRating(context.Background(), 1), ErrRatingNotFound)
}

func TestListAndFindRatings(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, ratingsFile, []models.Rating{
		{RatingID: 1, Email: "kim@parking.kr", ParkingLotID: 1, Score: 4},
		{RatingID: 2, Email: "lee@parking.kr", ParkingLotID: 1, Score: 3},
	})
	repo, _ := newTestRatingRepo(t, dir)
	ctx := context.Background()

	all, err := repo.ListRatings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := repo.ListRatingsByEmail(ctx, "lee@parking.kr")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(2), mine[0].RatingID)

	found, err := repo.FindRating(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "kim@parking.kr", found.Email)

	_, err = repo.FindRating(ctx, 9)
	assert.ErrorIs(t, err, ErrRatingNotFound)
}
