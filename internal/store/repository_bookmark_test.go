package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarks_AddIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	repo := NewBookmarkRepository(newTestStore(t, dir), logger.Nop())
	ctx := context.Background()
	b := models.Bookmark{Email: "kim@parking.kr", ParkingLotID: 5}

	require.NoError(t, repo.AddBookmark(ctx, b))
	require.NoError(t, repo.AddBookmark(ctx, b))

	assert.Equal(t, []models.Bookmark{b}, readFixture[models.Bookmark](t, dir, bookmarksFile))
}

func TestBookmarks_ListFiltersByEmail(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, bookmarksFile, []models.Bookmark{
		{Email: "kim@parking.kr", ParkingLotID: 3},
		{Email: "lee@parking.kr", ParkingLotID: 4},
		{Email: "kim@parking.kr", ParkingLotID: 1},
	})
	repo := NewBookmarkRepository(newTestStore(t, dir), logger.Nop())

	got, err := repo.ListBookmarks(context.Background(), "kim@parking.kr")

	require.NoError(t, err)
	assert.Equal(t, []models.Bookmark{
		{Email: "kim@parking.kr", ParkingLotID: 3},
		{Email: "kim@parking.kr", ParkingLotID: 1},
	}, got)
}

func TestBookmarks_ListEmptyIsNotNil(t *testing.T) {
	repo := NewBookmarkRepository(newTestStore(t, t.TempDir()), logger.Nop())

	got, err := repo.ListBookmarks(context.Background(), "kim@parking.kr")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBookmarks_RemoveMissingIsNoop(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, bookmarksFile, []models.Bookmark{{Email: "kim@parking.kr", ParkingLotID: 3}})
	before, err := os.Stat(filepath.Join(dir, bookmarksFile))
	require.NoError(t, err)
	repo := NewBookmarkRepository(newTestStore(t, dir), logger.Nop())

	require.NoError(t, repo.RemoveBookmark(context.Background(), models.Bookmark{Email: "kim@parking.kr", ParkingLotID: 5}))

	after, err := os.Stat(filepath.Join(dir, bookmarksFile))
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
	assert.Len(t, readFixture[models.Bookmark](t, dir, bookmarksFile), 1)
}

func TestBookmarks_Remove(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, bookmarksFile, []models.Bookmark{
		{Email: "kim@parking.kr", ParkingLotID: 3},
		{Email: "lee@parking.kr", ParkingLotID: 3},
	})
	repo := NewBookmarkRepository(newTestStore(t, dir), logger.Nop())

	require.NoError(t, repo.RemoveBookmark(context.Background(), models.Bookmark{Email: "kim@parking.kr", ParkingLotID: 3}))

	assert.Equal(t, []models.Bookmark{{Email: "lee@parking.kr", ParkingLotID: 3}}, readFixture[models.Bookmark](t, dir, bookmarksFile))
}
