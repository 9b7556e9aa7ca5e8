package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-parking-mate/internal/service"
	"github.com/MKhiriev/go-parking-mate/internal/store"
	"github.com/MKhiriev/go-parking-mate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBookmarks(t *testing.T) {
	bookmarks := &mockBookmarkService{
		listFn: func(_ context.Context, email string) ([]models.BookmarkView, error) {
			require.Equal(t, "kim@parking.kr", email)
			return []models.BookmarkView{{ParkingLotID: 3}, {ParkingLotID: 9}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{BookmarkService: bookmarks})

	rec := serve(h, http.MethodGet, "/api/bookmarks", "", "kim@parking.kr")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.JSONEq(t, `[{"p_id":3},{"p_id":9}]`, string(env.Data))
}

func TestListBookmarks_EmptyIsArray(t *testing.T) {
	bookmarks := &mockBookmarkService{
		listFn: func(context.Context, string) ([]models.BookmarkView, error) {
			return []models.BookmarkView{}, nil
		},
	}
	h := newTestHandler(t, &service.Services{BookmarkService: bookmarks})

	rec := serve(h, http.MethodGet, "/api/bookmarks", "", "kim@parking.kr")

	assert.Equal(t, "[]", string(decodeEnvelope(t, rec).Data))
}

func TestAddBookmark(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCalled bool
	}{
		{"added", `{"p_id":5}`, nil, http.StatusCreated, true},
		{"already bookmarked is still created", `{"p_id":5}`, nil, http.StatusCreated, true},
		{"invalid json", `{"p_id":`, nil, http.StatusBadRequest, false},
		{"invalid data", `{"p_id":0}`, service.ErrInvalidDataProvided, http.StatusBadRequest, true},
		{"save failed", `{"p_id":5}`, store.ErrPersistingCollection, http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			bookmarks := &mockBookmarkService{
				addFn: func(_ context.Context, email string, req models.BookmarkRequest) error {
					called = true
					assert.Equal(t, "kim@parking.kr", email)
					return tt.serviceErr
				},
			}
			h := newTestHandler(t, &service.Services{BookmarkService: bookmarks})

			rec := serve(h, http.MethodPost, "/api/bookmarks", tt.body, "kim@parking.kr")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			decodeEnvelope(t, rec)
		})
	}
}

func TestRemoveBookmark(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantID     int64
	}{
		{"removed", "/api/bookmarks/5", http.StatusOK, 5},
		{"non-numeric id", "/api/bookmarks/abc", http.StatusBadRequest, 0},
		{"zero id", "/api/bookmarks/0", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			bookmarks := &mockBookmarkService{
				removeFn: func(_ context.Context, _ string, parkingLotID int64) error {
					gotID = parkingLotID
					return nil
				},
			}
			h := newTestHandler(t, &service.Services{BookmarkService: bookmarks})

			rec := serve(h, http.MethodDelete, tt.path, "", "kim@parking.kr")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantID, gotID)
			decodeEnvelope(t, rec)
		})
	}
}
