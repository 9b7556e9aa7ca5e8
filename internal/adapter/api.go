package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-parking-mate/internal/config"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/utils"
	"github.com/MKhiriev/go-parking-mate/models"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const identityHeader = "X-User-Email"

// envelope mirrors the server's {status, message, data} response body.
type envelope[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type httpAPIAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	email string

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs a resty-backed [APIAdapter] for the
// parking-mate server at adapterCfg.ServerAddress.
//
// The underlying client keeps a cookie jar, so a session cookie issued at
// login is replayed automatically. The logged-in email is also sent in the
// X-User-Email header for servers that run without session signing.
func NewHTTPAPIAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server address: %w", err)
	}

	client := utils.NewHTTPClientWithBaseURL(baseURL, adapterCfg.RequestTimeout)
	client.
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &httpAPIAdapter{client: client, logger: logger}, nil
}

func (h *httpAPIAdapter) identity() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.email
}

func (h *httpAPIAdapter) setIdentity(email string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.email = strings.TrimSpace(email)
}

func (h *httpAPIAdapter) request(ctx context.Context) *resty.Request {
	r := h.client.R().SetContext(ctx)
	if email := h.identity(); email != "" {
		r.SetHeader(identityHeader, email)
	}
	return r
}

// execute sends r and unwraps the envelope's data into T.
func execute[T any](r *resty.Request, method, path string) (T, error) {
	var (
		env  envelope[T]
		zero T
	)

	resp, err := r.SetResult(&env).Execute(method, path)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrAPIRequestFailed, err)
	}
	if err = mapAPIError(resp); err != nil {
		return zero, err
	}

	return env.Data, nil
}

// Register implements [APIAdapter]. POST /api/users/register.
func (h *httpAPIAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	_, err := execute[any](h.request(ctx).SetBody(req), http.MethodPost, "/api/users/register")
	return err
}

// Login implements [APIAdapter]. POST /api/users/login. On success the email
// is remembered and sent with every following request.
func (h *httpAPIAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	result, err := execute[models.LoginResult](h.request(ctx).SetBody(req), http.MethodPost, "/api/users/login")
	if err != nil {
		return models.LoginResult{}, err
	}

	email := result.Email
	if email == "" {
		email = req.Email
	}
	h.setIdentity(email)

	h.logger.Debug().Str("email", email).Msg("logged in")
	return result, nil
}

// Logout implements [APIAdapter]. The local identity is dropped even when
// the server call fails.
func (h *httpAPIAdapter) Logout(ctx context.Context) error {
	_, err := execute[any](h.request(ctx), http.MethodPost, "/api/users/logout")
	h.setIdentity("")
	return err
}

func (h *httpAPIAdapter) Profile(ctx context.Context) (models.UserProfile, error) {
	return execute[models.UserProfile](h.request(ctx), http.MethodGet, "/api/users/mypage")
}

// ParkingLots implements [APIAdapter]. A blank keyword lists every lot.
func (h *httpAPIAdapter) ParkingLots(ctx context.Context, keyword string) ([]models.ParkingLot, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return execute[[]models.ParkingLot](h.request(ctx), http.MethodGet, "/api/parking-lots")
	}

	return execute[[]models.ParkingLot](
		h.request(ctx).SetQueryParam("keyword", keyword),
		http.MethodGet, "/api/parking-lots/search",
	)
}

func (h *httpAPIAdapter) ParkingLot(ctx context.Context, id int64) (models.ParkingLot, error) {
	return execute[models.ParkingLot](
		h.request(ctx).SetPathParam("p_id", strconv.FormatInt(id, 10)),
		http.MethodGet, "/api/parking-lots/{p_id}",
	)
}

func (h *httpAPIAdapter) RecommendNearby(ctx context.Context, lat, lng float64) ([]models.RecommendedParkingLot, error) {
	body := models.RecommendationRequest{Latitude: &lat, Longitude: &lng}
	return execute[[]models.RecommendedParkingLot](
		h.request(ctx).SetBody(body),
		http.MethodPost, "/api/parking-lots/recommendations/nearby",
	)
}

func (h *httpAPIAdapter) Bookmarks(ctx context.Context) ([]models.BookmarkView, error) {
	return execute[[]models.BookmarkView](h.request(ctx), http.MethodGet, "/api/bookmarks")
}

func (h *httpAPIAdapter) AddBookmark(ctx context.Context, parkingLotID int64) error {
	_, err := execute[any](
		h.request(ctx).SetBody(models.BookmarkRequest{ParkingLotID: parkingLotID}),
		http.MethodPost, "/api/bookmarks",
	)
	return err
}

func (h *httpAPIAdapter) RemoveBookmark(ctx context.Context, parkingLotID int64) error {
	_, err := execute[any](
		h.request(ctx).SetPathParam("p_id", strconv.FormatInt(parkingLotID, 10)),
		http.MethodDelete, "/api/bookmarks/{p_id}",
	)
	return err
}

func (h *httpAPIAdapter) Ratings(ctx context.Context) ([]models.Rating, error) {
	return execute[[]models.Rating](h.request(ctx), http.MethodGet, "/api/ratings")
}

// RateParkingLot implements [APIAdapter]. A second rating for the same lot
// fails with [ErrAPIConflict].
func (h *httpAPIAdapter) RateParkingLot(ctx context.Context, parkingLotID int64, score float64) (models.Rating, error) {
	body := models.RatingCreateRequest{ParkingLotID: parkingLotID, Score: &score}
	return execute[models.Rating](h.request(ctx).SetBody(body), http.MethodPost, "/api/ratings")
}

func (h *httpAPIAdapter) ServerVersion(ctx context.Context) (models.VersionInfo, error) {
	return execute[models.VersionInfo](h.request(ctx), http.MethodGet, "/api/version")
}
