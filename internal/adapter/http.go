package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-parking-mate/internal/config"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/utils"
	"github.com/MKhiriev/go-parking-mate/models"
	"github.com/goccy/go-json"
)

const (
	recommendPath          = "/recommend"
	defaultParkingDuration = 120
)

type httpScoringAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPScoringAdapter constructs an HTTP/REST implementation of
// [ScoringAdapter]. It normalises and validates the base URL from
// adapterCfg.ScoringAddress and configures the underlying HTTP client with
// the resolved base URL and request timeout.
//
// Returns an error wrapping [ErrEmptyAddress] if no address is configured, or
// a parse error if the address is not a valid URL.
func NewHTTPScoringAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ScoringAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ScoringAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter scoring address: %w", err)
	}

	client := utils.NewHTTPClientWithBaseURL(baseURL, adapterCfg.RequestTimeout)
	client.
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &httpScoringAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type scoreCandidate struct {
	Name    string  `json:"p_id"`
	Review  float64 `json:"review"`
	Weekday int     `json:"weekday"`
	Hour    int     `json:"hour"`
}

type scorePayload struct {
	Candidates      []scoreCandidate `json:"candidates"`
	ParkingDuration int              `json:"parking_duration"`
	BaseLat         *float64         `json:"base_lat,omitempty"`
	BaseLon         *float64         `json:"base_lon,omitempty"`
}

// scoreRow is one element of the module's response array. The module keys
// its scenarios in Korean.
type scoreRow struct {
	Name       string  `json:"p_id"`
	Congestion float64 `json:"혼잡도우선"`
	Distance   float64 `json:"거리우선"`
	Fee        float64 `json:"요금우선"`
	Rating     float64 `json:"리뷰우선"`
}

// Score implements [ScoringAdapter]. It POSTs the candidates to
// POST /recommend and maps each returned row back to the lots carrying that
// name. An empty req.Lots returns (nil, nil) without calling the module.
func (h *httpScoringAdapter) Score(ctx context.Context, req ScoreRequest) ([]models.LotScore, error) {
	if len(req.Lots) == 0 {
		return nil, nil
	}

	payload := buildPayload(req)

	var rows []scoreRow
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&rows).
		Post(recommendPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScoringFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Int("status", resp.StatusCode()).Msg("scoring module returned an error")
		return nil, err
	}

	scores := mapRows(req.Lots, rows)
	logger.FromContext(ctx).Debug().
		Int("candidates", len(payload.Candidates)).
		Int("scored", len(scores)).
		Msg("scoring module answered")

	return scores, nil
}

func buildPayload(req ScoreRequest) scorePayload {
	duration := req.ParkingDuration
	if duration <= 0 {
		duration = defaultParkingDuration
	}

	candidates := make([]scoreCandidate, 0, len(req.Lots))
	for _, lot := range req.Lots {
		candidates = append(candidates, scoreCandidate{
			Name:    lot.Name,
			Review:  lot.AvgRating,
			Weekday: req.Weekday,
			Hour:    req.Hour,
		})
	}

	return scorePayload{
		Candidates:      candidates,
		ParkingDuration: duration,
		BaseLat:         req.BaseLat,
		BaseLon:         req.BaseLon,
	}
}

// mapRows resolves module rows to lot ids. Names are matched exactly; a name
// shared by several lots scores all of them.
func mapRows(lots []models.ParkingLot, rows []scoreRow) []models.LotScore {
	idsByName := make(map[string][]int64, len(lots))
	for _, lot := range lots {
		idsByName[lot.Name] = append(idsByName[lot.Name], lot.ID)
	}

	scores := make([]models.LotScore, 0, len(rows))
	for _, row := range rows {
		for _, id := range idsByName[row.Name] {
			scores = append(scores, models.LotScore{
				ParkingLotID: id,
				Fee:          row.Fee,
				Distance:     row.Distance,
				Rating:       row.Rating,
				Congestion:   row.Congestion,
			})
		}
	}
	return scores
}
