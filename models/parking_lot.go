package models

// ParkingLot is a lot record as persisted in the parking lots collection.
//
// The AIRecommendScore* fields are produced offline by the scoring module
// and may be absent. AvgRating is derived from the ratings collection.
type ParkingLot struct {
	ID        int64   `json:"p_id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Fee       int64   `json:"fee"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	AvgRating float64 `json:"avg_rating"`

	TotalSpaces     int64 `json:"total_spaces"`
	CurrentVehicles int64 `json:"current_vehicles"`

	AIRecommendScoreFee        *float64 `json:"ai_recommend_score_fee,omitempty"`
	AIRecommendScoreDistance   *float64 `json:"ai_recommend_score_distance,omitempty"`
	AIRecommendScoreRating     *float64 `json:"ai_recommend_score_rating,omitempty"`
	AIRecommendScoreCongestion *float64 `json:"ai_recommend_score_congestion,omitempty"`
}

// Score returns the precomputed score for factor, or 0 when the lot has no
// value for it or the factor is unknown.
func (p ParkingLot) Score(factor PreferredFactor) float64 {
	var v *float64
	switch factor {
	case FactorFee:
		v = p.AIRecommendScoreFee
	case FactorDistance:
		v = p.AIRecommendScoreDistance
	case FactorRating:
		v = p.AIRecommendScoreRating
	case FactorCongestion:
		v = p.AIRecommendScoreCongestion
	}
	if v == nil {
		return 0
	}
	return *v
}

// SetScores overwrites the four precomputed score fields.
func (p *ParkingLot) SetScores(s LotScore) {
	fee, distance, rating, congestion := s.Fee, s.Distance, s.Rating, s.Congestion
	p.AIRecommendScoreFee = &fee
	p.AIRecommendScoreDistance = &distance
	p.AIRecommendScoreRating = &rating
	p.AIRecommendScoreCongestion = &congestion
}

// RecommendedParkingLot is a lot annotated with the score that ranked it.
type RecommendedParkingLot struct {
	ParkingLot
	RecommendationScore float64 `json:"recommendationScore"`
}

// ParkingLotUpdate is an admin patch keyed by ID. Nil fields are left
// untouched.
type ParkingLotUpdate struct {
	ID              int64    `json:"p_id" validate:"required,gt=0"`
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Address         *string  `json:"address,omitempty" validate:"omitempty,min=1"`
	Fee             *int64   `json:"fee,omitempty" validate:"omitempty,gte=0"`
	Latitude        *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude       *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	TotalSpaces     *int64   `json:"total_spaces,omitempty" validate:"omitempty,gte=0"`
	CurrentVehicles *int64   `json:"current_vehicles,omitempty" validate:"omitempty,gte=0"`
}

// Apply copies every non-nil field of u onto p.
func (u ParkingLotUpdate) Apply(p *ParkingLot) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.Fee != nil {
		p.Fee = *u.Fee
	}
	if u.Latitude != nil {
		p.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		p.Longitude = *u.Longitude
	}
	if u.TotalSpaces != nil {
		p.TotalSpaces = *u.TotalSpaces
	}
	if u.CurrentVehicles != nil {
		p.CurrentVehicles = *u.CurrentVehicles
	}
}

// LotScore is one row of scoring module output for a single lot.
type LotScore struct {
	ParkingLotID int64
	Fee          float64
	Distance     float64
	Rating       float64
	Congestion   float64
}
