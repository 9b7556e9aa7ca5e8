package service

import (
	"cmp"
	"math"
	"slices"

	"github.com/MKhiriev/go-parking-mate/models"
)

// recommendationRadius is the half side, in degrees, of the square around
// the requested point that a lot must fall strictly inside.
const recommendationRadius = 0.1

// recommend keeps the lots strictly inside the box around (lat, lng),
// scores each one by factor and orders them by score, highest first.
// Lots with equal scores keep their input order.
func recommend(lots []models.ParkingLot, lat, lng float64, factor models.PreferredFactor) []models.RecommendedParkingLot {
	result := make([]models.RecommendedParkingLot, 0)
	for _, lot := range lots {
		if !withinRadius(lot, lat, lng) {
			continue
		}
		result = append(result, models.RecommendedParkingLot{
			ParkingLot:          lot,
			RecommendationScore: lot.Score(factor),
		})
	}

	slices.SortStableFunc(result, func(a, b models.RecommendedParkingLot) int {
		return cmp.Compare(b.RecommendationScore, a.RecommendationScore)
	})
	return result
}

func withinRadius(lot models.ParkingLot, lat, lng float64) bool {
	return math.Abs(lot.Latitude-lat) < recommendationRadius &&
		math.Abs(lot.Longitude-lng) < recommendationRadius
}
