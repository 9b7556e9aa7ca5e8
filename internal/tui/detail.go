package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-parking-mate/models"
)

func renderLotDetail(row lotRow, bookmarked bool, rating *models.Rating) string {
	lot := row.lot

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Name:        %s\n", lot.Name))
	b.WriteString(fmt.Sprintf("Address:     %s\n", lot.Address))
	b.WriteString(fmt.Sprintf("Fee:         %s\n", formatFee(lot.Fee)))
	b.WriteString(fmt.Sprintf("Free spaces: %s\n", freeSpaces(lot)))
	b.WriteString(fmt.Sprintf("Avg rating:  %s\n", formatRating(lot.AvgRating)))
	b.WriteString(fmt.Sprintf("Location:    %.5f, %.5f\n", lot.Latitude, lot.Longitude))
	if row.score != nil {
		b.WriteString(fmt.Sprintf("Match score: %.2f\n", *row.score))
	}

	b.WriteString("\n")
	if bookmarked {
		b.WriteString("Bookmarked:  yes\n")
	} else {
		b.WriteString("Bookmarked:  no\n")
	}
	if rating != nil {
		b.WriteString(fmt.Sprintf("Your rating: %.1f\n", rating.Score))
	} else {
		b.WriteString("Your rating: -\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
