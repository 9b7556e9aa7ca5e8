package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-parking-mate/models"
)

const nameColWidth = 24

// lotRow is one line of the lot table. score is set only for
// recommendation results.
type lotRow struct {
	lot   models.ParkingLot
	score *float64
}

func rowsFromLots(lots []models.ParkingLot) []lotRow {
	rows := make([]lotRow, 0, len(lots))
	for _, lot := range lots {
		rows = append(rows, lotRow{lot: lot})
	}
	return rows
}

func rowsFromRecommendations(lots []models.RecommendedParkingLot) []lotRow {
	rows := make([]lotRow, 0, len(lots))
	for _, rec := range lots {
		score := rec.RecommendationScore
		rows = append(rows, lotRow{lot: rec.ParkingLot, score: &score})
	}
	return rows
}

func freeSpaces(lot models.ParkingLot) string {
	if lot.TotalSpaces == 0 {
		return "-"
	}
	free := lot.TotalSpaces - lot.CurrentVehicles
	if free < 0 {
		free = 0
	}
	return fmt.Sprintf("%d/%d", free, lot.TotalSpaces)
}

func renderLotTable(rows []lotRow, idx int, bookmarks map[int64]bool) string {
	withScore := len(rows) > 0 && rows[0].score != nil

	var b strings.Builder
	header := fmt.Sprintf("  %-5s │ %s │ %-10s │ %-6s │ %-9s", "ID", padRight("Name", nameColWidth), "Fee", "Rating", "Free")
	if withScore {
		header += " │ Score"
	}
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 70))
	b.WriteString("\n")

	for i, row := range rows {
		cursor := " "
		if i == idx {
			cursor = ">"
		}
		mark := " "
		if bookmarks[row.lot.ID] {
			mark = "*"
		}

		line := fmt.Sprintf("%s%s%-5d │ %s │ %-10s │ %-6s │ %-9s",
			cursor, mark, row.lot.ID,
			padRight(fitText(row.lot.Name, nameColWidth), nameColWidth),
			formatFee(row.lot.Fee), formatRating(row.lot.AvgRating), freeSpaces(row.lot),
		)
		if withScore {
			line += fmt.Sprintf(" │ %.2f", *row.score)
		}
		if i == idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
