package memory

import (
	"time"

	"github.com/leaguedesk/leaguedesk/internal/domain/sport"
)

const (
	SportIDIceHockey = "sport-ice-hockey"
	SportIDBaseball  = "sport-baseball"
)

func SeedSports() []sport.Sport {
	createdAt := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	return []sport.Sport{
		{
			ID:          SportIDIceHockey,
			Name:        "Ice Hockey",
			Slug:        "ice-hockey",
			Description: "Indoor ice hockey leagues and tournaments",
			CreatedAt:   createdAt,
		},
		{
			ID:          SportIDBaseball,
			Name:        "Baseball",
			Slug:        "baseball",
			Description: "Recreational and competitive baseball leagues",
			CreatedAt:   createdAt,
		},
	}
}
