package catalog

import (
	"time"

	"github.com/meur/arena/internal/models"
)

// Default returns the built-in placeholder directory content
func Default() models.Bundle {
	return models.Bundle{
		Tournaments: []models.Tournament{
			{ID: "t-fifa24-championship", Name: "FIFA 24 Championship", Game: "FIFA 24",
				StartDate: day(2024, time.March, 15), PrizePool: "$5,000", Participants: 64, Status: models.StatusUpcoming},
			{ID: "t-mlbb-cup", Name: "Mobile Legends Cup", Game: "Mobile Legends",
				StartDate: day(2024, time.March, 20), PrizePool: "$3,000", Participants: 32, Status: models.StatusUpcoming},
			{ID: "t-warzone-battle", Name: "COD Warzone Battle", Game: "COD Warzone",
				StartDate: day(2024, time.March, 25), PrizePool: "$4,000", Participants: 100, Status: models.StatusLive},
			{ID: "t-pubgm-masters", Name: "PUBG Mobile Masters", Game: "PUBG Mobile",
				StartDate: day(2024, time.February, 10), PrizePool: "$2,500", Participants: 48, Status: models.StatusCompleted},
			{ID: "t-fifa24-weekend-cup", Name: "FIFA 24 Weekend Cup", Game: "FIFA 24",
				StartDate: day(2024, time.April, 6), PrizePool: "$1,000", Participants: 32, Status: models.StatusUpcoming},
		},
		Players: []models.Player{
			{ID: "p-1", Username: "ProGamer123", DisplayName: "John Doe", Country: "Nigeria",
				Games: []string{"FIFA 24", "COD Warzone"}, Rank: "Diamond", Wins: 150, Losses: 50, Verified: true,
				Achievements: []string{"Tournament Winner", "Top 10 Player"}},
			{ID: "p-2", Username: "EsportsKing", DisplayName: "Jane Smith", Country: "Ghana",
				Games: []string{"Mobile Legends", "PUBG Mobile"}, Rank: "Master", Wins: 200, Losses: 75, Verified: true,
				Achievements: []string{"MVP", "Rising Star"}},
			{ID: "p-3", Username: "SharpShooter", DisplayName: "Kwame Mensah", Country: "Ghana",
				Games: []string{"COD Warzone"}, Rank: "Platinum", Wins: 90, Losses: 60,
				Achievements: []string{}},
			{ID: "p-4", Username: "NileStriker", DisplayName: "Amina Hassan", Country: "Egypt",
				Games: []string{"FIFA 24"}, Rank: "Gold", Wins: 40, Losses: 35,
				Achievements: []string{"Rising Star"}},
		},
		Teams: []models.Team{
			{ID: "team-1", Name: "Team Phoenix", Game: "FIFA 24", Country: "Nigeria", Members: 5,
				Wins: 45, Losses: 15, Verified: true, Achievements: []string{"National Champions", "Regional Winners"}},
			{ID: "team-2", Name: "Dragon Slayers", Game: "Mobile Legends", Country: "Ghana", Members: 6,
				Wins: 38, Losses: 12, Verified: true, Achievements: []string{"Tournament Winners"}},
			{ID: "team-3", Name: "Savanna Wolves", Game: "COD Warzone", Country: "Kenya", Members: 4,
				Wins: 22, Losses: 18, Achievements: []string{}},
			{ID: "team-4", Name: "Cape Titans", Game: "PUBG Mobile", Country: "South Africa", Members: 4,
				Wins: 30, Losses: 10, Verified: true, Achievements: []string{"Regional Winners"}},
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
