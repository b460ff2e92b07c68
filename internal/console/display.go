package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/meur/arena/internal/models"
)

// PrintTournaments writes tournaments as a table
func PrintTournaments(w io.Writer, tournaments []models.Tournament) {
	if len(tournaments) == 0 {
		fmt.Fprintln(w, "No tournaments match the current filters.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGAME\tSTART\tPRIZE\tPLAYERS\tSTATUS")
	for _, t := range tournaments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			t.ID, t.Name, t.Game, formatDate(t), t.PrizePool, t.Participants, t.Status.Label())
	}
	tw.Flush()
}

// PrintPlayers writes players as a table
func PrintPlayers(w io.Writer, players []models.Player) {
	if len(players) == 0 {
		fmt.Fprintln(w, "No players match the current filters.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tNAME\tCOUNTRY\tGAMES\tRANK\tW-L")
	for _, p := range players {
		fmt.Fprintf(tw, "%s\t%s%s\t%s\t%s\t%s\t%s\t%d-%d\n",
			p.ID, p.Username, verifiedMark(p.Verified), p.DisplayName, p.Country,
			strings.Join(p.Games, ", "), p.Rank, p.Wins, p.Losses)
	}
	tw.Flush()
}

// PrintTeams writes teams as a table
func PrintTeams(w io.Writer, teams []models.Team) {
	if len(teams) == 0 {
		fmt.Fprintln(w, "No teams match the current filters.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGAME\tCOUNTRY\tMEMBERS\tW-L")
	for _, t := range teams {
		fmt.Fprintf(tw, "%s\t%s%s\t%s\t%s\t%d\t%d-%d\n",
			t.ID, t.Name, verifiedMark(t.Verified), t.Game, t.Country, t.Members, t.Wins, t.Losses)
	}
	tw.Flush()
}

// PrintTournament writes the details view of one tournament
func PrintTournament(w io.Writer, t models.Tournament) {
	fmt.Fprintf(w, "%s\n", t.Name)
	fmt.Fprintf(w, "  Game:         %s\n", t.Game)
	fmt.Fprintf(w, "  Starts:       %s\n", formatDate(t))
	fmt.Fprintf(w, "  Prize pool:   %s\n", t.PrizePool)
	fmt.Fprintf(w, "  Participants: %d\n", t.Participants)
	fmt.Fprintf(w, "  Status:       %s\n", t.Status.Label())
}

// PrintPlayer writes the details view of one player
func PrintPlayer(w io.Writer, p models.Player) {
	fmt.Fprintf(w, "%s%s (%s)\n", p.Username, verifiedMark(p.Verified), p.DisplayName)
	fmt.Fprintf(w, "  Country:  %s\n", p.Country)
	fmt.Fprintf(w, "  Games:    %s\n", strings.Join(p.Games, ", "))
	fmt.Fprintf(w, "  Rank:     %s\n", p.Rank)
	fmt.Fprintf(w, "  Record:   %d-%d (%.0f%%)\n", p.Wins, p.Losses, p.WinRate()*100)
	printAchievements(w, p.Achievements)
}

// PrintTeam writes the details view of one team
func PrintTeam(w io.Writer, t models.Team) {
	fmt.Fprintf(w, "%s%s\n", t.Name, verifiedMark(t.Verified))
	fmt.Fprintf(w, "  Game:     %s\n", t.Game)
	fmt.Fprintf(w, "  Country:  %s\n", t.Country)
	fmt.Fprintf(w, "  Members:  %d\n", t.Members)
	fmt.Fprintf(w, "  Record:   %d-%d (%.0f%%)\n", t.Wins, t.Losses, t.WinRate()*100)
	printAchievements(w, t.Achievements)
}

func printAchievements(w io.Writer, achievements []string) {
	if len(achievements) == 0 {
		return
	}
	fmt.Fprintln(w, "  Achievements:")
	for _, a := range achievements {
		fmt.Fprintf(w, "    - %s\n", a)
	}
}

func formatDate(t models.Tournament) string {
	if t.StartDate.IsZero() {
		return "TBD"
	}
	return t.StartDate.Format("2006-01-02")
}

func verifiedMark(verified bool) string {
	if verified {
		return " ✓"
	}
	return ""
}
