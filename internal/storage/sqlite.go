package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/meur/arena/internal/models"
)

// SQLiteStore is a catalog source backed by SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (and migrates) the SQLite database at dbPath
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// migrate runs database migrations
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS tournaments (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			game TEXT NOT NULL,
			start_date DATETIME,
			prize_pool TEXT,
			participants INTEGER NOT NULL DEFAULT 0 CHECK (participants >= 0),
			status TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS players (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			username TEXT NOT NULL,
			display_name TEXT,
			country TEXT,
			games TEXT,
			rank TEXT,
			wins INTEGER NOT NULL DEFAULT 0 CHECK (wins >= 0),
			losses INTEGER NOT NULL DEFAULT 0 CHECK (losses >= 0),
			verified INTEGER DEFAULT 0,
			achievements TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS teams (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			game TEXT NOT NULL,
			country TEXT,
			members INTEGER NOT NULL DEFAULT 0 CHECK (members >= 0),
			wins INTEGER NOT NULL DEFAULT 0 CHECK (wins >= 0),
			losses INTEGER NOT NULL DEFAULT 0 CHECK (losses >= 0),
			verified INTEGER DEFAULT 0,
			achievements TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tournaments_position ON tournaments(position)`,
		`CREATE INDEX IF NOT EXISTS idx_players_position ON players(position)`,
		`CREATE INDEX IF NOT EXISTS idx_teams_position ON teams(position)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// --- Tournaments ---

// Tournaments returns all tournaments in import order
func (s *SQLiteStore) Tournaments(ctx context.Context) ([]models.Tournament, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, game, start_date, prize_pool, participants, status
		FROM tournaments ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := []models.Tournament{}
	for rows.Next() {
		var t models.Tournament
		var status string
		var startDate sql.NullTime
		var prizePool sql.NullString
		err := rows.Scan(&t.ID, &t.Name, &t.Game, &startDate, &prizePool, &t.Participants, &status)
		if err != nil {
			return nil, err
		}
		if t.Status, err = models.ParseStatus(status); err != nil {
			return nil, fmt.Errorf("tournament %s: %w", t.ID, err)
		}
		t.StartDate = startDate.Time
		t.PrizePool = prizePool.String
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

// --- Players ---

// Players returns all players in import order
func (s *SQLiteStore) Players(ctx context.Context) ([]models.Player, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, display_name, country, games, rank, wins, losses, verified, achievements
		FROM players ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		var p models.Player
		var displayName, country, games, rank, achievements sql.NullString
		err := rows.Scan(&p.ID, &p.Username, &displayName, &country, &games, &rank,
			&p.Wins, &p.Losses, &p.Verified, &achievements)
		if err != nil {
			return nil, err
		}
		p.DisplayName = displayName.String
		p.Country = country.String
		p.Rank = rank.String
		if p.Games, err = decodeList(games); err != nil {
			return nil, fmt.Errorf("player %s games: %w", p.ID, err)
		}
		if p.Achievements, err = decodeList(achievements); err != nil {
			return nil, fmt.Errorf("player %s achievements: %w", p.ID, err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// --- Teams ---

// Teams returns all teams in import order
func (s *SQLiteStore) Teams(ctx context.Context) ([]models.Team, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, game, country, members, wins, losses, verified, achievements
		FROM teams ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		var t models.Team
		var country, achievements sql.NullString
		err := rows.Scan(&t.ID, &t.Name, &t.Game, &country, &t.Members,
			&t.Wins, &t.Losses, &t.Verified, &achievements)
		if err != nil {
			return nil, err
		}
		t.Country = country.String
		if t.Achievements, err = decodeList(achievements); err != nil {
			return nil, fmt.Errorf("team %s achievements: %w", t.ID, err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// --- Import ---

// Import replaces every catalog with the contents of b in a single transaction
func (s *SQLiteStore) Import(ctx context.Context, b models.Bundle) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"tournaments", "players", "teams"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := importTournaments(ctx, tx, b.Tournaments); err != nil {
		return err
	}
	if err := importPlayers(ctx, tx, b.Players); err != nil {
		return err
	}
	if err := importTeams(ctx, tx, b.Teams); err != nil {
		return err
	}

	return tx.Commit()
}

func importTournaments(ctx context.Context, tx *sql.Tx, tournaments []models.Tournament) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tournaments (id, position, name, game, start_date, prize_pool, participants, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range tournaments {
		_, err := stmt.ExecContext(ctx, t.ID, i, t.Name, t.Game, t.StartDate, t.PrizePool, t.Participants, string(t.Status))
		if err != nil {
			return fmt.Errorf("insert tournament %s: %w", t.ID, err)
		}
	}
	return nil
}

func importPlayers(ctx context.Context, tx *sql.Tx, players []models.Player) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO players (id, position, username, display_name, country, games, rank, wins, losses, verified, achievements)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range players {
		games, _ := json.Marshal(nonNilList(p.Games))
		achievements, _ := json.Marshal(nonNilList(p.Achievements))
		_, err := stmt.ExecContext(ctx, p.ID, i, p.Username, p.DisplayName, p.Country, string(games),
			p.Rank, p.Wins, p.Losses, p.Verified, string(achievements))
		if err != nil {
			return fmt.Errorf("insert player %s: %w", p.ID, err)
		}
	}
	return nil
}

func importTeams(ctx context.Context, tx *sql.Tx, teams []models.Team) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO teams (id, position, name, game, country, members, wins, losses, verified, achievements)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range teams {
		achievements, _ := json.Marshal(nonNilList(t.Achievements))
		_, err := stmt.ExecContext(ctx, t.ID, i, t.Name, t.Game, t.Country, t.Members,
			t.Wins, t.Losses, t.Verified, string(achievements))
		if err != nil {
			return fmt.Errorf("insert team %s: %w", t.ID, err)
		}
	}
	return nil
}

func decodeList(raw sql.NullString) ([]string, error) {
	out := []string{}
	if !raw.Valid || raw.String == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func nonNilList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
