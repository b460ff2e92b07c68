package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meur/arena/internal/models"
)

// PostgresStore is a catalog source backed by Postgres
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres connects, verifies connectivity and migrates
func NewPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	poolCfg.MaxConns = 4
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}

// Close releases the pool
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS tournaments (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			game TEXT NOT NULL,
			start_date TIMESTAMPTZ,
			prize_pool TEXT NOT NULL DEFAULT '',
			participants INTEGER NOT NULL DEFAULT 0 CHECK (participants >= 0),
			status TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS players (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			username TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			games TEXT[] NOT NULL DEFAULT '{}',
			rank TEXT NOT NULL DEFAULT '',
			wins INTEGER NOT NULL DEFAULT 0 CHECK (wins >= 0),
			losses INTEGER NOT NULL DEFAULT 0 CHECK (losses >= 0),
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			achievements TEXT[] NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS teams (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			game TEXT NOT NULL,
			country TEXT NOT NULL DEFAULT '',
			members INTEGER NOT NULL DEFAULT 0 CHECK (members >= 0),
			wins INTEGER NOT NULL DEFAULT 0 CHECK (wins >= 0),
			losses INTEGER NOT NULL DEFAULT 0 CHECK (losses >= 0),
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			achievements TEXT[] NOT NULL DEFAULT '{}'
		)`,
	}

	for _, m := range migrations {
		if _, err := s.pool.Exec(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Tournaments returns all tournaments in import order
func (s *PostgresStore) Tournaments(ctx context.Context) ([]models.Tournament, error) {
	rows, err := s.pool.Query(ctx, `
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
		var startDate *time.Time
		if err := rows.Scan(&t.ID, &t.Name, &t.Game, &startDate, &t.PrizePool, &t.Participants, &status); err != nil {
			return nil, err
		}
		if t.Status, err = models.ParseStatus(status); err != nil {
			return nil, fmt.Errorf("tournament %s: %w", t.ID, err)
		}
		if startDate != nil {
			t.StartDate = startDate.UTC()
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

// Players returns all players in import order
func (s *PostgresStore) Players(ctx context.Context) ([]models.Player, error) {
	rows, err := s.pool.Query(ctx, `
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
		err := rows.Scan(&p.ID, &p.Username, &p.DisplayName, &p.Country, &p.Games, &p.Rank,
			&p.Wins, &p.Losses, &p.Verified, &p.Achievements)
		if err != nil {
			return nil, err
		}
		players = append(players, p.Normalized())
	}
	return players, rows.Err()
}

// Teams returns all teams in import order
func (s *PostgresStore) Teams(ctx context.Context) ([]models.Team, error) {
	rows, err := s.pool.Query(ctx, `
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
		err := rows.Scan(&t.ID, &t.Name, &t.Game, &t.Country, &t.Members,
			&t.Wins, &t.Losses, &t.Verified, &t.Achievements)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t.Normalized())
	}
	return teams, rows.Err()
}

// Import replaces every catalog with the contents of b in a single transaction
func (s *PostgresStore) Import(ctx context.Context, b models.Bundle) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	batch.Queue("DELETE FROM tournaments")
	batch.Queue("DELETE FROM players")
	batch.Queue("DELETE FROM teams")

	for i, t := range b.Tournaments {
		batch.Queue(`INSERT INTO tournaments (id, position, name, game, start_date, prize_pool, participants, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			t.ID, i, t.Name, t.Game, t.StartDate, t.PrizePool, t.Participants, string(t.Status))
	}
	for i, p := range b.Players {
		batch.Queue(`INSERT INTO players (id, position, username, display_name, country, games, rank, wins, losses, verified, achievements)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			p.ID, i, p.Username, p.DisplayName, p.Country, nonNilList(p.Games), p.Rank,
			p.Wins, p.Losses, p.Verified, nonNilList(p.Achievements))
	}
	for i, t := range b.Teams {
		batch.Queue(`INSERT INTO teams (id, position, name, game, country, members, wins, losses, verified, achievements)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			t.ID, i, t.Name, t.Game, t.Country, t.Members, t.Wins, t.Losses, t.Verified, nonNilList(t.Achievements))
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("import batch: %w", err)
	}
	return tx.Commit(ctx)
}
