// Package store archives team-game records in PostgreSQL and serves them
// back as a game source.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

//go:embed migrations/001_team_game_stats.sql
var schema string

// Postgres implements RecordArchive and GameSource over team_game_stats
type Postgres struct {
	db *sql.DB
}

var (
	_ contracts.RecordArchive = (*Postgres)(nil)
	_ contracts.GameSource    = (*Postgres)(nil)
)

// NewPostgres opens the archive database and checks the connection
func NewPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{db: db}, nil
}

// Migrate creates the archive table if it does not exist
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Close closes the database connection
func (p *Postgres) Close() error {
	return p.db.Close()
}

// SaveGames upserts records; a re-fetched game replaces the stored one
func (p *Postgres) SaveGames(ctx context.Context, records []models.GameStatRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO team_game_stats (
			event_id, team, year, week, opponent, site,
			points_for, points_against, own_stats, opp_stats
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (event_id, team) DO UPDATE SET
			year = EXCLUDED.year,
			week = EXCLUDED.week,
			opponent = EXCLUDED.opponent,
			site = EXCLUDED.site,
			points_for = EXCLUDED.points_for,
			points_against = EXCLUDED.points_against,
			own_stats = EXCLUDED.own_stats,
			opp_stats = EXCLUDED.opp_stats,
			fetched_at = now()
	`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		own, err := json.Marshal(r.Own)
		if err != nil {
			return fmt.Errorf("marshal own stats: %w", err)
		}
		opp, err := json.Marshal(r.Opp)
		if err != nil {
			return fmt.Errorf("marshal opp stats: %w", err)
		}

		if _, err := stmt.ExecContext(ctx,
			r.EventID, r.Team, r.Year, r.Week, r.Opponent, string(r.Site),
			r.PointsFor, r.PointsAgainst, own, opp,
		); err != nil {
			return fmt.Errorf("upsert %s/%s: %w", r.EventID, r.Team, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// FetchGames reads archived records for one week. Only games archived by an
// earlier run are returned.
func (p *Postgres) FetchGames(ctx context.Context, year, week int, teams []string) ([]models.GameStatRecord, error) {
	query := `
		SELECT event_id, team, year, week, opponent, site,
		       points_for, points_against, own_stats, opp_stats
		FROM team_game_stats
		WHERE year = $1
		  AND week = $2
		  AND (($3 IS FALSE) OR team = ANY($4))
		ORDER BY event_id, team
	`

	rows, err := p.db.QueryContext(ctx, query, year, week, len(teams) > 0, pq.Array(teams))
	if err != nil {
		return nil, fmt.Errorf("query team_game_stats: %w", err)
	}
	defer rows.Close()

	var records []models.GameStatRecord
	for rows.Next() {
		var (
			r        models.GameStatRecord
			site     string
			own, opp []byte
		)
		if err := rows.Scan(
			&r.EventID, &r.Team, &r.Year, &r.Week, &r.Opponent, &site,
			&r.PointsFor, &r.PointsAgainst, &own, &opp,
		); err != nil {
			return nil, fmt.Errorf("scan team_game_stats: %w", err)
		}
		r.Site = models.Site(site)
		if err := json.Unmarshal(own, &r.Own); err != nil {
			return nil, fmt.Errorf("decode own stats %s/%s: %w", r.EventID, r.Team, err)
		}
		if err := json.Unmarshal(opp, &r.Opp); err != nil {
			return nil, fmt.Errorf("decode opp stats %s/%s: %w", r.EventID, r.Team, err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}
