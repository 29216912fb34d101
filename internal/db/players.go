// internal/db/players.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/baddersbot/portal/internal/models"
)

// AvailabilitySnapshot pairs a player with their saved availability dates.
type AvailabilitySnapshot struct {
	PlayerID   string
	PlayerName string
	Dates      []time.Time
}

// ListPlayers returns every player ordered by name.
func (db *DB) ListPlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, grade, availability_note, payment_status
		FROM players
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	return players, nil
}

// GetPlayer returns the player with the given id, or sql.ErrNoRows.
func (db *DB) GetPlayer(ctx context.Context, id string) (models.Player, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, name, grade, availability_note, payment_status
		FROM players
		WHERE id = ?`, id)
	return scanPlayer(row)
}

// GetAvailability returns the player's saved dates, deduplicated and sorted
// ascending. Unknown players and players with no dates both yield an empty
// slice.
func (db *DB) GetAvailability(ctx context.Context, playerID string) ([]time.Time, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT available_date FROM availabilities WHERE player_id = ?`, playerID)
	if err != nil {
		return nil, fmt.Errorf("loading availability for %s: %w", playerID, err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	var dates []time.Time
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("loading availability for %s: %w", playerID, err)
		}
		if _, ok := seen[value]; ok {
			continue
		}
		day, err := time.Parse(models.DateLayout, value)
		if err != nil {
			return nil, fmt.Errorf("stored date %q for %s: %w", value, playerID, err)
		}
		seen[value] = struct{}{}
		dates = append(dates, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading availability for %s: %w", playerID, err)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// SetAvailability replaces the player's entire date set in one transaction:
// delete all, then insert the deduplicated sorted set. An empty input clears
// the player's availability.
func (db *DB) SetAvailability(ctx context.Context, playerID string, dates []time.Time) error {
	iso := make(map[string]struct{}, len(dates))
	for _, day := range dates {
		iso[day.Format(models.DateLayout)] = struct{}{}
	}
	ordered := make([]string, 0, len(iso))
	for value := range iso {
		ordered = append(ordered, value)
	}
	sort.Strings(ordered)

	return db.RunInTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM availabilities WHERE player_id = ?`, playerID); err != nil {
			return fmt.Errorf("clearing availability for %s: %w", playerID, err)
		}
		for _, value := range ordered {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO availabilities (player_id, available_date) VALUES (?, ?)`,
				playerID, value); err != nil {
				return fmt.Errorf("saving availability for %s: %w", playerID, err)
			}
		}
		return nil
	})
}

// ListAvailabilitySnapshots returns every player that has at least one saved
// date, in name order, each with their sorted date list.
func (db *DB) ListAvailabilitySnapshots(ctx context.Context) ([]AvailabilitySnapshot, error) {
	players, err := db.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	var snapshots []AvailabilitySnapshot
	for _, player := range players {
		dates, err := db.GetAvailability(ctx, player.ID)
		if err != nil {
			return nil, err
		}
		if len(dates) == 0 {
			continue
		}
		snapshots = append(snapshots, AvailabilitySnapshot{
			PlayerID:   player.ID,
			PlayerName: player.Name,
			Dates:      dates,
		})
	}
	return snapshots, nil
}

// SeedPlayers bulk-loads the given roster if the players table is empty.
// It never overwrites existing data.
func (db *DB) SeedPlayers(ctx context.Context, records []models.PlayerRecord) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&count); err != nil {
		return fmt.Errorf("checking player table: %w", err)
	}
	if count > 0 || len(records) == 0 {
		return nil
	}

	return db.RunInTx(ctx, func(tx *sql.Tx) error {
		for _, record := range records {
			player := record.Player()
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO players (id, name, grade, availability_note, payment_status)
				VALUES (?, ?, ?, ?, ?)`,
				player.ID, player.Name, player.Grade, player.AvailabilityNote, string(player.PaymentStatus)); err != nil {
				return fmt.Errorf("seeding player %s: %w", player.ID, err)
			}
		}
		return nil
	})
}

// UpsertPlayers inserts or updates players by id in one transaction.
func (db *DB) UpsertPlayers(ctx context.Context, records []models.PlayerRecord) error {
	return db.RunInTx(ctx, func(tx *sql.Tx) error {
		for _, record := range records {
			player := record.Player()
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO players (id, name, grade, availability_note, payment_status)
				VALUES (?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					name = excluded.name,
					grade = excluded.grade,
					availability_note = excluded.availability_note,
					payment_status = excluded.payment_status`,
				player.ID, player.Name, player.Grade, player.AvailabilityNote, string(player.PaymentStatus)); err != nil {
				return fmt.Errorf("upserting player %s: %w", player.ID, err)
			}
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (models.Player, error) {
	var player models.Player
	var status string
	if err := row.Scan(&player.ID, &player.Name, &player.Grade, &player.AvailabilityNote, &status); err != nil {
		return models.Player{}, err
	}
	player.PaymentStatus = models.ParsePaymentStatus(status)
	return player, nil
}
