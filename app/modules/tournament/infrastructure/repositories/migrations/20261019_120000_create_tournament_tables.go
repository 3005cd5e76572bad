package tournamentmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating players, matches and match_participants tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS players (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create players table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS matches (
					id BIGSERIAL PRIMARY KEY,
					winner_id BIGINT NOT NULL REFERENCES players(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_matches_winner_id ON matches(winner_id);
			`); err != nil {
				return fmt.Errorf("failed to create matches table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS match_participants (
					match_id BIGINT NOT NULL REFERENCES matches(id),
					player_id BIGINT NOT NULL REFERENCES players(id),
					PRIMARY KEY (match_id, player_id)
				);
				CREATE INDEX IF NOT EXISTS idx_match_participants_player_id ON match_participants(player_id);
			`); err != nil {
				return fmt.Errorf("failed to create match_participants table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping tournament tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS match_participants;
				DROP TABLE IF EXISTS matches;
				DROP TABLE IF EXISTS players;
			`); err != nil {
				return fmt.Errorf("failed to drop tournament tables: %w", err)
			}
			return nil
		})
	})
}
