package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/augmarket/internal/model"
)

// AugmentationRepository manages character_augmentations and
// character_queued_augmentations tables.
type AugmentationRepository struct {
	db *pgxpool.Pool
}

// NewAugmentationRepository creates a new AugmentationRepository.
func NewAugmentationRepository(db *pgxpool.Pool) *AugmentationRepository {
	return &AugmentationRepository{db: db}
}

// LoadByCharacterID loads owned and queued augmentations of a character in
// their original order. Both tables are queried concurrently.
func (r *AugmentationRepository) LoadByCharacterID(ctx context.Context, charID int64) ([]model.OwnedAugmentation, []model.QueuedAugmentation, error) {
	var (
		owned  []model.OwnedAugmentation
		queued []model.QueuedAugmentation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		owned, err = r.loadOwned(gctx, charID)
		return err
	})
	g.Go(func() error {
		var err error
		queued, err = r.loadQueued(gctx, charID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return owned, queued, nil
}

func (r *AugmentationRepository) loadOwned(ctx context.Context, charID int64) ([]model.OwnedAugmentation, error) {
	query := `
		SELECT name, level
		FROM character_augmentations
		WHERE character_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, charID)
	if err != nil {
		return nil, fmt.Errorf("querying augmentations for character %d: %w", charID, err)
	}
	defer rows.Close()

	var owned []model.OwnedAugmentation
	for rows.Next() {
		var o model.OwnedAugmentation
		if err := rows.Scan(&o.Name, &o.Level); err != nil {
			return nil, fmt.Errorf("scanning augmentation row: %w", err)
		}
		owned = append(owned, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating augmentation rows: %w", err)
	}
	return owned, nil
}

func (r *AugmentationRepository) loadQueued(ctx context.Context, charID int64) ([]model.QueuedAugmentation, error) {
	query := `
		SELECT name
		FROM character_queued_augmentations
		WHERE character_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, charID)
	if err != nil {
		return nil, fmt.Errorf("querying queued augmentations for character %d: %w", charID, err)
	}
	defer rows.Close()

	var queued []model.QueuedAugmentation
	for rows.Next() {
		var q model.QueuedAugmentation
		if err := rows.Scan(&q.Name); err != nil {
			return nil, fmt.Errorf("scanning queued augmentation row: %w", err)
		}
		queued = append(queued, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating queued augmentation rows: %w", err)
	}
	return queued, nil
}

// SaveAllTx replaces all augmentation records of a character within an
// existing transaction.
func (r *AugmentationRepository) SaveAllTx(ctx context.Context, tx pgx.Tx, charID int64, owned []model.OwnedAugmentation, queued []model.QueuedAugmentation) error {
	if _, err := tx.Exec(ctx, `DELETE FROM character_augmentations WHERE character_id = $1`, charID); err != nil {
		return fmt.Errorf("deleting existing augmentations: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM character_queued_augmentations WHERE character_id = $1`, charID); err != nil {
		return fmt.Errorf("deleting existing queued augmentations: %w", err)
	}

	for i, o := range owned {
		if _, err := tx.Exec(ctx,
			`INSERT INTO character_augmentations (character_id, name, level, position) VALUES ($1, $2, $3, $4)`,
			charID, o.Name, o.Level, i,
		); err != nil {
			return fmt.Errorf("inserting augmentation %q: %w", o.Name, err)
		}
	}
	for i, q := range queued {
		if _, err := tx.Exec(ctx,
			`INSERT INTO character_queued_augmentations (character_id, position, name) VALUES ($1, $2, $3)`,
			charID, i, q.Name,
		); err != nil {
			return fmt.Errorf("inserting queued augmentation %q: %w", q.Name, err)
		}
	}
	return nil
}

// Save saves all augmentation records using a standalone transaction.
func (r *AugmentationRepository) Save(ctx context.Context, charID int64, owned []model.OwnedAugmentation, queued []model.QueuedAugmentation) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("augmentation rollback failed", "characterID", charID, "error", err)
		}
	}()

	if err := r.SaveAllTx(ctx, tx, charID, owned, queued); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing augmentations save: %w", err)
	}
	return nil
}
