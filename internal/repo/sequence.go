package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SequenceRepo hands out per-day order number sequences. Scanning orders for
// the highest number issued today duplicates under concurrency, so this
// increments a dedicated counter row atomically instead.
type SequenceRepo struct {
	store
}

func NewSequenceRepo(db *sqlx.DB) *SequenceRepo {
	return &SequenceRepo{store: newStore(db)}
}

// Next returns the next sequence for the given day, starting at 1. The first
// call after midnight inserts a fresh row, so day rollover needs no
// coordination.
func (r *SequenceRepo) Next(ctx context.Context, day time.Time) (int, error) {
	const query = `
		INSERT INTO order_number_seq (day, last_seq) VALUES ($1, 1)
		ON CONFLICT (day) DO UPDATE SET last_seq = order_number_seq.last_seq + 1
		RETURNING last_seq`

	var seq int
	if err := r.getContext(ctx, &seq, query, day.UTC().Truncate(24*time.Hour)); err != nil {
		return 0, fmt.Errorf("failed to advance order number sequence: %w", err)
	}
	return seq, nil
}
