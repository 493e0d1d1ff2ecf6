package readstore

import (
	"context"

	"estatebook/internal/infra"
	"estatebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityReadStore struct {
	pool *pgxpool.Pool
}

func NewAvailabilityReadStore(pool *pgxpool.Pool) *AvailabilityReadStore {
	return &AvailabilityReadStore{pool: pool}
}

func (r *AvailabilityReadStore) FindActiveIntervals(ctx context.Context, resourceID uuid.UUID) ([]queries.OccupiedInterval, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT lower(stay), upper(stay)
		FROM bookings
		WHERE resource_id = $1 AND status IN ('pending', 'confirmed')
		ORDER BY lower(stay)`,
		resourceID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query occupied intervals", err)
	}
	defer rows.Close()

	var intervals []queries.OccupiedInterval
	for rows.Next() {
		var iv queries.OccupiedInterval
		if err := rows.Scan(&iv.CheckIn, &iv.CheckOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied interval", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupied interval rows", err)
	}
	return intervals, nil
}
