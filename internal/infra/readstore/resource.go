package readstore

import (
	"context"

	"estatebook/internal/infra"
	"estatebook/internal/pkg/pgconv"
	"estatebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceReadStore struct {
	pool *pgxpool.Pool
}

func NewResourceReadStore(pool *pgxpool.Pool) *ResourceReadStore {
	return &ResourceReadStore{pool: pool}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	var view queries.ResourceView
	err := r.pool.QueryRow(ctx, `
		SELECT id, kind, name, base_price_cents, max_occupancy, minimum_stay,
		       cleaning_fee_cents, security_deposit_cents
		FROM resources
		WHERE id = $1`,
		id,
	).Scan(
		&view.ID, &view.Kind, &view.Name, &view.BasePriceCents, &view.MaxOccupancy,
		&view.MinimumStay, &view.CleaningFeeCents, &view.SecurityDepositCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}
	return &view, nil
}
