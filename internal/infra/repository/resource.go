package repository

import (
	"context"

	"estatebook/internal/domain/resource"
	"estatebook/internal/infra"
	"estatebook/internal/pkg/pgconv"
	"estatebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{pool: pool}
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ResourceSnapshot, error) {
	var (
		snap commands.ResourceSnapshot
		kind string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, kind, name, base_price_cents, max_occupancy, minimum_stay,
		       cleaning_fee_cents, security_deposit_cents
		FROM resources
		WHERE id = $1`,
		id,
	).Scan(
		&snap.ID, &kind, &snap.Name, &snap.BasePriceCents, &snap.MaxOccupancy,
		&snap.MinimumStay, &snap.CleaningFeeCents, &snap.SecurityDepositCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	snap.Kind = resource.Kind(kind)
	return &snap, nil
}
