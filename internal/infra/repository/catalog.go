package repository

import (
	"context"

	"estatebook/internal/infra"
	"estatebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepository resolves add-on and activity selections against the
// catalog. The engine reads current prices here once, at selection time; the
// booking stores the snapshot.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) FindAddOns(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]commands.CatalogItemSnapshot, error) {
	return r.findItems(ctx, ids, "add_on")
}

func (r *CatalogRepository) FindActivities(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]commands.CatalogItemSnapshot, error) {
	return r.findItems(ctx, ids, "activity")
}

func (r *CatalogRepository) findItems(ctx context.Context, ids []uuid.UUID, kind string) (map[uuid.UUID]commands.CatalogItemSnapshot, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]commands.CatalogItemSnapshot{}, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, unit_price_cents, active
		FROM catalog_items
		WHERE kind = $1 AND id = ANY($2)`,
		kind, ids,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query catalog items", err)
	}
	defer rows.Close()

	items := make(map[uuid.UUID]commands.CatalogItemSnapshot, len(ids))
	for rows.Next() {
		var item commands.CatalogItemSnapshot
		if err := rows.Scan(&item.ID, &item.Name, &item.UnitPriceCents, &item.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog item", err)
		}
		items[item.ID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read catalog items", err)
	}
	return items, nil
}
