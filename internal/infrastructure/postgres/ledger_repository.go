package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo libro de movimientos sobre PostgreSQL. Solo INSERT y lecturas.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// CreateMovement persiste la cabecera con su origen tipado (source_kind, source_id).
func (r *LedgerRepo) CreateMovement(ctx context.Context, m *entity.Movement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO movements (id, source_kind, source_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		m.ID, string(m.Source.Kind), nullable(m.Source.ID), m.UserID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// AppendEntry inserta la entrada y, en un batch, sus características adicionales.
func (r *LedgerRepo) AppendEntry(ctx context.Context, e *entity.LedgerEntry) error {
	itemID, featureID, optionID := keyArgs(e.Key)
	_, err := r.q.Exec(ctx, `
		INSERT INTO ledger_entries (id, movement_id, item_id, item_feature_id, feature_option_id, quantity, production_order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.MovementID, itemID, featureID, optionID, e.Quantity, nullable(e.ProductionOrderID), e.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("ítem u orden de producción", itemID)
		}
		return fmt.Errorf("append ledger entry: %w", err)
	}
	if len(e.AdditionalFeatures) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, f := range e.AdditionalFeatures {
		batch.Queue(`
			INSERT INTO ledger_entry_features (ledger_entry_id, position, item_feature_id, feature_option_id)
			VALUES ($1, $2, $3, $4)`, e.ID, i, f.ItemFeatureID, f.FeatureOptionID)
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("append ledger entry features: %w", err)
	}
	return nil
}

// ListByItem lista entradas del ítem, más recientes primero, con sus características.
func (r *LedgerRepo) ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, movement_id, item_id, item_feature_id, feature_option_id, quantity, production_order_id, created_at
		FROM ledger_entries
		WHERE item_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	out := []*entity.LedgerEntry{}
	byID := map[string]*entity.LedgerEntry{}
	ids := []string{}
	for rows.Next() {
		var (
			e         entity.LedgerEntry
			item      string
			featureID *string
			optionID  *string
			poID      *string
		)
		if err := rows.Scan(&e.ID, &e.MovementID, &item, &featureID, &optionID, &e.Quantity, &poID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.Key = keyFrom(item, featureID, optionID)
		e.ProductionOrderID = deref(poID)
		out = append(out, &e)
		byID[e.ID] = &e
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	frows, err := r.q.Query(ctx, `
		SELECT ledger_entry_id, item_feature_id, feature_option_id
		FROM ledger_entry_features
		WHERE ledger_entry_id = ANY($1::uuid[])
		ORDER BY ledger_entry_id, position`, ids)
	if err != nil {
		return nil, fmt.Errorf("list ledger entry features: %w", err)
	}
	defer frows.Close()
	for frows.Next() {
		var (
			entryID string
			pair    entity.FeaturePair
		)
		if err := frows.Scan(&entryID, &pair.ItemFeatureID, &pair.FeatureOptionID); err != nil {
			return nil, fmt.Errorf("scan ledger entry feature: %w", err)
		}
		if e, ok := byID[entryID]; ok {
			e.AdditionalFeatures = append(e.AdditionalFeatures, pair)
		}
	}
	return out, frows.Err()
}

// SumByVariant Σ de cantidades firmadas del libro por variante del ítem.
func (r *LedgerRepo) SumByVariant(ctx context.Context, itemID string) (map[entity.VariantKey]int64, error) {
	return sumByVariant(ctx, r.q, `
		SELECT item_id, item_feature_id, feature_option_id, SUM(quantity)::bigint
		FROM ledger_entries WHERE item_id = $1
		GROUP BY item_id, item_feature_id, feature_option_id`, itemID)
}

func sumByVariant(ctx context.Context, q Querier, sql, itemID string) (map[entity.VariantKey]int64, error) {
	rows, err := q.Query(ctx, sql, itemID)
	if err != nil {
		return nil, fmt.Errorf("sum by variant: %w", err)
	}
	defer rows.Close()
	out := map[entity.VariantKey]int64{}
	for rows.Next() {
		var (
			item      string
			featureID *string
			optionID  *string
			total     int64
		)
		if err := rows.Scan(&item, &featureID, &optionID, &total); err != nil {
			return nil, fmt.Errorf("scan sum by variant: %w", err)
		}
		out[keyFrom(item, featureID, optionID)] = total
	}
	return out, rows.Err()
}
