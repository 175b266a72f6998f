package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const variantColumns = `id, stock_id, item_id, item_feature_id, feature_option_id, quantity, updated_at`

func scanVariant(row scanner) (*entity.VariantStock, error) {
	var (
		v         entity.VariantStock
		itemID    string
		featureID *string
		optionID  *string
	)
	if err := row.Scan(&v.ID, &v.StockID, &itemID, &featureID, &optionID, &v.Quantity, &v.UpdatedAt); err != nil {
		return nil, err
	}
	v.Key = keyFrom(itemID, featureID, optionID)
	return &v, nil
}

// GetOrCreateItemStock garantiza la fila del ítem (ON CONFLICT DO NOTHING) y la devuelve.
func (r *StockRepo) GetOrCreateItemStock(ctx context.Context, itemID string) (*entity.ItemStock, error) {
	_, err := r.q.Exec(ctx, `
		INSERT INTO item_stocks (id, item_id, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (item_id) DO NOTHING`, uuid.New().String(), itemID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NotFound("ítem", itemID)
		}
		return nil, fmt.Errorf("create item stock: %w", err)
	}
	s, err := r.GetItemStock(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("item stock %s no visible tras crearlo", itemID)
	}
	return s, nil
}

// GetItemStock obtiene el saldo agregado del ítem; nil si nunca tuvo movimientos.
func (r *StockRepo) GetItemStock(ctx context.Context, itemID string) (*entity.ItemStock, error) {
	var s entity.ItemStock
	err := r.q.QueryRow(ctx, `
		SELECT id, item_id, quantity, updated_at FROM item_stocks WHERE item_id = $1`, itemID).
		Scan(&s.ID, &s.ItemID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item stock: %w", err)
	}
	return &s, nil
}

// GetVariantForUpdate obtiene el saldo de la variante y bloquea la fila (SELECT FOR UPDATE).
// Las dimensiones ausentes se comparan con IS NOT DISTINCT FROM (NULL = NULL).
func (r *StockRepo) GetVariantForUpdate(ctx context.Context, key entity.VariantKey) (*entity.VariantStock, error) {
	itemID, featureID, optionID := keyArgs(key)
	v, err := scanVariant(r.q.QueryRow(ctx, `
		SELECT `+variantColumns+`
		FROM variant_stocks
		WHERE item_id = $1
		  AND item_feature_id IS NOT DISTINCT FROM $2::uuid
		  AND feature_option_id IS NOT DISTINCT FROM $3::uuid
		FOR UPDATE`, itemID, featureID, optionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant stock for update: %w", err)
	}
	return v, nil
}

// CreateVariant inserta la fila en 0; si otra transacción la creó primero, la reutiliza.
func (r *StockRepo) CreateVariant(ctx context.Context, stockID string, key entity.VariantKey) (*entity.VariantStock, error) {
	itemID, featureID, optionID := keyArgs(key)
	_, err := r.q.Exec(ctx, `
		INSERT INTO variant_stocks (id, stock_id, item_id, item_feature_id, feature_option_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, now())
		ON CONFLICT DO NOTHING`, uuid.New().String(), stockID, itemID, featureID, optionID)
	if err != nil {
		return nil, fmt.Errorf("create variant stock: %w", err)
	}
	v, err := r.GetVariantForUpdate(ctx, key)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("variant stock %s no visible tras crearlo", key)
	}
	return v, nil
}

// AddToVariant aplica el delta y devuelve el saldo. El CHECK (quantity >= 0) es la última barrera.
func (r *StockRepo) AddToVariant(ctx context.Context, variantID string, delta int64) (int64, error) {
	var qty int64
	err := r.q.QueryRow(ctx, `
		UPDATE variant_stocks SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1
		RETURNING quantity`, variantID, delta).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.NotFound("saldo de variante", variantID)
		}
		if isCheckViolation(err) {
			return 0, fmt.Errorf("%w: variante %s", domain.ErrInsufficientStock, variantID)
		}
		return 0, fmt.Errorf("update variant stock: %w", err)
	}
	return qty, nil
}

// RecomputeItemStock fija item_stocks.quantity = Σ variant_stocks del ítem.
func (r *StockRepo) RecomputeItemStock(ctx context.Context, stockID string) (int64, error) {
	var qty int64
	err := r.q.QueryRow(ctx, `
		UPDATE item_stocks s
		SET quantity = COALESCE((SELECT SUM(v.quantity) FROM variant_stocks v WHERE v.stock_id = s.id), 0)::bigint,
		    updated_at = now()
		WHERE s.id = $1
		RETURNING s.quantity`, stockID).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.NotFound("saldo de ítem", stockID)
		}
		return 0, fmt.Errorf("recompute item stock: %w", err)
	}
	return qty, nil
}

// ListVariants lista los saldos por variante del ítem.
func (r *StockRepo) ListVariants(ctx context.Context, stockID string) ([]*entity.VariantStock, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+variantColumns+`
		FROM variant_stocks WHERE stock_id = $1
		ORDER BY item_feature_id NULLS FIRST, feature_option_id NULLS FIRST`, stockID)
	if err != nil {
		return nil, fmt.Errorf("list variant stocks: %w", err)
	}
	defer rows.Close()
	out := []*entity.VariantStock{}
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan variant stock: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// LinkFeature vincula el par adicional a la fila de variante; los duplicados se ignoran.
func (r *StockRepo) LinkFeature(ctx context.Context, variantStockID string, pair entity.FeaturePair) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_features (id, variant_stock_id, item_feature_id, feature_option_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (variant_stock_id, item_feature_id, feature_option_id) DO NOTHING`,
		uuid.New().String(), variantStockID, pair.ItemFeatureID, pair.FeatureOptionID)
	if err != nil {
		return fmt.Errorf("link stock feature: %w", err)
	}
	return nil
}

// ListFeatures lista los pares vinculados a la fila de variante.
func (r *StockRepo) ListFeatures(ctx context.Context, variantStockID string) ([]*entity.StockFeature, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, variant_stock_id, item_feature_id, feature_option_id
		FROM stock_features WHERE variant_stock_id = $1 ORDER BY id`, variantStockID)
	if err != nil {
		return nil, fmt.Errorf("list stock features: %w", err)
	}
	defer rows.Close()
	out := []*entity.StockFeature{}
	for rows.Next() {
		var f entity.StockFeature
		if err := rows.Scan(&f.ID, &f.VariantStockID, &f.Feature.ItemFeatureID, &f.Feature.FeatureOptionID); err != nil {
			return nil, fmt.Errorf("scan stock feature: %w", err)
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}
