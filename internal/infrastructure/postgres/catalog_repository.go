package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/logistica-api/internal/application/ports"
)

// SeedCatalog inserta o actualiza ítems, proyectos y pedidos en un único batch.
// Los pedidos van después de los proyectos por la FK.
func SeedCatalog(ctx context.Context, q Querier, seed *ports.CatalogSeed) error {
	batch := &pgx.Batch{}
	for _, it := range seed.Items {
		batch.Queue(`
			INSERT INTO items (id, company_id, code, name, unit_weight)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE
			SET company_id = EXCLUDED.company_id, code = EXCLUDED.code,
			    name = EXCLUDED.name, unit_weight = EXCLUDED.unit_weight`,
			it.ID, nullable(it.CompanyID), it.Code, it.Name, it.UnitWeight)
	}
	for _, p := range seed.Projects {
		batch.Queue(`
			INSERT INTO projects (id, customer_id) VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET customer_id = EXCLUDED.customer_id`,
			p.ID, nullable(p.CustomerID))
	}
	for _, o := range seed.Orders {
		batch.Queue(`
			INSERT INTO orders (id, project_id, customer_id) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE
			SET project_id = EXCLUDED.project_id, customer_id = EXCLUDED.customer_id`,
			o.ID, o.ProjectID, nullable(o.CustomerID))
	}
	if batch.Len() == 0 {
		return nil
	}
	br := q.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("seed: registro %d referencia un proyecto inexistente: %w", i, err)
			}
			return fmt.Errorf("seed: registro %d: %w", i, err)
		}
	}
	return nil
}
