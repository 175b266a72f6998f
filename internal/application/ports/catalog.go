package ports

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// CatalogSeed ítems, proyectos y pedidos que administra otro sistema. El núcleo solo los lee;
// este formato JSON sirve para el almacén en memoria (MEMORY_SEED_FILE) y para cmd/seed.
type CatalogSeed struct {
	Items    []entity.Item
	Projects []entity.Project
	Orders   []entity.Order
}

// Len cantidad total de registros.
func (s *CatalogSeed) Len() int { return len(s.Items) + len(s.Projects) + len(s.Orders) }

type catalogJSON struct {
	Items []struct {
		ID         string          `json:"id"`
		CompanyID  string          `json:"company_id"`
		Code       string          `json:"code"`
		Name       string          `json:"name"`
		UnitWeight decimal.Decimal `json:"unit_weight"`
	} `json:"items"`
	Projects []struct {
		ID         string `json:"id"`
		CustomerID string `json:"customer_id"`
	} `json:"projects"`
	Orders []struct {
		ID         string `json:"id"`
		ProjectID  string `json:"project_id"`
		CustomerID string `json:"customer_id"`
	} `json:"orders"`
}

// DecodeCatalogSeed lee el JSON del catálogo.
func DecodeCatalogSeed(r io.Reader) (*CatalogSeed, error) {
	var raw catalogJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("seed inválido: %w", err)
	}
	seed := &CatalogSeed{}
	for _, it := range raw.Items {
		seed.Items = append(seed.Items, entity.Item{ID: it.ID, CompanyID: it.CompanyID, Code: it.Code, Name: it.Name, UnitWeight: it.UnitWeight})
	}
	for _, p := range raw.Projects {
		seed.Projects = append(seed.Projects, entity.Project{ID: p.ID, CustomerID: p.CustomerID})
	}
	for _, o := range raw.Orders {
		seed.Orders = append(seed.Orders, entity.Order{ID: o.ID, ProjectID: o.ProjectID, CustomerID: o.CustomerID})
	}
	return seed, nil
}
