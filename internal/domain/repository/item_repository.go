package repository

import (
	"context"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// ItemRepository lectura del catálogo de ítems.
type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Item, error)
}
