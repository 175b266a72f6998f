// Package memory implementa los repositorios en memoria para tests y STORAGE_DRIVER=memory.
// Las transacciones se serializan con un mutex y un error restaura la foto previa del estado.
package memory

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

type state struct {
	items      map[string]*entity.Item
	projects   map[string]*entity.Project
	orders     map[string]*entity.Order
	stocks     map[string]*entity.ItemStock // por item_id
	variants   map[string]*entity.VariantStock
	features   map[string]*entity.StockFeature
	movements  map[string]*entity.Movement
	entries    []*entity.LedgerEntry
	orderItems map[string]*entity.OrderItem
	boxes      map[string]*entity.Box
	boxItems   map[string]*entity.BoxItem
	notes      map[string]*entity.DeliveryNote
	noteBoxes  map[string]string // box_id -> delivery_note_id
	pos        map[string]*entity.ProductionOrder
	poItems    map[string]*entity.ProductionOrderItem
	poStatuses []*entity.ProductionOrderStatus
}

func newState() *state {
	return &state{
		items:      map[string]*entity.Item{},
		projects:   map[string]*entity.Project{},
		orders:     map[string]*entity.Order{},
		stocks:     map[string]*entity.ItemStock{},
		variants:   map[string]*entity.VariantStock{},
		features:   map[string]*entity.StockFeature{},
		movements:  map[string]*entity.Movement{},
		orderItems: map[string]*entity.OrderItem{},
		boxes:      map[string]*entity.Box{},
		boxItems:   map[string]*entity.BoxItem{},
		notes:      map[string]*entity.DeliveryNote{},
		noteBoxes:  map[string]string{},
		pos:        map[string]*entity.ProductionOrder{},
		poItems:    map[string]*entity.ProductionOrderItem{},
	}
}

func cloneMap[T any](m map[string]*T) map[string]*T {
	out := make(map[string]*T, len(m))
	for k, v := range m {
		cp := *v
		out[k] = &cp
	}
	return out
}

func cloneSlice[T any](s []*T) []*T {
	out := make([]*T, len(s))
	for i, v := range s {
		cp := *v
		out[i] = &cp
	}
	return out
}

func (s *state) clone() *state {
	nb := make(map[string]string, len(s.noteBoxes))
	for k, v := range s.noteBoxes {
		nb[k] = v
	}
	return &state{
		items:      cloneMap(s.items),
		projects:   cloneMap(s.projects),
		orders:     cloneMap(s.orders),
		stocks:     cloneMap(s.stocks),
		variants:   cloneMap(s.variants),
		features:   cloneMap(s.features),
		movements:  cloneMap(s.movements),
		entries:    cloneSlice(s.entries),
		orderItems: cloneMap(s.orderItems),
		boxes:      cloneMap(s.boxes),
		boxItems:   cloneMap(s.boxItems),
		notes:      cloneMap(s.notes),
		noteBoxes:  nb,
		pos:        cloneMap(s.pos),
		poItems:    cloneMap(s.poItems),
		poStatuses: cloneSlice(s.poStatuses),
	}
}

// Store almacén en memoria. Implementa ports.TxRunner.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

var _ ports.TxRunner = (*Store)(nil)

// Run ejecuta fn en exclusión mutua; si fn devuelve error el estado vuelve a la foto previa.
func (s *Store) Run(ctx context.Context, fn func(r ports.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(s.repos(true)); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// Repos devuelve repositorios que toman el mutex en cada llamada.
func (s *Store) Repos() ports.Repositories {
	return s.repos(false)
}

func (s *Store) repos(inTx bool) ports.Repositories {
	b := base{s: s, inTx: inTx}
	return ports.Repositories{
		Items:            itemRepo{b},
		Stock:            stockRepo{b},
		Ledger:           ledgerRepo{b},
		Orders:           orderRepo{b},
		OrderItems:       orderItemRepo{b},
		Boxes:            boxRepo{b},
		BoxItems:         boxItemRepo{b},
		DeliveryNotes:    deliveryNoteRepo{b},
		ProductionOrders: productionOrderRepo{b},
	}
}

// base comparte el acceso al estado; dentro de Run el mutex ya está tomado.
type base struct {
	s    *Store
	inTx bool
}

func (b base) lock() func() {
	if b.inTx {
		return func() {}
	}
	b.s.mu.Lock()
	return b.s.mu.Unlock
}

func (b base) st() *state { return b.s.st }

// SeedItem registra un ítem del catálogo (gestionado fuera del núcleo).
func (s *Store) SeedItem(item entity.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.items[item.ID] = &item
}

// SeedProject registra un proyecto.
func (s *Store) SeedProject(p entity.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.projects[p.ID] = &p
}

// SeedOrder registra un pedido.
func (s *Store) SeedOrder(o entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.orders[o.ID] = &o
}

// LoadSeed carga ítems, proyectos y pedidos desde JSON y devuelve cuántos registros cargó.
func (s *Store) LoadSeed(r io.Reader) (int, error) {
	seed, err := ports.DecodeCatalogSeed(r)
	if err != nil {
		return 0, fmt.Errorf("memory: %w", err)
	}
	for _, it := range seed.Items {
		s.SeedItem(it)
	}
	for _, p := range seed.Projects {
		s.SeedProject(p)
	}
	for _, o := range seed.Orders {
		s.SeedOrder(o)
	}
	return seed.Len(), nil
}
