//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/logistica-api/internal/application/allocation"
	appinv "github.com/jhoicas/logistica-api/internal/application/inventory"
	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/application/production"
	"github.com/jhoicas/logistica-api/internal/application/shipping"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/infrastructure/postgres"
	"github.com/jhoicas/logistica-api/pkg/config"
)

type pgEnv struct {
	ctx       context.Context
	pool      *pgxpool.Pool
	movements *appinv.MovementUseCase
	alloc     *allocation.UseCase
	ship      *shipping.UseCase
	prod      *production.UseCase
	projectID string
	orderID   string
	itemID    string
}

func newPgEnv(t *testing.T) *pgEnv {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("logistica_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := postgres.NewMigrator(dsn, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, m.Up())
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
	require.NoError(t, m.Close())

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 10}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	e := &pgEnv{ctx: ctx, pool: pool, projectID: uuid.NewString(), orderID: uuid.NewString(), itemID: uuid.NewString()}
	seed := &ports.CatalogSeed{
		Items:    []entity.Item{{ID: e.itemID, Code: "X", Name: "Ítem X", UnitWeight: decimal.RequireFromString("0.5")}},
		Projects: []entity.Project{{ID: e.projectID}},
		Orders:   []entity.Order{{ID: e.orderID, ProjectID: e.projectID}},
	}
	require.NoError(t, postgres.SeedCatalog(ctx, pool, seed))
	// Re-ejecutar el seed no duplica ni falla.
	require.NoError(t, postgres.SeedCatalog(ctx, pool, seed))

	tx := postgres.NewTxRunner(pool)
	e.movements = appinv.NewMovementUseCase(tx, nil)
	e.alloc = allocation.NewUseCase(tx, nil)
	e.ship = shipping.NewUseCase(tx, e.alloc, nil)
	e.prod = production.NewUseCase(tx)
	return e
}

func (e *pgEnv) key() entity.VariantKey { return entity.VariantKey{ItemID: e.itemID} }

func (e *pgEnv) stock(t *testing.T) int64 {
	t.Helper()
	snap, err := e.movements.GetStock(e.ctx, e.itemID)
	require.NoError(t, err)
	return snap.Quantity
}

func TestPostgres_EscenarioCompleto(t *testing.T) {
	e := newPgEnv(t)

	_, err := e.movements.RecordMovement(e.ctx, "user-1", nil, appinv.MovementLine{Variant: e.key(), Quantity: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(100), e.stock(t))

	_, err = e.alloc.AddDemand(e.ctx, allocation.DemandInput{OrderID: e.orderID, Variant: e.key(), Quantity: 40})
	require.NoError(t, err)

	b1, err := e.ship.CreateBox(e.ctx, shipping.BoxInput{ProjectID: e.projectID, OrderID: e.orderID, UserID: "user-1"})
	require.NoError(t, err)
	b2, err := e.ship.CreateBox(e.ctx, shipping.BoxInput{ProjectID: e.projectID, OrderID: e.orderID, UserID: "user-1"})
	require.NoError(t, err)

	res, err := e.alloc.Allocate(e.ctx, allocation.AllocateInput{
		OrderID: e.orderID, Variant: e.key(), BoxID: b1.ID, Quantity: 15, UserID: "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(25), res.RemainingQuantity)
	assert.Equal(t, "7.5", res.Box.TotalWeight.String())
	assert.Equal(t, int64(85), e.stock(t))

	_, err = e.alloc.Allocate(e.ctx, allocation.AllocateInput{
		OrderID: e.orderID, Variant: e.key(), BoxID: b2.ID, Quantity: 30, UserID: "user-1",
	})
	require.ErrorIs(t, err, domain.ErrOverAllocation)
	assert.Equal(t, int64(85), e.stock(t))

	del, err := e.ship.DeleteBox(e.ctx, b1.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, del.Released)
	assert.Equal(t, int64(100), e.stock(t))

	_, err = e.ship.GetBox(e.ctx, b1.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	report, err := e.movements.ReconcileItem(e.ctx, e.itemID)
	require.NoError(t, err)
	assert.True(t, report.Consistent())

	entries, err := e.movements.ListEntries(e.ctx, e.itemID, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(100), entries[0].Quantity)
}

func TestPostgres_VariantesYCaracteristicas(t *testing.T) {
	e := newPgEnv(t)
	featureID, optionID := uuid.NewString(), uuid.NewString()
	variant := entity.VariantKey{ItemID: e.itemID, ItemFeatureID: featureID, FeatureOptionID: optionID}
	extra := entity.FeaturePair{ItemFeatureID: uuid.NewString(), FeatureOptionID: uuid.NewString()}

	_, err := e.movements.RecordBatch(e.ctx, appinv.RecordInput{
		UserID: "user-1",
		Lines: []appinv.MovementLine{
			{Variant: e.key(), Quantity: 10},
			{Variant: variant, Quantity: 5, AdditionalFeatures: []entity.FeaturePair{extra}},
			{Variant: variant, Quantity: 3, AdditionalFeatures: []entity.FeaturePair{extra}},
		},
	})
	require.NoError(t, err)

	snap, err := e.movements.GetStock(e.ctx, e.itemID)
	require.NoError(t, err)
	assert.Equal(t, int64(18), snap.Quantity)
	require.Len(t, snap.Variants, 2)

	entries, err := e.movements.ListEntries(e.ctx, e.itemID, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	withFeatures := 0
	for _, en := range entries {
		if len(en.AdditionalFeatures) > 0 {
			withFeatures++
			assert.Equal(t, extra, en.AdditionalFeatures[0])
		}
	}
	assert.Equal(t, 2, withFeatures)

	_, err = e.movements.RecordMovement(e.ctx, "user-1", nil, appinv.MovementLine{Variant: variant, Quantity: -9})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(18), e.stock(t))
}

// Dos débitos concurrentes sobre la misma variante: el bloqueo de fila impide que ambos pasen.
func TestPostgres_DebitosConcurrentes(t *testing.T) {
	e := newPgEnv(t)
	_, err := e.movements.RecordMovement(e.ctx, "user-1", nil, appinv.MovementLine{Variant: e.key(), Quantity: 10})
	require.NoError(t, err)

	const workers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, fail int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.movements.RecordMovement(e.ctx, "user-1", nil, appinv.MovementLine{Variant: e.key(), Quantity: -3})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrInsufficientStock):
				fail++
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, ok)
	assert.Equal(t, workers-3, fail)
	assert.Equal(t, int64(1), e.stock(t))
}

// Asignaciones simultáneas sin demanda previa: una crea la demanda con su cantidad y las
// demás la encuentran, nunca la incrementan.
func TestPostgres_AsignacionesConcurrentesSinDemanda(t *testing.T) {
	e := newPgEnv(t)
	_, err := e.movements.RecordMovement(e.ctx, "user-1", nil, appinv.MovementLine{Variant: e.key(), Quantity: 50})
	require.NoError(t, err)
	box, err := e.ship.CreateBox(e.ctx, shipping.BoxInput{ProjectID: e.projectID, OrderID: e.orderID, UserID: "user-1"})
	require.NoError(t, err)

	const workers = 6
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, over int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.alloc.Allocate(e.ctx, allocation.AllocateInput{
				OrderID: e.orderID, Variant: e.key(), BoxID: box.ID, Quantity: 4, UserID: "user-1",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrOverAllocation):
				over++
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, over)
	demands, err := e.alloc.ListDemand(e.ctx, e.orderID)
	require.NoError(t, err)
	require.Len(t, demands, 1)
	assert.Equal(t, int64(4), demands[0].Item.Quantity)
	assert.Equal(t, int64(0), demands[0].Remaining)
	assert.Equal(t, int64(46), e.stock(t))
}

func TestPostgres_RemitoYProduccion(t *testing.T) {
	e := newPgEnv(t)
	_, err := e.movements.RecordMovement(e.ctx, "user-1", nil, appinv.MovementLine{Variant: e.key(), Quantity: 50})
	require.NoError(t, err)

	box, err := e.ship.CreateBox(e.ctx, shipping.BoxInput{ProjectID: e.projectID, UserID: "user-1"})
	require.NoError(t, err)
	_, err = e.alloc.AddDemand(e.ctx, allocation.DemandInput{OrderID: e.orderID, Variant: e.key(), Quantity: 20})
	require.NoError(t, err)
	_, err = e.alloc.Allocate(e.ctx, allocation.AllocateInput{
		OrderID: e.orderID, Variant: e.key(), BoxID: box.ID, Quantity: 20, UserID: "user-1",
	})
	require.NoError(t, err)

	note, err := e.ship.CreateDeliveryNote(e.ctx, shipping.DeliveryNoteInput{ProjectID: e.projectID, BoxIDs: []string{box.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), note.Note.BoxQuantity)
	assert.Equal(t, int64(20), note.Note.TotalQuantity)
	assert.Equal(t, "10", note.Note.TotalWeight.String())

	other, err := e.ship.CreateDeliveryNote(e.ctx, shipping.DeliveryNoteInput{ProjectID: e.projectID})
	require.NoError(t, err)
	_, err = e.ship.AddBox(e.ctx, other.Note.ID, box.ID)
	require.ErrorIs(t, err, domain.ErrAllocationConflict)

	require.NoError(t, e.ship.DeleteDeliveryNote(e.ctx, note.Note.ID))
	view, err := e.ship.GetBox(e.ctx, box.ID)
	require.NoError(t, err)
	assert.False(t, view.Box.InDeliveryNote())
	assert.Equal(t, int64(30), e.stock(t))

	po, err := e.prod.Create(e.ctx, production.CreateInput{
		ProjectID: e.projectID, UserID: "user-1",
		Items: []production.ItemInput{{Variant: e.key(), Quantity: 40}},
	})
	require.NoError(t, err)
	_, err = e.movements.RecordMovement(e.ctx, "user-1", nil, appinv.MovementLine{
		Variant: e.key(), Quantity: 15, ProductionOrderID: po.Order.ID,
	})
	require.NoError(t, err)

	closed, err := e.prod.ChangeStatus(e.ctx, po.Order.ID, entity.ProductionStatusFinished, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(25), closed.Remaining)
	assert.NotNil(t, closed.Order.CloseDate)

	_, err = e.alloc.AddDemand(e.ctx, allocation.DemandInput{OrderID: e.orderID, Variant: e.key(), Quantity: 1})
	require.ErrorIs(t, err, domain.ErrAllocationConflict)
}

// Un paso a Finalizada sin confirmar bloquea la demanda del proyecto; tras el commit se rechaza.
func TestPostgres_FinalizadaConcurrenteBloqueaDemanda(t *testing.T) {
	e := newPgEnv(t)
	po, err := e.prod.Create(e.ctx, production.CreateInput{
		ProjectID: e.projectID, UserID: "user-1",
		Items: []production.ItemInput{{Variant: e.key(), Quantity: 10}},
	})
	require.NoError(t, err)

	tx, err := e.pool.Begin(e.ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(e.ctx) }()
	_, err = tx.Exec(e.ctx, `SELECT id FROM production_orders WHERE id = $1 FOR UPDATE`, po.Order.ID)
	require.NoError(t, err)
	_, err = tx.Exec(e.ctx, `
		INSERT INTO production_order_statuses (id, production_order_id, status, user_id, created_at)
		VALUES ($1, $2, $3, 'user-2', now() + interval '1 minute')`,
		uuid.NewString(), po.Order.ID, entity.ProductionStatusFinished)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := e.alloc.AddDemand(e.ctx, allocation.DemandInput{OrderID: e.orderID, Variant: e.key(), Quantity: 1})
		done <- err
	}()

	select {
	case err := <-done:
		t.Fatalf("la demanda no esperó al cambio de estado: %v", err)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, tx.Commit(e.ctx))
	select {
	case err := <-done:
		assert.ErrorIs(t, err, domain.ErrAllocationConflict)
	case <-time.After(10 * time.Second):
		t.Fatal("la demanda sigue bloqueada tras el commit")
	}
}
