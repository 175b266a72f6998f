package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var (
	_ repository.OrderRepository        = orderRepo{}
	_ repository.OrderItemRepository    = orderItemRepo{}
	_ repository.BoxRepository          = boxRepo{}
	_ repository.BoxItemRepository      = boxItemRepo{}
	_ repository.DeliveryNoteRepository = deliveryNoteRepo{}
)

// checkRefs replica las FK de boxes y delivery_notes: proyecto obligatorio, pedido opcional.
func checkRefs(st *state, projectID, orderID string) error {
	if _, ok := st.projects[projectID]; !ok {
		return domain.NotFound("proyecto", projectID)
	}
	if orderID != "" {
		if _, ok := st.orders[orderID]; !ok {
			return domain.NotFound("pedido", orderID)
		}
	}
	return nil
}

type orderRepo struct{ base }

func (r orderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	defer r.lock()()
	o, ok := r.st().orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

type orderItemRepo struct{ base }

func (r orderItemRepo) get(id string) (*entity.OrderItem, error) {
	defer r.lock()()
	oi, ok := r.st().orderItems[id]
	if !ok {
		return nil, nil
	}
	cp := *oi
	return &cp, nil
}

func (r orderItemRepo) GetByID(_ context.Context, id string) (*entity.OrderItem, error) {
	return r.get(id)
}

func (r orderItemRepo) GetForUpdate(_ context.Context, id string) (*entity.OrderItem, error) {
	return r.get(id)
}

func (r orderItemRepo) find(orderID string, key entity.VariantKey) *entity.OrderItem {
	for _, oi := range r.st().orderItems {
		if oi.OrderID == orderID && oi.Key.SameVariant(key) {
			return oi
		}
	}
	return nil
}

func (r orderItemRepo) FindForUpdate(_ context.Context, orderID string, key entity.VariantKey) (*entity.OrderItem, error) {
	defer r.lock()()
	oi := r.find(orderID, key)
	if oi == nil {
		return nil, nil
	}
	cp := *oi
	return &cp, nil
}

func (r orderItemRepo) Upsert(_ context.Context, item *entity.OrderItem) (*entity.OrderItem, error) {
	defer r.lock()()
	st := r.st()
	if _, ok := st.orders[item.OrderID]; !ok {
		return nil, domain.NotFound("pedido", item.OrderID)
	}
	now := time.Now()
	if existing := r.find(item.OrderID, item.Key); existing != nil {
		existing.Quantity += item.Quantity
		existing.UpdatedAt = now
		cp := *existing
		return &cp, nil
	}
	cp := *item
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	cp.CreatedAt, cp.UpdatedAt = now, now
	st.orderItems[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r orderItemRepo) CreateIfAbsent(_ context.Context, item *entity.OrderItem) error {
	defer r.lock()()
	st := r.st()
	if _, ok := st.orders[item.OrderID]; !ok {
		return domain.NotFound("pedido", item.OrderID)
	}
	if r.find(item.OrderID, item.Key) != nil {
		return nil
	}
	cp := *item
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	now := time.Now()
	cp.CreatedAt, cp.UpdatedAt = now, now
	st.orderItems[cp.ID] = &cp
	return nil
}

func (r orderItemRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	defer r.lock()()
	oi, ok := r.st().orderItems[id]
	if !ok {
		return domain.NotFound("ítem de pedido", id)
	}
	oi.Quantity = quantity
	oi.UpdatedAt = time.Now()
	return nil
}

func (r orderItemRepo) Delete(_ context.Context, id string) error {
	defer r.lock()()
	st := r.st()
	for _, bi := range st.boxItems {
		if bi.OrderItemID == id {
			// box_items -> order_items ON DELETE RESTRICT
			return domain.Conflict("el ítem de pedido tiene asignaciones")
		}
	}
	delete(st.orderItems, id)
	return nil
}

func (r orderItemRepo) ListByOrder(_ context.Context, orderID string) ([]*entity.OrderItem, error) {
	defer r.lock()()
	out := []*entity.OrderItem{}
	for _, oi := range r.st().orderItems {
		if oi.OrderID == orderID {
			cp := *oi
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type boxRepo struct{ base }

func (r boxRepo) Create(_ context.Context, box *entity.Box) error {
	defer r.lock()()
	st := r.st()
	if err := checkRefs(st, box.ProjectID, box.OrderID); err != nil {
		return err
	}
	if box.DeliveryNoteID != "" {
		if _, ok := st.notes[box.DeliveryNoteID]; !ok {
			return domain.NotFound("remito", box.DeliveryNoteID)
		}
	}
	cp := *box
	st.boxes[box.ID] = &cp
	return nil
}

func (r boxRepo) get(id string) (*entity.Box, error) {
	defer r.lock()()
	b, ok := r.st().boxes[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r boxRepo) GetByID(_ context.Context, id string) (*entity.Box, error) { return r.get(id) }

func (r boxRepo) GetForUpdate(_ context.Context, id string) (*entity.Box, error) { return r.get(id) }

func (r boxRepo) UpdateTotals(_ context.Context, box *entity.Box) error {
	defer r.lock()()
	b, ok := r.st().boxes[box.ID]
	if !ok {
		return domain.NotFound("caja", box.ID)
	}
	b.TotalQuantity = box.TotalQuantity
	b.TotalWeight = box.TotalWeight
	return nil
}

func (r boxRepo) SetDeliveryNote(_ context.Context, boxID, noteID string) error {
	defer r.lock()()
	st := r.st()
	b, ok := st.boxes[boxID]
	if !ok {
		return domain.NotFound("caja", boxID)
	}
	if noteID != "" {
		if _, ok := st.notes[noteID]; !ok {
			return domain.NotFound("remito", noteID)
		}
	}
	b.DeliveryNoteID = noteID
	return nil
}

func (r boxRepo) Delete(_ context.Context, id string) error {
	defer r.lock()()
	st := r.st()
	for _, bi := range st.boxItems {
		if bi.BoxID == id {
			// box_items -> boxes ON DELETE RESTRICT
			return domain.Conflict("la caja tiene asignaciones")
		}
	}
	delete(st.boxes, id)
	delete(st.noteBoxes, id)
	return nil
}

func (r boxRepo) ListByDeliveryNote(_ context.Context, noteID string) ([]*entity.Box, error) {
	defer r.lock()()
	out := []*entity.Box{}
	for _, b := range r.st().boxes {
		if b.DeliveryNoteID == noteID {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type boxItemRepo struct{ base }

func (r boxItemRepo) Create(_ context.Context, item *entity.BoxItem) error {
	defer r.lock()()
	st := r.st()
	if _, ok := st.boxes[item.BoxID]; !ok {
		return domain.NotFound("caja", item.BoxID)
	}
	if _, ok := st.orderItems[item.OrderItemID]; !ok {
		return domain.NotFound("ítem de pedido", item.OrderItemID)
	}
	cp := *item
	cp.UnitWeight = decimal.Zero
	st.boxItems[item.ID] = &cp
	return nil
}

func (r boxItemRepo) withWeight(bi *entity.BoxItem) *entity.BoxItem {
	cp := *bi
	if it, ok := r.st().items[bi.Key.ItemID]; ok {
		cp.UnitWeight = it.UnitWeight
	}
	return &cp
}

func (r boxItemRepo) get(id string) (*entity.BoxItem, error) {
	defer r.lock()()
	bi, ok := r.st().boxItems[id]
	if !ok {
		return nil, nil
	}
	return r.withWeight(bi), nil
}

func (r boxItemRepo) GetByID(_ context.Context, id string) (*entity.BoxItem, error) { return r.get(id) }

func (r boxItemRepo) GetForUpdate(_ context.Context, id string) (*entity.BoxItem, error) {
	return r.get(id)
}

func (r boxItemRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	defer r.lock()()
	bi, ok := r.st().boxItems[id]
	if !ok {
		return domain.NotFound("asignación", id)
	}
	bi.Quantity = quantity
	bi.UpdatedAt = time.Now()
	return nil
}

func (r boxItemRepo) Delete(_ context.Context, id string) error {
	defer r.lock()()
	delete(r.st().boxItems, id)
	return nil
}

func (r boxItemRepo) list(match func(*entity.BoxItem) bool) []*entity.BoxItem {
	out := []*entity.BoxItem{}
	for _, bi := range r.st().boxItems {
		if match(bi) {
			out = append(out, r.withWeight(bi))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r boxItemRepo) ListByBox(_ context.Context, boxID string) ([]*entity.BoxItem, error) {
	defer r.lock()()
	return r.list(func(bi *entity.BoxItem) bool { return bi.BoxID == boxID }), nil
}

func (r boxItemRepo) ListByOrderItem(_ context.Context, orderItemID string) ([]*entity.BoxItem, error) {
	defer r.lock()()
	return r.list(func(bi *entity.BoxItem) bool { return bi.OrderItemID == orderItemID }), nil
}

func (r boxItemRepo) SumAllocated(_ context.Context, orderItemID, featureOptionID string) (int64, error) {
	defer r.lock()()
	var sum int64
	for _, bi := range r.st().boxItems {
		if bi.OrderItemID == orderItemID && bi.Key.FeatureOptionID == featureOptionID {
			sum += bi.Quantity
		}
	}
	return sum, nil
}

func (r boxItemRepo) SumByVariant(_ context.Context, itemID string) (map[entity.VariantKey]int64, error) {
	defer r.lock()()
	out := map[entity.VariantKey]int64{}
	for _, bi := range r.st().boxItems {
		if bi.Key.ItemID == itemID {
			out[bi.Key] += bi.Quantity
		}
	}
	return out, nil
}

type deliveryNoteRepo struct{ base }

func (r deliveryNoteRepo) Create(_ context.Context, note *entity.DeliveryNote) error {
	defer r.lock()()
	st := r.st()
	if err := checkRefs(st, note.ProjectID, note.OrderID); err != nil {
		return err
	}
	cp := *note
	st.notes[note.ID] = &cp
	return nil
}

func (r deliveryNoteRepo) get(id string) (*entity.DeliveryNote, error) {
	defer r.lock()()
	n, ok := r.st().notes[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r deliveryNoteRepo) GetByID(_ context.Context, id string) (*entity.DeliveryNote, error) {
	return r.get(id)
}

func (r deliveryNoteRepo) GetForUpdate(_ context.Context, id string) (*entity.DeliveryNote, error) {
	return r.get(id)
}

func (r deliveryNoteRepo) UpdateTotals(_ context.Context, note *entity.DeliveryNote) error {
	defer r.lock()()
	n, ok := r.st().notes[note.ID]
	if !ok {
		return domain.NotFound("remito", note.ID)
	}
	n.BoxQuantity = note.BoxQuantity
	n.TotalQuantity = note.TotalQuantity
	n.TotalWeight = note.TotalWeight
	return nil
}

func (r deliveryNoteRepo) Delete(_ context.Context, id string) error {
	defer r.lock()()
	st := r.st()
	// delivery_note_boxes CASCADE y boxes.delivery_note_id SET NULL
	for boxID, noteID := range st.noteBoxes {
		if noteID == id {
			delete(st.noteBoxes, boxID)
		}
	}
	for _, b := range st.boxes {
		if b.DeliveryNoteID == id {
			b.DeliveryNoteID = ""
		}
	}
	delete(st.notes, id)
	return nil
}

func (r deliveryNoteRepo) LinkBox(_ context.Context, noteID, boxID string) error {
	defer r.lock()()
	st := r.st()
	if current, ok := st.noteBoxes[boxID]; ok && current != noteID {
		return domain.Conflict("la caja ya pertenece a otro remito")
	}
	st.noteBoxes[boxID] = noteID
	return nil
}

func (r deliveryNoteRepo) UnlinkBox(_ context.Context, noteID, boxID string) error {
	defer r.lock()()
	st := r.st()
	if st.noteBoxes[boxID] == noteID {
		delete(st.noteBoxes, boxID)
	}
	return nil
}
