package http

import (
	"github.com/jhoicas/logistica-api/internal/application/allocation"
	appinv "github.com/jhoicas/logistica-api/internal/application/inventory"
	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/application/production"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

func toKey(v dto.VariantDTO) entity.VariantKey {
	return entity.VariantKey{ItemID: v.ItemID, ItemFeatureID: v.ItemFeatureID, FeatureOptionID: v.FeatureOptionID}
}

func fromKey(k entity.VariantKey) dto.VariantDTO {
	return dto.VariantDTO{ItemID: k.ItemID, ItemFeatureID: k.ItemFeatureID, FeatureOptionID: k.FeatureOptionID}
}

func toPairs(in []dto.FeaturePairDTO) []entity.FeaturePair {
	if len(in) == 0 {
		return nil
	}
	out := make([]entity.FeaturePair, 0, len(in))
	for _, p := range in {
		out = append(out, entity.FeaturePair{ItemFeatureID: p.ItemFeatureID, FeatureOptionID: p.FeatureOptionID})
	}
	return out
}

func fromPairs(in []entity.FeaturePair) []dto.FeaturePairDTO {
	if len(in) == 0 {
		return nil
	}
	out := make([]dto.FeaturePairDTO, 0, len(in))
	for _, p := range in {
		out = append(out, dto.FeaturePairDTO{ItemFeatureID: p.ItemFeatureID, FeatureOptionID: p.FeatureOptionID})
	}
	return out
}

func toSource(s *dto.SourceDTO) *entity.EntityRef {
	if s == nil {
		return nil
	}
	return &entity.EntityRef{Kind: entity.EntityKind(s.Kind), ID: s.ID}
}

func toLine(l dto.MovementLineDTO) appinv.MovementLine {
	return appinv.MovementLine{
		Variant:            toKey(l.Variant),
		Quantity:           l.Quantity,
		ProductionOrderID:  l.ProductionOrderID,
		AdditionalFeatures: toPairs(l.AdditionalFeatures),
	}
}

func toEntryResponse(e *entity.LedgerEntry) dto.LedgerEntryResponse {
	return dto.LedgerEntryResponse{
		ID:                 e.ID,
		MovementID:         e.MovementID,
		Variant:            fromKey(e.Key),
		Quantity:           e.Quantity,
		ProductionOrderID:  e.ProductionOrderID,
		AdditionalFeatures: fromPairs(e.AdditionalFeatures),
		CreatedAt:          e.CreatedAt,
	}
}

func toMovementResponse(r *appinv.MovementResult) dto.MovementResponse {
	out := dto.MovementResponse{MovementID: r.MovementID, Entries: make([]dto.MovementEntryResponse, 0, len(r.Entries))}
	for _, e := range r.Entries {
		out.Entries = append(out.Entries, dto.MovementEntryResponse{
			Entry:             toEntryResponse(e.Entry),
			VariantQuantity:   e.VariantQuantity,
			ItemQuantity:      e.ItemQuantity,
			DeliveredQuantity: e.DeliveredQuantity,
		})
	}
	return out
}

func toStockResponse(s *ports.StockSnapshot) dto.StockResponse {
	out := dto.StockResponse{ItemID: s.ItemID, Quantity: s.Quantity, Variants: make([]dto.VariantStockResponse, 0, len(s.Variants))}
	for _, v := range s.Variants {
		out.Variants = append(out.Variants, dto.VariantStockResponse{
			ItemFeatureID: v.ItemFeatureID, FeatureOptionID: v.FeatureOptionID, Quantity: v.Quantity,
		})
	}
	return out
}

func toReconcileResponse(r *appinv.ReconcileReport) dto.ReconcileResponse {
	out := dto.ReconcileResponse{
		ItemID:       r.ItemID,
		Consistent:   r.Consistent(),
		ItemStored:   r.ItemStored,
		ItemExpected: r.ItemExpected,
		ItemDrift:    r.ItemDrift,
		Variants:     make([]dto.VariantDriftResponse, 0, len(r.Variants)),
	}
	for _, v := range r.Variants {
		out.Variants = append(out.Variants, dto.VariantDriftResponse{
			Variant: fromKey(v.Key), Stored: v.Stored, Expected: v.Expected, Drift: v.Drift,
		})
	}
	return out
}

func toDemandResponse(v allocation.DemandView) dto.DemandResponse {
	return dto.DemandResponse{
		ID:                v.Item.ID,
		OrderID:           v.Item.OrderID,
		Variant:           fromKey(v.Item.Key),
		Quantity:          v.Item.Quantity,
		AllocatedQuantity: v.Allocated,
		RemainingQuantity: v.Remaining,
	}
}

func toBoxItemResponse(bi *entity.BoxItem) dto.BoxItemResponse {
	return dto.BoxItemResponse{
		ID:          bi.ID,
		BoxID:       bi.BoxID,
		OrderItemID: bi.OrderItemID,
		Variant:     fromKey(bi.Key),
		Quantity:    bi.Quantity,
		UserID:      bi.UserID,
		CreatedAt:   bi.CreatedAt,
	}
}

func toBoxResponse(b *entity.Box, items []*entity.BoxItem) dto.BoxResponse {
	out := dto.BoxResponse{
		ID:             b.ID,
		DeliveryNoteID: b.DeliveryNoteID,
		ProjectID:      b.ProjectID,
		CustomerID:     b.CustomerID,
		OrderID:        b.OrderID,
		PackageID:      b.PackageID,
		TotalQuantity:  b.TotalQuantity,
		TotalWeight:    b.TotalWeight,
		CreatedAt:      b.CreatedAt,
	}
	if len(items) > 0 {
		out.Items = make([]dto.BoxItemResponse, 0, len(items))
		for _, bi := range items {
			out.Items = append(out.Items, toBoxItemResponse(bi))
		}
	}
	return out
}

func toNoteResponse(n *entity.DeliveryNote, boxes []*entity.Box) *dto.DeliveryNoteResponse {
	if n == nil {
		return nil
	}
	out := &dto.DeliveryNoteResponse{
		ID:            n.ID,
		InvoiceID:     n.InvoiceID,
		ProjectID:     n.ProjectID,
		CustomerID:    n.CustomerID,
		OrderID:       n.OrderID,
		ExpeditionID:  n.ExpeditionID,
		BoxQuantity:   n.BoxQuantity,
		TotalQuantity: n.TotalQuantity,
		TotalWeight:   n.TotalWeight,
		CreatedAt:     n.CreatedAt,
	}
	for _, b := range boxes {
		out.Boxes = append(out.Boxes, toBoxResponse(b, nil))
	}
	return out
}

func toAllocationResponse(r *allocation.AllocationResult) dto.AllocationResponse {
	return dto.AllocationResponse{
		Item:              toBoxItemResponse(r.Item),
		RemainingQuantity: r.RemainingQuantity,
		VariantQuantity:   r.VariantQuantity,
		ItemQuantity:      r.ItemQuantity,
		Box:               toBoxResponse(r.Box, nil),
		DeliveryNote:      toNoteResponse(r.DeliveryNote, nil),
	}
}

func toProductionResponse(v *production.View) dto.ProductionOrderResponse {
	out := dto.ProductionOrderResponse{
		ID:                v.Order.ID,
		ProjectID:         v.Order.ProjectID,
		PlannedQuantity:   v.Order.PlannedQuantity,
		DeliveredQuantity: v.Order.DeliveredQuantity,
		RemainingQuantity: v.Remaining,
		CloseDate:         v.Order.CloseDate,
		CreatedAt:         v.Order.CreatedAt,
		Items:             make([]dto.ProductionOrderItemDTO, 0, len(v.Items)),
	}
	if v.Status != nil {
		out.Status = v.Status.Status
	}
	for _, it := range v.Items {
		out.Items = append(out.Items, dto.ProductionOrderItemDTO{ID: it.ID, Variant: fromKey(it.Key), Quantity: it.Quantity})
	}
	return out
}
