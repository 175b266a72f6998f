package inventory

import "github.com/jhoicas/logistica-api/internal/domain/entity"

// LatestStatus devuelve el estado con created_at más reciente (nil si no hay ninguno).
// En empate gana el último de la lista.
func LatestStatus(statuses []*entity.ProductionOrderStatus) *entity.ProductionOrderStatus {
	var latest *entity.ProductionOrderStatus
	for _, s := range statuses {
		if latest == nil || !s.CreatedAt.Before(latest.CreatedAt) {
			latest = s
		}
	}
	return latest
}

// IsFinished indica si el estado vigente es terminal.
func IsFinished(statuses []*entity.ProductionOrderStatus) bool {
	latest := LatestStatus(statuses)
	return latest != nil && latest.Status == entity.ProductionStatusFinished
}

// CanTransition valida el paso del estado vigente (current, "" si no hay) a next.
// Cualquier estado puede pasar a Finalizada; desde Finalizada no hay salida.
func CanTransition(current, next string) bool {
	if !entity.IsValidProductionStatus(next) {
		return false
	}
	return current != entity.ProductionStatusFinished
}
