package usecase

import (
	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/pkg/utils"
)

// GroupByStatus partitions shipments into the six board columns, keeping
// their relative order. Every status is present, possibly empty.
func GroupByStatus(shipments []entity.Shipment) entity.Board {
	board := make(entity.Board, 6)
	for _, status := range entity.AllStatuses() {
		board[status] = []entity.Shipment{}
	}
	for _, s := range shipments {
		if _, ok := board[s.DispatchStatus]; !ok {
			// stored shipments are validated on the way in
			continue
		}
		board[s.DispatchStatus] = append(board[s.DispatchStatus], s)
	}
	return board
}

// ApplyFilters keeps, in every column, the shipments matching all criteria.
// The column structure is unchanged and the result is a new board.
func ApplyFilters(board entity.Board, criteria entity.FilterCriteria) entity.Board {
	out := make(entity.Board, len(board))
	for status, shipments := range board {
		kept := make([]entity.Shipment, 0, len(shipments))
		for _, s := range shipments {
			if Matches(s, criteria) {
				kept = append(kept, s)
			}
		}
		out[status] = kept
	}
	return out
}

// Matches reports whether a single shipment passes the criteria
func Matches(s entity.Shipment, c entity.FilterCriteria) bool {
	if !utils.ContainsFold(s.Planner, c.Planner) ||
		!utils.ContainsFold(s.Customer, c.Customer) ||
		!utils.ContainsFold(s.PickupLocation, c.PickupLocation) ||
		!utils.ContainsFold(s.DeliveryLocation, c.DeliveryLocation) ||
		!utils.ContainsFold(s.Carrier, c.Carrier) {
		return false
	}
	if c.PickupDate == "" {
		return true
	}
	anchor, ok := utils.ParseDate(c.PickupDate)
	if !ok {
		return true
	}
	pickup, ok := utils.ParseDate(s.PickupDate)
	if !ok {
		return false
	}
	return utils.WithinDays(pickup, anchor, c.Days)
}
