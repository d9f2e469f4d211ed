package usecase

import (
	"context"

	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/internal/domain/repository"
)

const defaultPaymentTerms = "Standard Terms"

// ShipmentDetailService builds the tabbed detail view of a shipment
type ShipmentDetailService struct {
	shipmentRepo repository.ShipmentRepository
}

// NewShipmentDetailService creates a new detail service
func NewShipmentDetailService(shipmentRepo repository.ShipmentRepository) *ShipmentDetailService {
	return &ShipmentDetailService{shipmentRepo: shipmentRepo}
}

// Detail returns the projection for one shipment
func (s *ShipmentDetailService) Detail(ctx context.Context, id entity.ShipmentID) (*entity.ShipmentDetail, error) {
	shipment, err := s.shipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := ProjectDetail(*shipment)
	return &detail, nil
}

// ProjectDetail maps a shipment onto the detail tabs. Only the dispatch
// status is editable from this view.
func ProjectDetail(s entity.Shipment) entity.ShipmentDetail {
	terms := s.PaymentTerms
	if terms == "" {
		terms = defaultPaymentTerms
	}
	return entity.ShipmentDetail{
		ID:             s.ID,
		DispatchStatus: s.DispatchStatus,
		EditableFields: []string{"dispatch_status"},
		Customer: entity.CustomerTab{
			Customer:          s.Customer,
			CustomerReference: s.CustomerReference,
			Contact:           s.CustomerContact,
			Phone:             s.CustomerPhone,
			Email:             s.CustomerEmail,
		},
		Carrier: entity.CarrierTab{
			Carrier:       s.Carrier,
			EquipmentType: s.EquipmentType,
			DriverName:    s.DriverName,
			DriverPhone:   s.DriverPhone,
			TruckNumber:   s.TruckNumber,
		},
		Pricing: entity.PricingTab{
			Rate:              s.Rate,
			CarrierRate:       s.CarrierRate,
			Margin:            s.Margin(),
			AdditionalCharges: s.AdditionalCharges,
			PaymentTerms:      terms,
		},
		Details: entity.DetailsTab{
			PickupLocation:      s.PickupLocation,
			DeliveryLocation:    s.DeliveryLocation,
			PickupDate:          s.PickupDate,
			PickupTime:          s.PickupTime,
			DeliveryDate:        s.DeliveryDate,
			DeliveryTime:        s.DeliveryTime,
			Planner:             s.Planner,
			ReferenceNumbers:    s.ReferenceNumbers,
			SpecialInstructions: s.SpecialInstructions,
		},
	}
}
