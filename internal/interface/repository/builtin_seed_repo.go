package repository

import (
	"context"
	"errors"

	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/internal/domain/repository"
)

// BuiltinSeedRepository serves the synthetic shipments the dashboard ships with
type BuiltinSeedRepository struct{}

// NewBuiltinSeedRepository creates the default seed source
func NewBuiltinSeedRepository() repository.SeedRepository {
	return &BuiltinSeedRepository{}
}

// Load returns a fresh copy of the synthetic shipments
func (r *BuiltinSeedRepository) Load(ctx context.Context) ([]entity.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SyntheticShipments(), nil
}

// Save is not supported; the builtin set is compiled in
func (r *BuiltinSeedRepository) Save(ctx context.Context, shipments []entity.Shipment) error {
	return errors.New("builtin seed source is read-only")
}

// SyntheticShipments returns the mock freight data used by the dashboard
func SyntheticShipments() []entity.Shipment {
	return []entity.Shipment{
		{
			ID: "1", PickupLocation: "Chicago, IL", DeliveryLocation: "Dallas, TX",
			PickupDate: "2024-03-15", DeliveryDate: "2024-03-17", PickupTime: "08:00", DeliveryTime: "14:00",
			Customer: "Acme Foods", CustomerReference: "ACM-1001", Rate: 2450, Carrier: "",
			CarrierRate: 0, AdditionalCharges: 0, PaymentTerms: "Net 30",
			Planner: "Sarah Lee", DispatchStatus: entity.StatusAvailable, EquipmentType: "53' Reefer",
			ReferenceNumbers: "PO-55120", SpecialInstructions: "Keep at 34-36F",
		},
		{
			ID: "2", PickupLocation: "Atlanta, GA", DeliveryLocation: "Miami, FL",
			PickupDate: "2024-03-16", DeliveryDate: "2024-03-17",
			Customer: "Blue Ridge Supply", CustomerReference: "BRS-220", Rate: 1380, Carrier: "",
			Planner: "Mike Chen", DispatchStatus: entity.StatusAvailable, EquipmentType: "53' Dry Van",
		},
		{
			ID: "3", PickupLocation: "Chicago, IL", DeliveryLocation: "Denver, CO",
			PickupDate: "2024-03-14", DeliveryDate: "2024-03-16", PickupTime: "06:30",
			Customer: "Acme Foods", CustomerReference: "ACM-1002", Rate: 3100, Carrier: "Carrier A",
			CarrierRate: 2600, AdditionalCharges: 150, PaymentTerms: "Net 30",
			Planner: "Sarah Lee", DispatchStatus: entity.StatusPlanned, EquipmentType: "53' Reefer",
			DriverName: "Tom Alvarez", DriverPhone: "555-0142", TruckNumber: "TRK-301",
		},
		{
			ID: "4", PickupLocation: "Memphis, TN", DeliveryLocation: "Columbus, OH",
			PickupDate: "2024-03-13", DeliveryDate: "2024-03-15",
			Customer: "Great Lakes Paper", CustomerReference: "GLP-88", Rate: 1725, Carrier: "Carrier C",
			CarrierRate: 1500, Planner: "Dana Brooks", DispatchStatus: entity.StatusPlanned,
			EquipmentType: "53' Dry Van", DriverName: "Lena Ortiz", DriverPhone: "555-0188", TruckNumber: "TRK-417",
		},
		{
			ID: "5", PickupLocation: "Houston, TX", DeliveryLocation: "Phoenix, AZ",
			PickupDate: "2024-03-12", DeliveryDate: "2024-03-15", PickupTime: "10:00",
			Customer: "Desert Bloom Nursery", CustomerReference: "DBN-7", Rate: 2890, Carrier: "Carrier B",
			CarrierRate: 2400, AdditionalCharges: 75, Planner: "Mike Chen",
			DispatchStatus: entity.StatusPUTracking, EquipmentType: "48' Flatbed",
			DriverName: "Ray Kim", DriverPhone: "555-0107", TruckNumber: "TRK-122",
		},
		{
			ID: "6", PickupLocation: "Dallas, TX", DeliveryLocation: "Chicago, IL",
			PickupDate: "2024-03-12", DeliveryDate: "2024-03-14",
			Customer: "Acme Foods", CustomerReference: "ACM-1003", Rate: 2300, Carrier: "Carrier D",
			CarrierRate: 1950, PaymentTerms: "Net 30", Planner: "Sarah Lee",
			DispatchStatus: entity.StatusPUTracking, EquipmentType: "53' Reefer",
			DriverName: "Ivy Grant", DriverPhone: "555-0191", TruckNumber: "TRK-508",
		},
		{
			ID: "7", PickupLocation: "Kansas City, MO", DeliveryLocation: "St. Louis, MO",
			PickupDate: "2024-03-11", DeliveryDate: "2024-03-12", PickupTime: "07:00", DeliveryTime: "16:30",
			Customer: "Great Lakes Paper", CustomerReference: "GLP-91", Rate: 890, Carrier: "Carrier A",
			CarrierRate: 720, Planner: "Dana Brooks", DispatchStatus: entity.StatusPUTracking,
			EquipmentType: "53' Dry Van", DriverName: "Sam Patel", DriverPhone: "555-0133", TruckNumber: "TRK-219",
		},
		{
			ID: "8", PickupLocation: "Los Angeles, CA", DeliveryLocation: "Las Vegas, NV",
			PickupDate: "2024-03-10", DeliveryDate: "2024-03-11",
			Customer: "Pacific Produce", CustomerReference: "PP-4410", Rate: 1150, Carrier: "Carrier B",
			CarrierRate: 1240, Planner: "Mike Chen", DispatchStatus: entity.StatusLoading,
			EquipmentType: "53' Reefer", DriverName: "Noah Diaz", DriverPhone: "555-0155", TruckNumber: "TRK-610",
			SpecialInstructions: "Detention billed after 2 hours",
		},
		{
			ID: "9", PickupLocation: "Seattle, WA", DeliveryLocation: "Portland, OR",
			PickupDate: "2024-03-10", DeliveryDate: "2024-03-10",
			Customer: "Pacific Produce", CustomerReference: "PP-4415", Rate: 640, Carrier: "Carrier C",
			CarrierRate: 520, Planner: "Dana Brooks", DispatchStatus: entity.StatusLoading,
			EquipmentType: "26' Box Truck", DriverName: "Ava Moss", DriverPhone: "555-0171", TruckNumber: "TRK-044",
		},
		{
			ID: "10", PickupLocation: "Nashville, TN", DeliveryLocation: "Charlotte, NC",
			PickupDate: "2024-03-09", DeliveryDate: "2024-03-11",
			Customer: "Blue Ridge Supply", CustomerReference: "BRS-219", Rate: 1275, Carrier: "Carrier D",
			CarrierRate: 1010, Planner: "Sarah Lee", DispatchStatus: entity.StatusDelTracking,
			EquipmentType: "53' Dry Van", DriverName: "Eli Ford", DriverPhone: "555-0119", TruckNumber: "TRK-733",
		},
		{
			ID: "11", PickupLocation: "Chicago, IL", DeliveryLocation: "Dallas, TX",
			PickupDate: "2024-03-08", DeliveryDate: "2024-03-10",
			Customer: "Acme Foods", CustomerReference: "ACM-0998", Rate: 2450, Carrier: "Carrier A",
			CarrierRate: 2050, PaymentTerms: "Net 30", Planner: "Sarah Lee",
			DispatchStatus: entity.StatusDelTracking, EquipmentType: "53' Reefer",
			DriverName: "Tom Alvarez", DriverPhone: "555-0142", TruckNumber: "TRK-301",
		},
		{
			ID: "12", PickupLocation: "Denver, CO", DeliveryLocation: "Salt Lake City, UT",
			PickupDate: "2024-03-07", DeliveryDate: "2024-03-09",
			Customer: "Desert Bloom Nursery", CustomerReference: "DBN-6", Rate: 1600, Carrier: "Carrier B",
			CarrierRate: 1320, Planner: "Mike Chen", DispatchStatus: entity.StatusDelivering,
			EquipmentType: "48' Flatbed", DriverName: "Ray Kim", DriverPhone: "555-0107", TruckNumber: "TRK-122",
		},
		{
			ID: "13", PickupLocation: "Detroit, MI", DeliveryLocation: "Columbus, OH",
			PickupDate: "2024-03-06", DeliveryDate: "2024-03-07",
			Customer: "Great Lakes Paper", CustomerReference: "GLP-85", Rate: 780, Carrier: "Carrier C",
			CarrierRate: 610, Planner: "Dana Brooks", DispatchStatus: entity.StatusDelivering,
			EquipmentType: "53' Dry Van", DriverName: "Lena Ortiz", DriverPhone: "555-0188", TruckNumber: "TRK-417",
		},
		{
			ID: "14", PickupLocation: "Fresno, CA", DeliveryLocation: "Los Angeles, CA",
			PickupDate: "2024-03-18", DeliveryDate: "2024-03-18",
			Customer: "Pacific Produce", CustomerReference: "PP-4420", Rate: 720, Carrier: "",
			Planner: "Mike Chen", DispatchStatus: entity.StatusAvailable, EquipmentType: "53' Reefer",
		},
	}
}
