package repository

import (
	"context"
	"fmt"

	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormSeedRepository imports shipments from a SQL table (postgres or sqlite)
type GormSeedRepository struct {
	db *gorm.DB
}

// NewGormSeedRepository creates a new GORM seed repository
func NewGormSeedRepository(db *gorm.DB) repository.SeedRepository {
	return &GormSeedRepository{
		db: db,
	}
}

// DispatchShipments GORM model for database mapping
type DispatchShipments struct {
	gorm.Model
	Seq                 int     `gorm:"column:seq;index"`
	ShipmentID          string  `gorm:"column:shipment_id;uniqueIndex"`
	PickupLocation      string  `gorm:"column:pickup_location"`
	DeliveryLocation    string  `gorm:"column:delivery_location"`
	PickupDate          string  `gorm:"column:pickup_date"`
	DeliveryDate        string  `gorm:"column:delivery_date"`
	PickupTime          string  `gorm:"column:pickup_time"`
	DeliveryTime        string  `gorm:"column:delivery_time"`
	Customer            string  `gorm:"column:customer;index"`
	CustomerReference   string  `gorm:"column:customer_reference"`
	CustomerContact     string  `gorm:"column:customer_contact"`
	CustomerPhone       string  `gorm:"column:customer_phone"`
	CustomerEmail       string  `gorm:"column:customer_email"`
	Rate                float64 `gorm:"column:rate"`
	Carrier             string  `gorm:"column:carrier"`
	CarrierRate         float64 `gorm:"column:carrier_rate"`
	AdditionalCharges   float64 `gorm:"column:additional_charges"`
	PaymentTerms        string  `gorm:"column:payment_terms"`
	Planner             string  `gorm:"column:planner"`
	DispatchStatus      string  `gorm:"column:dispatch_status"`
	EquipmentType       string  `gorm:"column:equipment_type"`
	DriverName          string  `gorm:"column:driver_name"`
	DriverPhone         string  `gorm:"column:driver_phone"`
	TruckNumber         string  `gorm:"column:truck_number"`
	ReferenceNumbers    string  `gorm:"column:reference_numbers"`
	SpecialInstructions string  `gorm:"column:special_instructions"`
}

// TableName overrides the default table name
func (DispatchShipments) TableName() string {
	return "dispatch_shipments"
}

// Load reads every row ordered by seq
func (r *GormSeedRepository) Load(ctx context.Context) ([]entity.Shipment, error) {
	var rows []DispatchShipments
	result := r.db.WithContext(ctx).Order("seq ASC").Order("id ASC").Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load seed shipments: %w", result.Error)
	}

	// Convert GORM models to domain entities
	shipments := make([]entity.Shipment, 0, len(rows))
	for _, row := range rows {
		shipments = append(shipments, row.toEntity())
	}
	return shipments, nil
}

// Save migrates the table and replaces its contents with shipments
func (r *GormSeedRepository) Save(ctx context.Context, shipments []entity.Shipment) error {
	db := r.db.WithContext(ctx)
	if err := db.AutoMigrate(&DispatchShipments{}); err != nil {
		return fmt.Errorf("failed to migrate dispatch_shipments: %w", err)
	}

	rows := make([]DispatchShipments, 0, len(shipments))
	for i, s := range shipments {
		rows = append(rows, fromEntity(i, s))
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&DispatchShipments{}).Error; err != nil {
			return fmt.Errorf("failed to clear dispatch_shipments: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&rows, 100).Error; err != nil {
			return fmt.Errorf("failed to insert seed shipments: %w", err)
		}
		return nil
	})
}

func fromEntity(seq int, s entity.Shipment) DispatchShipments {
	return DispatchShipments{
		Seq:                 seq,
		ShipmentID:          string(s.ID),
		PickupLocation:      s.PickupLocation,
		DeliveryLocation:    s.DeliveryLocation,
		PickupDate:          s.PickupDate,
		DeliveryDate:        s.DeliveryDate,
		PickupTime:          s.PickupTime,
		DeliveryTime:        s.DeliveryTime,
		Customer:            s.Customer,
		CustomerReference:   s.CustomerReference,
		CustomerContact:     s.CustomerContact,
		CustomerPhone:       s.CustomerPhone,
		CustomerEmail:       s.CustomerEmail,
		Rate:                s.Rate,
		Carrier:             s.Carrier,
		CarrierRate:         s.CarrierRate,
		AdditionalCharges:   s.AdditionalCharges,
		PaymentTerms:        s.PaymentTerms,
		Planner:             s.Planner,
		DispatchStatus:      string(s.DispatchStatus),
		EquipmentType:       s.EquipmentType,
		DriverName:          s.DriverName,
		DriverPhone:         s.DriverPhone,
		TruckNumber:         s.TruckNumber,
		ReferenceNumbers:    s.ReferenceNumbers,
		SpecialInstructions: s.SpecialInstructions,
	}
}

func (row DispatchShipments) toEntity() entity.Shipment {
	return entity.Shipment{
		ID:                  entity.ShipmentID(row.ShipmentID),
		PickupLocation:      row.PickupLocation,
		DeliveryLocation:    row.DeliveryLocation,
		PickupDate:          row.PickupDate,
		DeliveryDate:        row.DeliveryDate,
		PickupTime:          row.PickupTime,
		DeliveryTime:        row.DeliveryTime,
		Customer:            row.Customer,
		CustomerReference:   row.CustomerReference,
		CustomerContact:     row.CustomerContact,
		CustomerPhone:       row.CustomerPhone,
		CustomerEmail:       row.CustomerEmail,
		Rate:                row.Rate,
		Carrier:             row.Carrier,
		CarrierRate:         row.CarrierRate,
		AdditionalCharges:   row.AdditionalCharges,
		PaymentTerms:        row.PaymentTerms,
		Planner:             row.Planner,
		DispatchStatus:      entity.DispatchStatus(row.DispatchStatus),
		EquipmentType:       row.EquipmentType,
		DriverName:          row.DriverName,
		DriverPhone:         row.DriverPhone,
		TruckNumber:         row.TruckNumber,
		ReferenceNumbers:    row.ReferenceNumbers,
		SpecialInstructions: row.SpecialInstructions,
	}
}
