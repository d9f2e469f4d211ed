package repository

import (
	"context"
	"fmt"

	"dispatch-board-service/internal/domain/entity"
	"dispatch-board-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSeedRepository imports shipments from a MongoDB collection
type MongoSeedRepository struct {
	collection *mongo.Collection
}

// NewMongoSeedRepository creates a new seed repository on the shipments collection
func NewMongoSeedRepository(db *mongo.Database) repository.SeedRepository {
	return &MongoSeedRepository{
		collection: db.Collection("shipments"),
	}
}

type shipmentDocument struct {
	Seq                 int     `bson:"seq"`
	ShipmentID          string  `bson:"shipmentId"`
	PickupLocation      string  `bson:"pickupLocation"`
	DeliveryLocation    string  `bson:"deliveryLocation"`
	PickupDate          string  `bson:"pickupDate"`
	DeliveryDate        string  `bson:"deliveryDate"`
	PickupTime          string  `bson:"pickupTime,omitempty"`
	DeliveryTime        string  `bson:"deliveryTime,omitempty"`
	Customer            string  `bson:"customer"`
	CustomerReference   string  `bson:"customerReference"`
	CustomerContact     string  `bson:"customerContact,omitempty"`
	CustomerPhone       string  `bson:"customerPhone,omitempty"`
	CustomerEmail       string  `bson:"customerEmail,omitempty"`
	Rate                float64 `bson:"rate"`
	Carrier             string  `bson:"carrier"`
	CarrierRate         float64 `bson:"carrierRate"`
	AdditionalCharges   float64 `bson:"additionalCharges"`
	PaymentTerms        string  `bson:"paymentTerms,omitempty"`
	Planner             string  `bson:"planner"`
	DispatchStatus      string  `bson:"dispatchStatus"`
	EquipmentType       string  `bson:"equipmentType"`
	DriverName          string  `bson:"driverName"`
	DriverPhone         string  `bson:"driverPhone"`
	TruckNumber         string  `bson:"truckNumber"`
	ReferenceNumbers    string  `bson:"referenceNumbers,omitempty"`
	SpecialInstructions string  `bson:"specialInstructions,omitempty"`
}

// Load reads every document sorted by seq
func (r *MongoSeedRepository) Load(ctx context.Context) ([]entity.Shipment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query seed shipments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []shipmentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode seed shipments: %w", err)
	}

	shipments := make([]entity.Shipment, 0, len(docs))
	for _, doc := range docs {
		shipments = append(shipments, doc.toEntity())
	}
	return shipments, nil
}

// Save replaces the collection contents with shipments
func (r *MongoSeedRepository) Save(ctx context.Context, shipments []entity.Shipment) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear shipments collection: %w", err)
	}

	// Create unique index on shipmentId
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"shipmentId": 1},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create shipmentId index: %w", err)
	}

	if len(shipments) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(shipments))
	for i, s := range shipments {
		docs = append(docs, toDocument(i, s))
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert seed shipments: %w", err)
	}
	return nil
}

func toDocument(seq int, s entity.Shipment) shipmentDocument {
	return shipmentDocument{
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

func (doc shipmentDocument) toEntity() entity.Shipment {
	return entity.Shipment{
		ID:                  entity.ShipmentID(doc.ShipmentID),
		PickupLocation:      doc.PickupLocation,
		DeliveryLocation:    doc.DeliveryLocation,
		PickupDate:          doc.PickupDate,
		DeliveryDate:        doc.DeliveryDate,
		PickupTime:          doc.PickupTime,
		DeliveryTime:        doc.DeliveryTime,
		Customer:            doc.Customer,
		CustomerReference:   doc.CustomerReference,
		CustomerContact:     doc.CustomerContact,
		CustomerPhone:       doc.CustomerPhone,
		CustomerEmail:       doc.CustomerEmail,
		Rate:                doc.Rate,
		Carrier:             doc.Carrier,
		CarrierRate:         doc.CarrierRate,
		AdditionalCharges:   doc.AdditionalCharges,
		PaymentTerms:        doc.PaymentTerms,
		Planner:             doc.Planner,
		DispatchStatus:      entity.DispatchStatus(doc.DispatchStatus),
		EquipmentType:       doc.EquipmentType,
		DriverName:          doc.DriverName,
		DriverPhone:         doc.DriverPhone,
		TruckNumber:         doc.TruckNumber,
		ReferenceNumbers:    doc.ReferenceNumbers,
		SpecialInstructions: doc.SpecialInstructions,
	}
}
