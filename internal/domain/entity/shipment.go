// internal/domain/entity/shipment.go
package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ShipmentID identifies a shipment. Mock data uses numeric ids, so JSON input
// may carry either a number or a string.
type ShipmentID string

// UnmarshalJSON accepts 42 as well as "42"
func (id *ShipmentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ShipmentID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("shipment id must be a string or number: %w", err)
	}
	*id = ShipmentID(n.String())
	return nil
}

// Shipment is a single load on the dispatch board
type Shipment struct {
	ID ShipmentID `json:"id"`

	// Routing
	PickupLocation   string `json:"pickupLocation"`
	DeliveryLocation string `json:"deliveryLocation"`
	PickupDate       string `json:"pickupDate"`   // YYYY-MM-DD
	DeliveryDate     string `json:"deliveryDate"` // YYYY-MM-DD
	PickupTime       string `json:"pickupTime,omitempty"`
	DeliveryTime     string `json:"deliveryTime,omitempty"`

	// Commercial
	Customer          string  `json:"customer"`
	CustomerReference string  `json:"customerReference"`
	CustomerContact   string  `json:"customer_contact,omitempty"`
	CustomerPhone     string  `json:"customer_phone,omitempty"`
	CustomerEmail     string  `json:"customer_email,omitempty"`
	Rate              float64 `json:"rate"`
	Carrier           string  `json:"carrier"`
	CarrierRate       float64 `json:"carrier_rate"`
	AdditionalCharges float64 `json:"additional_charges"`
	PaymentTerms      string  `json:"payment_terms,omitempty"`

	// Operational
	Planner             string         `json:"planner"`
	DispatchStatus      DispatchStatus `json:"dispatch_status"`
	EquipmentType       string         `json:"equipment_type"`
	DriverName          string         `json:"driver_name"`
	DriverPhone         string         `json:"driver_phone"`
	TruckNumber         string         `json:"truck_number"`
	ReferenceNumbers    string         `json:"reference_numbers,omitempty"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
}

// Validate checks the fields every stored shipment must satisfy
func (s Shipment) Validate() error {
	if strings.TrimSpace(string(s.ID)) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidShipment)
	}
	if !s.DispatchStatus.IsValid() {
		return fmt.Errorf("%w: shipment %s has %q", ErrInvalidStatus, s.ID, s.DispatchStatus)
	}
	return nil
}

// HasCarrier reports whether a non-blank carrier is assigned
func (s Shipment) HasCarrier() bool {
	return strings.TrimSpace(s.Carrier) != ""
}

// Margin is what the brokerage keeps. It is not clamped at zero.
func (s Shipment) Margin() float64 {
	return s.Rate - s.CarrierRate
}
