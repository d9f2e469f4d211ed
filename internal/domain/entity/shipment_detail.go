package entity

// ShipmentDetail is the tabbed, read-optimized view of one shipment
type ShipmentDetail struct {
	ID             ShipmentID     `json:"id"`
	DispatchStatus DispatchStatus `json:"dispatch_status"`
	EditableFields []string       `json:"editable_fields"`
	Customer       CustomerTab    `json:"customer"`
	Carrier        CarrierTab     `json:"carrier"`
	Pricing        PricingTab     `json:"pricing"`
	Details        DetailsTab     `json:"details"`
}

type CustomerTab struct {
	Customer          string `json:"customer"`
	CustomerReference string `json:"customer_reference"`
	Contact           string `json:"contact"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
}

type CarrierTab struct {
	Carrier       string `json:"carrier"`
	EquipmentType string `json:"equipment_type"`
	DriverName    string `json:"driver_name"`
	DriverPhone   string `json:"driver_phone"`
	TruckNumber   string `json:"truck_number"`
}

type PricingTab struct {
	Rate              float64 `json:"rate"`
	CarrierRate       float64 `json:"carrier_rate"`
	Margin            float64 `json:"margin"`
	AdditionalCharges float64 `json:"additional_charges"`
	PaymentTerms      string  `json:"payment_terms"`
}

type DetailsTab struct {
	PickupLocation      string `json:"pickup_location"`
	DeliveryLocation    string `json:"delivery_location"`
	PickupDate          string `json:"pickup_date"`
	PickupTime          string `json:"pickup_time,omitempty"`
	DeliveryDate        string `json:"delivery_date"`
	DeliveryTime        string `json:"delivery_time,omitempty"`
	Planner             string `json:"planner"`
	ReferenceNumbers    string `json:"reference_numbers,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}
