package entity

// Board maps every dispatch status to the shipments currently in it
type Board map[DispatchStatus][]Shipment

// Column is one board column in display order
type Column struct {
	Status    DispatchStatus `json:"status"`
	Count     int            `json:"count"`
	Shipments []Shipment     `json:"shipments"`
}

// Columns returns the six columns in board order
func (b Board) Columns() []Column {
	out := make([]Column, 0, len(boardOrder))
	for _, status := range boardOrder {
		shipments := b[status]
		if shipments == nil {
			shipments = []Shipment{}
		}
		out = append(out, Column{Status: status, Count: len(shipments), Shipments: shipments})
	}
	return out
}

// Flatten returns the shipments column by column
func (b Board) Flatten() []Shipment {
	var out []Shipment
	for _, status := range boardOrder {
		out = append(out, b[status]...)
	}
	return out
}

// Len counts shipments across all columns
func (b Board) Len() int {
	n := 0
	for _, shipments := range b {
		n += len(shipments)
	}
	return n
}

// FilterCriteria narrows board membership. Empty fields match everything.
type FilterCriteria struct {
	Planner          string `query:"planner" json:"planner,omitempty"`
	Customer         string `query:"customer" json:"customer,omitempty"`
	PickupLocation   string `query:"pickup" json:"pickup,omitempty"`
	DeliveryLocation string `query:"delivery" json:"delivery,omitempty"`
	Carrier          string `query:"carrier" json:"carrier,omitempty"`

	// PickupDate (YYYY-MM-DD) keeps shipments picked up within Days of it
	PickupDate string `query:"pickup_date" json:"pickup_date,omitempty"`
	Days       int    `query:"days" json:"days,omitempty"`
}
