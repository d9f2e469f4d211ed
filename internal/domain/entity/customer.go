package entity

// Customer is derived from the shipment collection on every read
type Customer struct {
	ID               ShipmentID      `json:"id"`
	Name             string          `json:"name"`
	TotalShipments   int             `json:"totalShipments"`
	TotalSpent       float64         `json:"totalSpent"`
	AvgShipmentCost  int64           `json:"avgShipmentCost"`
	CommonLocations  CommonLocations `json:"commonLocations"`
	LastShipmentDate string          `json:"lastShipmentDate"`
	Profile          CustomerProfile `json:"profile"`
}

// CommonLocations holds the most frequent pickup and delivery for a customer
type CommonLocations struct {
	Pickup   string `json:"pickup"`
	Delivery string `json:"delivery"`
}

// CustomerProfile carries demo contact defaults used by the customer picker
type CustomerProfile struct {
	Name                       string `json:"name"`
	PrimaryContact             string `json:"primaryContact"`
	ContactPhone               string `json:"contactPhone"`
	ContactEmail               string `json:"contactEmail"`
	BillingAddress             string `json:"billingAddress"`
	DefaultEquipment           string `json:"defaultEquipment"`
	RequiresTemperatureControl bool   `json:"requiresTemperatureControl"`
	DefaultTempMin             string `json:"defaultTempMin"`
	DefaultTempMax             string `json:"defaultTempMax"`
}

// CustomerSortField names a sortable column of the customer table
type CustomerSortField string

const (
	SortByName             CustomerSortField = "name"
	SortByTotalShipments   CustomerSortField = "totalShipments"
	SortByTotalSpent       CustomerSortField = "totalSpent"
	SortByAvgShipmentCost  CustomerSortField = "avgShipmentCost"
	SortByLastShipmentDate CustomerSortField = "lastShipmentDate"
)

// IsValid reports whether f names a sortable column
func (f CustomerSortField) IsValid() bool {
	switch f {
	case SortByName, SortByTotalShipments, SortByTotalSpent, SortByAvgShipmentCost, SortByLastShipmentDate:
		return true
	}
	return false
}

// CustomerQuery filters and orders the customer table
type CustomerQuery struct {
	Search     string            `query:"search"`
	Sort       CustomerSortField `query:"sort"`
	Descending bool              `query:"-"`
}
