package entity

import "errors"

var (
	ErrShipmentNotFound   = errors.New("shipment not found")
	ErrTransitionNotFound = errors.New("transition request not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidStatus      = errors.New("invalid dispatch status")
	ErrInvalidShipment    = errors.New("invalid shipment")
	ErrStatusMismatch     = errors.New("shipment is not in the source status")
	ErrInvalidQuery       = errors.New("invalid query")

	// ErrCarrierRequired blocks a Planned commit until a carrier is chosen.
	ErrCarrierRequired = errors.New("carrier is required")
)
