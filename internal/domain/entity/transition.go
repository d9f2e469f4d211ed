package entity

import (
	"fmt"
	"strings"
	"time"
)

// CarrierRequiredMessage is shown inline while a required carrier is missing
const CarrierRequiredMessage = "Please select a carrier"

// TransitionRule describes what committing a move between two columns requires
type TransitionRule struct {
	From            DispatchStatus
	To              DispatchStatus
	RequiresCarrier bool
}

type statusPair struct{ from, to DispatchStatus }

// guardedTransitions lists the moves that carry extra requirements. Every other
// move between two distinct statuses is allowed unguarded.
var guardedTransitions = map[statusPair]TransitionRule{
	{StatusAvailable, StatusPlanned}: {From: StatusAvailable, To: StatusPlanned, RequiresCarrier: true},
}

// RuleFor returns the rule for moving a shipment from one column to another.
// Both statuses must be valid; from == to is not a transition.
func RuleFor(from, to DispatchStatus) (TransitionRule, error) {
	if !from.IsValid() {
		return TransitionRule{}, fmt.Errorf("%w: source %q", ErrInvalidStatus, from)
	}
	if !to.IsValid() {
		return TransitionRule{}, fmt.Errorf("%w: target %q", ErrInvalidStatus, to)
	}
	if from == to {
		return TransitionRule{}, fmt.Errorf("%w: %q to itself", ErrInvalidStatus, from)
	}
	if rule, ok := guardedTransitions[statusPair{from, to}]; ok {
		return rule, nil
	}
	return TransitionRule{From: from, To: to}, nil
}

// TransitionRequest is a pending, unconfirmed drag between two columns
type TransitionRequest struct {
	ID              string         `json:"id"`
	ShipmentID      ShipmentID     `json:"shipment_id"`
	SourceStatus    DispatchStatus `json:"source_status"`
	TargetStatus    DispatchStatus `json:"target_status"`
	RequiresCarrier bool           `json:"requires_carrier"`
	SelectedCarrier string         `json:"selected_carrier,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// CanConfirm is false while a required carrier has not been chosen
func (r TransitionRequest) CanConfirm() bool {
	return !r.RequiresCarrier || strings.TrimSpace(r.SelectedCarrier) != ""
}

// ValidationMessage explains why confirming is blocked, or returns ""
func (r TransitionRequest) ValidationMessage() string {
	if r.CanConfirm() {
		return ""
	}
	return CarrierRequiredMessage
}
