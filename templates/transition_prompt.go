package templates

import (
	"fmt"

	"dispatch-board-service/internal/domain/entity"
)

const (
	transitionTitle   = "Confirm Status Change"
	transitionMessage = "Are you sure you want to move this shipment from %q to %q?"
	carrierLabel      = "Assign Carrier *"
	carrierHint       = "Select a carrier..."
)

// TransitionPrompt is the text a UI renders in the drag confirmation dialog
type TransitionPrompt struct {
	Title             string   `json:"title"`
	Message           string   `json:"message"`
	CarrierLabel      string   `json:"carrier_label,omitempty"`
	CarrierHint       string   `json:"carrier_hint,omitempty"`
	Carriers          []string `json:"carriers,omitempty"`
	ValidationMessage string   `json:"validation_message,omitempty"`
	ConfirmEnabled    bool     `json:"confirm_enabled"`
}

// BuildTransitionPrompt renders the dialog for a pending request. The carrier
// picker is only included when the move needs one.
func BuildTransitionPrompt(req entity.TransitionRequest, carriers []string) TransitionPrompt {
	prompt := TransitionPrompt{
		Title:             transitionTitle,
		Message:           fmt.Sprintf(transitionMessage, req.SourceStatus, req.TargetStatus),
		ValidationMessage: req.ValidationMessage(),
		ConfirmEnabled:    req.CanConfirm(),
	}
	if req.RequiresCarrier {
		prompt.CarrierLabel = carrierLabel
		prompt.CarrierHint = carrierHint
		prompt.Carriers = append([]string(nil), carriers...)
	}
	return prompt
}
