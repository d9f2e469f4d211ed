package entity

import (
	"fmt"
	"strings"
)

// DispatchStatus is the board column a shipment currently sits in
type DispatchStatus string

const (
	StatusAvailable   DispatchStatus = "Available"
	StatusPlanned     DispatchStatus = "Planned"
	StatusPUTracking  DispatchStatus = "PU TRACKING"
	StatusLoading     DispatchStatus = "LOADING"
	StatusDelTracking DispatchStatus = "DEL TRACKING"
	StatusDelivering  DispatchStatus = "DELIVERING"
)

var boardOrder = []DispatchStatus{
	StatusAvailable,
	StatusPlanned,
	StatusPUTracking,
	StatusLoading,
	StatusDelTracking,
	StatusDelivering,
}

// AllStatuses returns the six statuses in board column order
func AllStatuses() []DispatchStatus {
	out := make([]DispatchStatus, len(boardOrder))
	copy(out, boardOrder)
	return out
}

// String returns the string representation of the status
func (s DispatchStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the six board statuses
func (s DispatchStatus) IsValid() bool {
	for _, known := range boardOrder {
		if s == known {
			return true
		}
	}
	return false
}

// ParseDispatchStatus matches the exact column title first and falls back to a
// case-insensitive match, so "loading" and "LOADING" both resolve.
func ParseDispatchStatus(raw string) (DispatchStatus, error) {
	trimmed := strings.TrimSpace(raw)
	if s := DispatchStatus(trimmed); s.IsValid() {
		return s, nil
	}
	for _, known := range boardOrder {
		if strings.EqualFold(trimmed, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}
