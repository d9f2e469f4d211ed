package utils

// Constants
const (
	DATE_LAYOUT = "2006-01-02"
)
