package utils

// Constants
const (
	DATE_LAYOUT = "2006-01-02"

	// LAYOVER_TEMPLATE renders duration and hub, e.g. "2h 05m layover in Pointe-à-Pitre (PTP)"
	LAYOVER_TEMPLATE = "%s layover in %s"
)
