package entity

import "time"

// LocationType distinguishes airports from ferry ports
type LocationType string

const (
	LocationAirport   LocationType = "APT"
	LocationFerryPort LocationType = "PRT"
)

// Location represents an airport or ferry terminal
type Location struct {
	ID         uint
	Code       string
	Name       string
	City       string
	Country    string
	Type       LocationType
	Latitude   *float64
	Longitude  *float64
	ParentCode string // empty when the location has no parent
	UpdatedAt  time.Time
}

// LocationLink is the minimal hierarchy record used to build alias sets
type LocationLink struct {
	Code       string
	ParentCode string
}
