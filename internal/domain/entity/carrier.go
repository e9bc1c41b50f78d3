package entity

// CarrierKind is the transport mode of a carrier
type CarrierKind string

const (
	CarrierAir CarrierKind = "AIR"
	CarrierSea CarrierKind = "SEA"
)

// IsSea reports whether the carrier operates ferries
func (k CarrierKind) IsSea() bool {
	return k == CarrierSea
}

// Carrier represents an airline or ferry operator
type Carrier struct {
	ID      uint
	Code    string
	Name    string
	Kind    CarrierKind
	Website string
}
