package api

import (
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/pkg/utils"
)

// Itinerary kinds in search responses
const (
	KindDirect     = "direct"
	KindConnection = "connection"
)

// LegView is the flattened JSON form of one leg
type LegView struct {
	ID              uint    `json:"id"`
	Source          string  `json:"source"`
	Carrier         string  `json:"carrier"`
	CarrierCode     string  `json:"carrier_code"`
	Type            string  `json:"type"`
	Origin          string  `json:"origin"`
	OriginName      string  `json:"origin_name"`
	OriginCity      string  `json:"origin_city"`
	Destination     string  `json:"destination"`
	DestinationName string  `json:"destination_name"`
	DestinationCity string  `json:"destination_city"`
	DepartureTime   *string `json:"departure_time"`
	ArrivalTime     *string `json:"arrival_time"`
	Duration        *int    `json:"duration"`
	IsFerry         bool    `json:"is_ferry"`
	Date            string  `json:"date"`
	Price           string  `json:"price,omitempty"`
}

// ItineraryView is one search result. Direct results inline their leg;
// connections list both legs with the layover summary.
type ItineraryView struct {
	Kind string `json:"kind"`
	*LegView
	Legs               []LegView `json:"legs,omitempty"`
	TotalDuration      *int      `json:"total_duration,omitempty"`
	ConnectionDuration *int      `json:"connection_duration,omitempty"`
	LayoverText        string    `json:"layover_text,omitempty"`
	Hub                string    `json:"hub,omitempty"`
}

// SearchResponse is the JSON body of a search
type SearchResponse struct {
	Results        []ItineraryView `json:"results"`
	SearchDate     string          `json:"search_date"`
	FoundDate      string          `json:"found_date"`
	DateWasChanged bool            `json:"date_was_changed"`
}

// FormatSearchResult renders a search result for the API
func FormatSearchResult(result entity.SearchResult) SearchResponse {
	resp := SearchResponse{
		Results:        make([]ItineraryView, 0, len(result.Itineraries)),
		SearchDate:     utils.FormatISODate(result.Query.Date),
		FoundDate:      utils.FormatISODate(result.FoundDate),
		DateWasChanged: result.DateWasChanged,
	}

	for _, it := range result.Itineraries {
		resp.Results = append(resp.Results, formatItinerary(it, result.FoundDate))
	}
	return resp
}

func formatItinerary(it entity.Itinerary, date time.Time) ItineraryView {
	if !it.IsConnection() {
		leg := formatLeg(it.First(), date)
		return ItineraryView{Kind: KindDirect, LegView: &leg}
	}

	view := ItineraryView{Kind: KindConnection}
	for _, leg := range it.Legs {
		view.Legs = append(view.Legs, formatLeg(leg, date))
	}
	if total, ok := it.TotalDurationMinutes(); ok {
		view.TotalDuration = &total
	}
	if it.Layover != nil {
		gap := int(it.Layover.Gap / time.Minute)
		view.ConnectionDuration = &gap
		view.LayoverText = utils.FormatLayover(it.Layover.Gap, it.Layover.Hub.Code, it.Layover.Hub.City)
		view.Hub = it.Layover.Hub.Code
	}
	return view
}

func formatLeg(leg entity.Leg, date time.Time) LegView {
	carrier := leg.Carrier()
	origin, destination := leg.Origin(), leg.Destination()

	view := LegView{
		Source:          string(leg.Kind()),
		Carrier:         carrier.Name,
		CarrierCode:     carrier.Code,
		Type:            string(carrier.Kind),
		Origin:          origin.Code,
		OriginName:      origin.Name,
		OriginCity:      origin.City,
		Destination:     destination.Code,
		DestinationName: destination.Name,
		DestinationCity: destination.City,
		DepartureTime:   clockText(leg.DepartureTime()),
		ArrivalTime:     clockText(leg.ArrivalTime()),
		IsFerry:         carrier.Kind.IsSea(),
		Date:            utils.FormatISODate(date),
	}
	if d, ok := leg.DurationMinutes(); ok {
		view.Duration = &d
	}

	switch l := leg.(type) {
	case entity.RouteLeg:
		view.ID = l.Route.ID
	case entity.SailingLeg:
		view.ID = l.Sailing.ID
		view.Date = utils.FormatISODate(l.Sailing.Date)
		view.Price = l.Sailing.Price
	}
	return view
}

func clockText(t *entity.ClockTime) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

// LocationView is the JSON form of a location
type LocationView struct {
	ID         uint     `json:"id"`
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	City       string   `json:"city,omitempty"`
	Country    string   `json:"country,omitempty"`
	Type       string   `json:"location_type"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	ParentCode string   `json:"parent,omitempty"`
}

func formatLocation(l entity.Location) LocationView {
	return LocationView{
		ID:         l.ID,
		Code:       l.Code,
		Name:       l.Name,
		City:       l.City,
		Country:    l.Country,
		Type:       string(l.Type),
		Latitude:   l.Latitude,
		Longitude:  l.Longitude,
		ParentCode: l.ParentCode,
	}
}

// CarrierView is the JSON form of a carrier
type CarrierView struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Website string `json:"website,omitempty"`
}

func formatCarrier(c entity.Carrier) CarrierView {
	return CarrierView{Code: c.Code, Name: c.Name, Type: string(c.Kind), Website: c.Website}
}

// RouteView is the JSON form of a recurring route
type RouteView struct {
	ID              uint         `json:"id"`
	Origin          LocationView `json:"origin"`
	Destination     LocationView `json:"destination"`
	Carrier         CarrierView  `json:"carrier"`
	DurationMinutes *int         `json:"duration_minutes"`
	DepartureTime   *string      `json:"departure_time"`
	ArrivalTime     *string      `json:"arrival_time"`
	DaysOfOperation string       `json:"days_of_operation"`
	IsFerry         bool         `json:"is_ferry"`
	IsActive        bool         `json:"is_active"`
}

func formatRoute(r entity.Route) RouteView {
	return RouteView{
		ID:              r.ID,
		Origin:          formatLocation(r.Origin),
		Destination:     formatLocation(r.Destination),
		Carrier:         formatCarrier(r.Carrier),
		DurationMinutes: r.DurationMinutes,
		DepartureTime:   clockText(r.DepartureTime),
		ArrivalTime:     clockText(r.ArrivalTime),
		DaysOfOperation: r.DaysOfOperation,
		IsFerry:         r.Carrier.Kind.IsSea(),
		IsActive:        r.IsActive,
	}
}
