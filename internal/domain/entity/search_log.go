// internal/domain/entity/search_log.go
package entity

import "time"

// SearchLog records one completed search
type SearchLog struct {
	ID             string    `bson:"_id"`
	Origin         string    `bson:"origin"`
	Destination    string    `bson:"destination"`
	SearchDate     string    `bson:"searchDate"`
	FoundDate      string    `bson:"foundDate"`
	DateWasChanged bool      `bson:"dateWasChanged"`
	ResultCount    int       `bson:"resultCount"`
	Direct         int       `bson:"direct"`
	Connections    int       `bson:"connections"`
	DaysScanned    int       `bson:"daysScanned"`
	DurationMs     int64     `bson:"durationMs"`
	CreatedAt      time.Time `bson:"createdAt"`
}
