package repository

import (
	"path/filepath"
	"testing"

	"itinerary-service/pkg/logger"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a throwaway SQLite database with the schedule schema and
// a small Caribbean network:
//
//	locations: MIA, PTP, DOM, GPPTP (child of PTP), DMROS (child of DOM)
//	routes:    1 MIA>DOM AA days 135
//	           2 MIA>PTP AA daily
//	           3 PTP>DOM WM daily, inactive
//	           4 GPPTP>DMROS LXI daily, no arrival time
//	sailings:  10 route 4 on 2024-01-01, 11 route 4 on 2024-01-02
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "itinerary.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if err := db.AutoMigrate(&Locations{}, &Carriers{}, &Routes{}, &Sailings{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	seed := []string{
		`INSERT INTO core_location (id, code, name, city, country, location_type, parent_id, updated_at) VALUES
			(1, 'MIA', 'Miami International', 'Miami', 'US', 'APT', NULL, '2024-01-01 00:00:00'),
			(2, 'PTP', 'Pôle Caraïbes', 'Pointe-à-Pitre', 'GP', 'APT', NULL, '2024-01-01 00:00:00'),
			(3, 'DOM', 'Douglas-Charles', 'Marigot', 'DM', 'APT', NULL, '2024-01-01 00:00:00'),
			(4, 'GPPTP', 'Gare Maritime', 'Pointe-à-Pitre', 'GP', 'PRT', 2, '2024-01-01 00:00:00'),
			(5, 'DMROS', 'Roseau Ferry Terminal', 'Roseau', 'DM', 'PRT', 3, '2024-01-01 00:00:00')`,
		`INSERT INTO core_carrier (id, code, name, carrier_type, website) VALUES
			(1, 'AA', 'American Airlines', 'AIR', ''),
			(2, 'WM', 'Winair', 'AIR', ''),
			(3, 'LXI', 'L''Express des Iles', 'SEA', 'https://www.express-des-iles.com')`,
		`INSERT INTO core_route (id, origin_id, destination_id, carrier_id, days_of_operation, is_active, duration_minutes, departure_time, arrival_time, updated_at) VALUES
			(1, 1, 3, 1, '135', true, 180, '08:00:00', '11:00:00', '2024-01-01 00:00:00'),
			(2, 1, 2, 1, '1234567', true, 180, '07:00:00', '10:00:00', '2024-01-01 00:00:00'),
			(3, 2, 3, 2, '1234567', false, 60, '12:00:00', '13:00:00', '2024-01-01 00:00:00'),
			(4, 4, 5, 3, '1234567', true, 120, '08:00:00', NULL, '2024-01-01 00:00:00')`,
		`INSERT INTO core_sailing (id, route_id, date, departure_time, arrival_time, duration_minutes, price) VALUES
			(10, 4, '2024-01-01', '14:00:00', '16:15:00', 135, '45.00'),
			(11, 4, '2024-01-02', '09:00:00', '11:00:00', 120, '')`,
	}
	for _, s := range seed {
		if err := db.Exec(s).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return db
}

func newTestScheduleRepository(t *testing.T) *GormScheduleRepository {
	t.Helper()
	return NewGormScheduleRepository(newTestDB(t), logger.NewNopLogger()).(*GormScheduleRepository)
}
