package repository

import (
	"context"
	"errors"
	"testing"

	"itinerary-service/internal/domain/entity"
)

func TestListHierarchy(t *testing.T) {
	repo := NewGormLocationRepository(newTestDB(t))

	links, err := repo.ListHierarchy(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{"DMROS": "DOM", "DOM": "", "GPPTP": "PTP", "MIA": "", "PTP": ""}
	if len(links) != len(want) {
		t.Fatalf("expected %d links, got %d", len(want), len(links))
	}
	for _, link := range links {
		parent, ok := want[link.Code]
		if !ok {
			t.Errorf("unexpected code %s", link.Code)
			continue
		}
		if link.ParentCode != parent {
			t.Errorf("%s: expected parent %q, got %q", link.Code, parent, link.ParentCode)
		}
	}
}

func TestLocationGetByCode(t *testing.T) {
	repo := NewGormLocationRepository(newTestDB(t))

	loc, err := repo.GetByCode(context.Background(), "GPPTP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.ParentCode != "PTP" || loc.City != "Pointe-à-Pitre" || loc.Type != entity.LocationFerryPort {
		t.Errorf("unexpected location: %+v", loc)
	}

	if _, err := repo.GetByCode(context.Background(), "XYZ"); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLocationList(t *testing.T) {
	repo := NewGormLocationRepository(newTestDB(t))

	locations, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	codes := make([]string, 0, len(locations))
	for _, l := range locations {
		codes = append(codes, l.Code)
	}
	want := []string{"DMROS", "DOM", "GPPTP", "MIA", "PTP"}
	for i := range want {
		if i >= len(codes) || codes[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, codes)
		}
	}
	if locations[0].ParentCode != "DOM" {
		t.Errorf("expected DMROS parent DOM, got %q", locations[0].ParentCode)
	}
}

func TestCarrierRepository(t *testing.T) {
	repo := NewGormCarrierRepository(newTestDB(t))

	carrier, err := repo.GetByCode(context.Background(), "LXI")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if carrier.Kind != entity.CarrierSea || carrier.Website == "" {
		t.Errorf("unexpected carrier: %+v", carrier)
	}

	carriers, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(carriers) != 3 {
		t.Errorf("expected 3 carriers, got %d", len(carriers))
	}
}
