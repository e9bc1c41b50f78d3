package usecase

import (
	"context"
	"errors"
	"testing"

	"itinerary-service/internal/domain/entity"
)

type fakeCarriers struct {
	carriers []entity.Carrier
	err      error
}

func (f *fakeCarriers) GetByCode(ctx context.Context, code string) (*entity.Carrier, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.carriers {
		if c.Code == code {
			carrier := c
			return &carrier, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (f *fakeCarriers) List(ctx context.Context) ([]entity.Carrier, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.carriers, nil
}

func newTestCatalog() *CatalogService {
	mia, dom, ptp := loc("MIA", "Miami", ""), loc("DOM", "Marigot", ""), loc("PTP", "Pointe-à-Pitre", "")
	return NewCatalogService(
		&fakeLocations{locations: []entity.Location{mia, dom, ptp}},
		&fakeCarriers{carriers: []entity.Carrier{carrierAA, carrierWIA, carrierLXI}},
		&fakeSchedules{routes: []entity.Route{
			newRoute(1, mia, dom, carrierAA),
			newRoute(2, mia, ptp, carrierAA),
			newRoute(3, ptp, dom, carrierWIA),
			newRoute(4, mia, dom, carrierWIA, inactive()),
		}},
	)
}

func TestCatalogGetLocation(t *testing.T) {
	catalog := newTestCatalog()

	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{name: "found", code: "DOM"},
		{name: "found lower case", code: " dom "},
		{name: "unknown", code: "XYZ", wantErr: entity.ErrNotFound},
		{name: "empty", code: " ", wantErr: entity.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.GetLocation(context.Background(), tt.code)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Code != "DOM" {
				t.Errorf("expected DOM, got %s", got.Code)
			}
		})
	}
}

func TestCatalogListRoutes(t *testing.T) {
	catalog := newTestCatalog()

	tests := []struct {
		name        string
		origin      string
		destination string
		want        int
	}{
		{name: "all active", want: 3},
		{name: "by origin", origin: "mia", want: 2},
		{name: "by origin and destination", origin: "MIA", destination: "DOM", want: 1},
		{name: "by destination", destination: "DOM", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routes, err := catalog.ListRoutes(context.Background(), tt.origin, tt.destination)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(routes) != tt.want {
				t.Errorf("expected %d routes, got %d", tt.want, len(routes))
			}
		})
	}
}

func TestCatalogRepositoryFailures(t *testing.T) {
	catalog := NewCatalogService(
		&fakeLocations{err: errStoreDown},
		&fakeCarriers{err: errStoreDown},
		&fakeSchedules{err: errStoreDown},
	)
	ctx := context.Background()

	_, errLocations := catalog.ListLocations(ctx)
	_, errLocation := catalog.GetLocation(ctx, "DOM")
	_, errCarriers := catalog.ListCarriers(ctx)
	_, errRoutes := catalog.ListRoutes(ctx, "", "")

	for name, err := range map[string]error{
		"locations": errLocations,
		"location":  errLocation,
		"carriers":  errCarriers,
		"routes":    errRoutes,
	} {
		if !errors.Is(err, entity.ErrRepositoryUnavailable) {
			t.Errorf("%s: expected ErrRepositoryUnavailable, got %v", name, err)
		}
	}
}
