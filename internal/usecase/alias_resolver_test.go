package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"itinerary-service/internal/domain/entity"
)

func caribbeanLinks() []entity.LocationLink {
	return []entity.LocationLink{
		{Code: "DOM"},
		{Code: "DMROS", ParentCode: "DOM"},
		{Code: "DCF", ParentCode: "DOM"},
		{Code: "PTP"},
		{Code: "GPPTP", ParentCode: "PTP"},
		{Code: "JFK"},
	}
}

func TestAliasGraphResolve(t *testing.T) {
	graph := NewAliasGraph(caribbeanLinks())

	tests := []struct {
		name string
		code string
		want []string
	}{
		{name: "parent includes children", code: "DOM", want: []string{"DCF", "DMROS", "DOM"}},
		{name: "child includes parent and siblings", code: "DMROS", want: []string{"DCF", "DMROS", "DOM"}},
		{name: "single child", code: "GPPTP", want: []string{"GPPTP", "PTP"}},
		{name: "no hierarchy", code: "JFK", want: []string{"JFK"}},
		{name: "unknown code", code: "XYZ", want: []string{"XYZ"}},
		{name: "normalized input", code: "  dmros ", want: []string{"DCF", "DMROS", "DOM"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.Resolve(tt.code).Sorted()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAliasGraphClosure(t *testing.T) {
	links := caribbeanLinks()
	graph := NewAliasGraph(links)

	for _, link := range links {
		if link.ParentCode == "" {
			continue
		}
		child := graph.Resolve(link.Code)
		if !child.Has(link.ParentCode) {
			t.Errorf("resolve(%s) is missing parent %s", link.Code, link.ParentCode)
		}
		if !graph.Resolve(link.ParentCode).Has(link.Code) {
			t.Errorf("resolve(%s) is missing child %s", link.ParentCode, link.Code)
		}
		for _, sibling := range links {
			if sibling.ParentCode == link.ParentCode && !child.Has(sibling.Code) {
				t.Errorf("resolve(%s) is missing sibling %s", link.Code, sibling.Code)
			}
		}
	}
}

func TestAliasGraphIgnoresSelfParent(t *testing.T) {
	graph := NewAliasGraph([]entity.LocationLink{{Code: "SJU", ParentCode: "SJU"}})
	if got := graph.Resolve("SJU").Sorted(); !reflect.DeepEqual(got, []string{"SJU"}) {
		t.Errorf("expected [SJU], got %v", got)
	}
}

func TestLoadAliasGraphWrapsRepositoryFailure(t *testing.T) {
	_, err := LoadAliasGraph(context.Background(), &fakeLocations{err: errStoreDown})
	if !errors.Is(err, entity.ErrRepositoryUnavailable) {
		t.Fatalf("expected ErrRepositoryUnavailable, got %v", err)
	}
	if !errors.Is(err, errStoreDown) {
		t.Errorf("expected the store error to be preserved, got %v", err)
	}
}
