package usecase

import (
	"context"
	"fmt"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"
	"itinerary-service/pkg/utils"
)

// AliasGraph is an immutable snapshot of the two-level location hierarchy
type AliasGraph struct {
	parent   map[string]string
	children map[string][]string
}

// NewAliasGraph builds the graph from parent links
func NewAliasGraph(links []entity.LocationLink) *AliasGraph {
	g := &AliasGraph{
		parent:   make(map[string]string, len(links)),
		children: make(map[string][]string),
	}
	for _, link := range links {
		code := utils.NormalizeCode(link.Code)
		parent := utils.NormalizeCode(link.ParentCode)
		if code == "" || parent == "" || parent == code {
			continue
		}
		g.parent[code] = parent
		g.children[parent] = append(g.children[parent], code)
	}
	return g
}

// LoadAliasGraph reads the hierarchy from the location repository
func LoadAliasGraph(ctx context.Context, locations repository.LocationRepository) (*AliasGraph, error) {
	links, err := locations.ListHierarchy(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: location hierarchy: %w", entity.ErrRepositoryUnavailable, err)
	}
	return NewAliasGraph(links), nil
}

// Resolve expands a code to itself, its children, its parent and its siblings.
// Unknown codes resolve to a singleton set.
func (g *AliasGraph) Resolve(code string) utils.StringSet {
	code = utils.NormalizeCode(code)
	aliases := utils.NewStringSet(code)

	for _, child := range g.children[code] {
		aliases.Add(child)
	}
	if parent, ok := g.parent[code]; ok {
		aliases.Add(parent)
		for _, sibling := range g.children[parent] {
			aliases.Add(sibling)
		}
	}
	return aliases
}
