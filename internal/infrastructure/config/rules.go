package config

import (
	"fmt"
	"os"
	"time"

	"itinerary-service/internal/usecase"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ConnectionRulesConfig is the connection window, in minutes
type ConnectionRulesConfig struct {
	MinFlightMinutes int `yaml:"min_flight_minutes" validate:"gte=0"`
	MinFerryMinutes  int `yaml:"min_ferry_minutes" validate:"gte=0"`
	MaxMinutes       int `yaml:"max_minutes" validate:"gt=0,lte=1440,gtfield=MinFlightMinutes,gtfield=MinFerryMinutes"`
}

// SearchRules is the search tuning read from the rules file
type SearchRules struct {
	LookaheadDays int                   `yaml:"lookahead_days" validate:"gte=1,lte=31"`
	Connection    ConnectionRulesConfig `yaml:"connection"`
}

// DefaultSearchRules mirrors usecase.DefaultSearchOptions
func DefaultSearchRules() SearchRules {
	defaults := usecase.DefaultSearchOptions()
	return SearchRules{
		LookaheadDays: defaults.LookaheadDays,
		Connection: ConnectionRulesConfig{
			MinFlightMinutes: int(defaults.Rules.MinFlightConnection / time.Minute),
			MinFerryMinutes:  int(defaults.Rules.MinFerryConnection / time.Minute),
			MaxMinutes:       int(defaults.Rules.MaxConnection / time.Minute),
		},
	}
}

// LoadSearchRules reads a YAML rules file over base. Keys missing from the
// file keep their base value.
func LoadSearchRules(path string, base SearchRules) (SearchRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SearchRules{}, fmt.Errorf("read search rules: %w", err)
	}

	rules := base
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return SearchRules{}, fmt.Errorf("parse search rules %s: %w", path, err)
	}
	if err := rules.Validate(); err != nil {
		return SearchRules{}, fmt.Errorf("invalid search rules %s: %w", path, err)
	}
	return rules, nil
}

// Validate checks the rule bounds
func (r SearchRules) Validate() error {
	return validator.New().Struct(r)
}

// SearchOptions converts the rules for the itinerary search
func (r SearchRules) SearchOptions() usecase.SearchOptions {
	return usecase.SearchOptions{
		LookaheadDays: r.LookaheadDays,
		Rules: usecase.ConnectionRules{
			MinFlightConnection: time.Duration(r.Connection.MinFlightMinutes) * time.Minute,
			MinFerryConnection:  time.Duration(r.Connection.MinFerryMinutes) * time.Minute,
			MaxConnection:       time.Duration(r.Connection.MaxMinutes) * time.Minute,
		},
	}
}
