package app

import (
	"errors"
	"strings"

	"github.com/katalvlaran/amidakuji/game"
)

// Config holds everything one run needs.
type Config struct {
	SettingsPath string // optional HCL settings file

	LogFormat string
	LogLevel  string

	// Start is the 1-based lane to trace. 0 means no selection.
	Start    int
	All      bool // print every lane's result
	ShowPath bool // print the traced coordinates

	Overrides Overrides
}

// Overrides are command-line values that win over the settings file. Nil
// fields were not given on the command line.
type Overrides struct {
	Lanes          *int
	Rows           *int
	Seed           *int64
	Probability    *float64
	ExclusiveRungs *bool
	Participants   []string
}

// Apply returns s with every set override written over it.
func (o Overrides) Apply(s game.Settings) game.Settings {
	if o.Lanes != nil {
		s.Lanes = *o.Lanes
	}
	if o.Rows != nil {
		s.Rows = *o.Rows
	}
	if o.Seed != nil {
		s.Seed = *o.Seed
	}
	if o.Probability != nil {
		s.Probability = *o.Probability
	}
	if o.ExclusiveRungs != nil {
		s.ExclusiveRungs = *o.ExclusiveRungs
	}
	if o.Participants != nil {
		s.Participants = append([]string(nil), o.Participants...)
	}
	return s
}

// NewConfig validates cfg and returns a copy with the log settings
// normalized.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Start < 0 {
		return nil, errors.New("start must be a 1-based lane number or 0 for none")
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	format, err := ParseLogFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = format
	return &cfg, nil
}
