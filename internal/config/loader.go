package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"arena/internal/combat"
)

var (
	ErrEmptyRoster    = errors.New("roster has no fighters")
	ErrDuplicateName  = errors.New("duplicate fighter name")
	ErrUnknownFighter = errors.New("unknown fighter")
	ErrEnmityMode     = errors.New("unknown enmity mode")
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadRoster reads and validates a roster file.
func LoadRoster(path string) (*RosterConfig, error) {
	var rc RosterConfig
	if err := loadYAML(path, &rc); err != nil {
		return nil, fmt.Errorf("load roster %s: %w", path, err)
	}
	rc.Normalize()
	if err := rc.Validate(); err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return &rc, nil
}

// ParseRoster validates a roster held in memory.
func ParseRoster(b []byte) (*RosterConfig, error) {
	var rc RosterConfig
	if err := yaml.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	rc.Normalize()
	if err := rc.Validate(); err != nil {
		return nil, err
	}
	return &rc, nil
}

// Normalize trims fighter names and every reference to them, so that
// Validate and the scenario builder key fighters the same way.
func (rc *RosterConfig) Normalize() {
	for i := range rc.Fighters {
		f := &rc.Fighters[i]
		f.Name = strings.TrimSpace(f.Name)
		for j := range f.Prefers {
			f.Prefers[j] = strings.TrimSpace(f.Prefers[j])
		}
	}
	rc.Enmities.Mode = strings.TrimSpace(rc.Enmities.Mode)
	for i := range rc.Enmities.Pairs {
		for j := range rc.Enmities.Pairs[i] {
			rc.Enmities.Pairs[i][j] = strings.TrimSpace(rc.Enmities.Pairs[i][j])
		}
	}
}

// Validate checks names, gear and cross references. Names are compared
// exactly; loaders call Normalize first. It never modifies rc, so one roster
// can be validated from several goroutines.
func (rc *RosterConfig) Validate() error {
	if len(rc.Fighters) == 0 {
		return ErrEmptyRoster
	}
	names := make(map[string]struct{}, len(rc.Fighters))
	for i, f := range rc.Fighters {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("fighter #%d: missing name", i+1)
		}
		if _, dup := names[f.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, f.Name)
		}
		names[f.Name] = struct{}{}
		if _, err := combat.WeaponByName(f.Weapon); err != nil {
			return fmt.Errorf("fighter %q: %w", f.Name, err)
		}
		if _, err := combat.ArmorByName(f.Armor); err != nil {
			return fmt.Errorf("fighter %q: %w", f.Name, err)
		}
		if _, err := combat.NewStrategy(f.Strategy, nil); err != nil {
			return fmt.Errorf("fighter %q: %w", f.Name, err)
		}
	}
	for _, f := range rc.Fighters {
		for _, p := range f.Prefers {
			if _, ok := names[p]; !ok {
				return fmt.Errorf("fighter %q prefers %w %q", f.Name, ErrUnknownFighter, p)
			}
		}
	}

	switch rc.Enmities.Mode {
	case "", ModeDeathmatch:
		if len(rc.Enmities.Pairs) > 0 {
			return fmt.Errorf("%w: pairs need mode %q", ErrEnmityMode, ModeExplicit)
		}
	case ModeExplicit:
		for _, pair := range rc.Enmities.Pairs {
			for _, n := range pair {
				if _, ok := names[n]; !ok {
					return fmt.Errorf("enmity %v: %w %q", pair, ErrUnknownFighter, n)
				}
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrEnmityMode, rc.Enmities.Mode)
	}
	if rc.MaxTurns < 0 {
		return fmt.Errorf("max_turns must be >= 0, got %d", rc.MaxTurns)
	}
	return nil
}
