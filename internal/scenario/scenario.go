// Package scenario turns a roster into a ready-to-run arena.
package scenario

import (
	"fmt"
	"math/rand"

	"arena/internal/combat"
	"arena/internal/config"
	"arena/internal/util"
)

// Battle is an arena plus the roster names of its fighters.
type Battle struct {
	Arena *combat.Arena
	IDs   map[string]combat.FighterID
	Names map[combat.FighterID]string
}

type preferrer interface {
	SetPreferred(ids ...combat.FighterID)
}

// Build creates the fighters in roster order, or in a seeded shuffle when the
// roster asks for one, and wires the enmities. rng may be nil when the roster
// is not shuffled.
func Build(rc *config.RosterConfig, rng *rand.Rand, opts ...combat.ArenaOption) (*Battle, error) {
	if err := rc.Validate(); err != nil {
		return nil, err
	}
	opts = append([]combat.ArenaOption{combat.WithMaxTurns(rc.MaxTurns)}, opts...)
	b := &Battle{
		Arena: combat.NewArena(opts...),
		IDs:   make(map[string]combat.FighterID, len(rc.Fighters)),
		Names: make(map[combat.FighterID]string, len(rc.Fighters)),
	}

	pending := map[string]preferrer{}
	for _, i := range util.Order(rng, len(rc.Fighters), rc.Shuffle) {
		def := rc.Fighters[i]
		weapon, err := combat.WeaponByName(def.Weapon)
		if err != nil {
			return nil, fmt.Errorf("fighter %q: %w", def.Name, err)
		}
		armor, err := combat.ArmorByName(def.Armor)
		if err != nil {
			return nil, fmt.Errorf("fighter %q: %w", def.Name, err)
		}
		strategy, err := combat.NewStrategy(def.Strategy, nil)
		if err != nil {
			return nil, fmt.Errorf("fighter %q: %w", def.Name, err)
		}
		if p, ok := strategy.(preferrer); ok {
			pending[def.Name] = p
		}
		id := b.Arena.NewFighter(weapon, armor, strategy, combat.WithName(def.Name))
		b.IDs[def.Name] = id
		b.Names[id] = def.Name
	}

	for _, def := range rc.Fighters {
		p, ok := pending[def.Name]
		if !ok {
			continue
		}
		ids := make([]combat.FighterID, 0, len(def.Prefers))
		for _, name := range def.Prefers {
			ids = append(ids, b.IDs[name])
		}
		p.SetPreferred(ids...)
	}

	switch rc.Enmities.Mode {
	case config.ModeExplicit:
		for _, pair := range rc.Enmities.Pairs {
			b.Arena.AddEnemy(b.IDs[pair[0]], b.IDs[pair[1]])
		}
	default:
		b.Arena.Deathmatch()
	}
	return b, nil
}

// Run builds and plays one battle.
func Run(rc *config.RosterConfig, seed int64, opts ...combat.ArenaOption) (*Battle, combat.Result, error) {
	b, err := Build(rc, util.New(seed), opts...)
	if err != nil {
		return nil, combat.Result{}, err
	}
	return b, b.Arena.Run(), nil
}
