package combat

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxHealth is both the starting health and the healing cap.
const MaxHealth = 20

type Weapon struct {
	Name   string
	Attack int
}

func Fists() Weapon  { return Weapon{Name: "fists", Attack: 2} }
func Dagger() Weapon { return Weapon{Name: "dagger", Attack: 4} }

// WeaponByName resolves a weapon from its roster name.
func WeaponByName(name string) (Weapon, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fists":
		return Fists(), nil
	case "dagger":
		return Dagger(), nil
	}
	return Weapon{}, fmt.Errorf("%w: %q", ErrUnknownWeapon, name)
}

type Armor struct {
	Name       string
	Protection int
}

func NoArmor() Armor { return Armor{Name: "none"} }
func Leather() Armor { return Armor{Name: "leather", Protection: 3} }

// ArmorByName resolves an armor from its roster name.
func ArmorByName(name string) (Armor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return NoArmor(), nil
	case "leather":
		return Leather(), nil
	}
	return Armor{}, fmt.Errorf("%w: %q", ErrUnknownArmor, name)
}

type Fighter struct {
	id       FighterID
	name     string
	health   int
	weapon   Weapon
	armor    Armor
	strategy Strategy
}

type FighterOption func(*Fighter)

func WithName(name string) FighterOption {
	return func(f *Fighter) { f.name = name }
}

// NewFighter creates a fighter at full health. A nil strategy falls back to
// AttackFirst.
func NewFighter(weapon Weapon, armor Armor, strategy Strategy, opts ...FighterOption) *Fighter {
	if strategy == nil {
		strategy = AttackFirst{}
	}
	f := &Fighter{
		id:       uuid.New(),
		health:   MaxHealth,
		weapon:   weapon,
		armor:    armor,
		strategy: strategy,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.name == "" {
		f.name = f.id.String()[:8]
	}
	return f
}

func (f *Fighter) ID() FighterID    { return f.id }
func (f *Fighter) Name() string     { return f.name }
func (f *Fighter) Health() int      { return f.health }
func (f *Fighter) IsAlive() bool    { return f.health > 0 }
func (f *Fighter) AttackPower() int { return f.weapon.Attack }
func (f *Fighter) Protection() int  { return f.armor.Protection }
func (f *Fighter) Weapon() Weapon   { return f.weapon }
func (f *Fighter) Armor() Armor     { return f.armor }

func (f *Fighter) SwapWeapon(w Weapon) { f.weapon = w }

// ReceiveDamage applies the damage left after armor, if any. It reports
// whether this hit killed the fighter.
func (f *Fighter) ReceiveDamage(points int) bool {
	net := points - f.armor.Protection
	if net <= 0 {
		return false
	}
	wasAlive := f.IsAlive()
	f.health -= net
	return wasAlive && !f.IsAlive()
}

// ReceiveHealing raises health up to MaxHealth. Dead fighters are healed like
// anyone else.
func (f *Fighter) ReceiveHealing(points int) {
	if points <= 0 {
		return
	}
	f.health += points
	if f.health > MaxHealth {
		f.health = MaxHealth
	}
}

func (f *Fighter) ChooseTarget(enemies []Snapshot) (FighterID, bool) {
	return f.strategy.ChooseTarget(enemies)
}

func (f *Fighter) Snapshot() Snapshot {
	return Snapshot{ID: f.id, Name: f.name, Health: f.health, Alive: f.IsAlive()}
}

func (f *Fighter) String() string {
	return fmt.Sprintf("%s hp=%d atk=%d def=%d", f.name, f.health, f.weapon.Attack, f.armor.Protection)
}
