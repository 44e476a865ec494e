package config

// Enmity modes.
const (
	ModeDeathmatch = "deathmatch"
	ModeExplicit   = "explicit"
)

type RosterConfig struct {
	Fighters []FighterDef `yaml:"fighters"`
	Enmities EnmityConfig `yaml:"enmities"`
	MaxTurns int          `yaml:"max_turns"`
	Shuffle  bool         `yaml:"shuffle"`
	Note     string       `yaml:"note"`
}

type FighterDef struct {
	Name     string   `yaml:"name"`
	Weapon   string   `yaml:"weapon"`
	Armor    string   `yaml:"armor"`
	Strategy string   `yaml:"strategy"`
	Prefers  []string `yaml:"prefers"`
	Note     string   `yaml:"note"`
}

type EnmityConfig struct {
	Mode  string      `yaml:"mode"`
	Pairs [][2]string `yaml:"pairs"`
}

// DefaultRoster is the classic seven-fighter deathmatch: two of each stock
// strategy plus one dagger fighter, in roster order.
func DefaultRoster() *RosterConfig {
	return &RosterConfig{
		Fighters: []FighterDef{
			{Name: "timber_a", Weapon: "fists", Strategy: "fallen_timber"},
			{Name: "timber_b", Weapon: "fists", Strategy: "fallen_timber"},
			{Name: "first_a", Weapon: "fists", Strategy: "attack_first"},
			{Name: "first_b", Weapon: "fists", Strategy: "attack_first"},
			{Name: "freeride_a", Weapon: "fists", Strategy: "no_free_ride"},
			{Name: "freeride_b", Weapon: "fists", Strategy: "no_free_ride"},
			{Name: "dagger", Weapon: "dagger", Strategy: "attack_first"},
		},
		Enmities: EnmityConfig{Mode: ModeDeathmatch},
	}
}
