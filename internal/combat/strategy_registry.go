package combat

import (
	"fmt"
	"sort"
	"strings"
)

// Strategy names as they appear in rosters.
const (
	StrategyAttackFirst  = "attack_first"
	StrategyFallenTimber = "fallen_timber"
	StrategyNoFreeRide   = "no_free_ride"
	StrategyShareTheLoad = "share_the_load"
	StrategyMyList       = "my_list"
)

var strategyFactories = map[string]func(preferred []FighterID) Strategy{
	StrategyAttackFirst:  func([]FighterID) Strategy { return AttackFirst{} },
	StrategyFallenTimber: func([]FighterID) Strategy { return FallenTimber{} },
	StrategyNoFreeRide:   func([]FighterID) Strategy { return NoFreeRide{} },
	StrategyShareTheLoad: func([]FighterID) Strategy { return NewShareTheLoad() },
	StrategyMyList:       func(p []FighterID) Strategy { return NewMyList(p...) },
}

// NewStrategy builds a fresh strategy instance by name. preferred is only
// used by my_list. Every call returns a new instance, stateful strategies are
// never shared between fighters.
func NewStrategy(name string, preferred []FighterID) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = StrategyAttackFirst
	}
	factory, ok := strategyFactories[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return factory(preferred), nil
}

// StrategyNames lists the registered strategy names in sorted order.
func StrategyNames() []string {
	out := make([]string, 0, len(strategyFactories))
	for name := range strategyFactories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
