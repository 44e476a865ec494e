package combat

import (
	"go.uber.org/zap"
)

// Arena owns the fighters and who-fights-whom. Fighters take turns in the
// order they were added.
type Arena struct {
	fighters []*Fighter
	index    map[FighterID]int
	enmities map[FighterID][]FighterID

	emit     func(Event)
	log      *zap.Logger
	maxTurns int
	record   bool
}

type ArenaOption func(*Arena)

// WithEmitter receives every battle event as it happens.
func WithEmitter(emit func(Event)) ArenaOption {
	return func(a *Arena) { a.emit = emit }
}

func WithLogger(l *zap.Logger) ArenaOption {
	return func(a *Arena) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMaxTurns stops the battle after n turns. Zero means no limit.
func WithMaxTurns(n int) ArenaOption {
	return func(a *Arena) { a.maxTurns = n }
}

// WithRecord keeps the full event log on the Result.
func WithRecord(record bool) ArenaOption {
	return func(a *Arena) { a.record = record }
}

func NewArena(opts ...ArenaOption) *Arena {
	a := &Arena{
		index:    map[FighterID]int{},
		enmities: map[FighterID][]FighterID{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddFighter registers f at the end of the turn order. Adding the same
// fighter twice is a no-op.
func (a *Arena) AddFighter(f *Fighter) FighterID {
	if _, ok := a.index[f.ID()]; !ok {
		a.index[f.ID()] = len(a.fighters)
		a.fighters = append(a.fighters, f)
	}
	return f.ID()
}

// NewFighter creates a fighter and registers it in one step.
func (a *Arena) NewFighter(weapon Weapon, armor Armor, strategy Strategy, opts ...FighterOption) FighterID {
	return a.AddFighter(NewFighter(weapon, armor, strategy, opts...))
}

func (a *Arena) Len() int { return len(a.fighters) }

func (a *Arena) Fighter(id FighterID) (Snapshot, bool) {
	f := a.lookup(id)
	if f == nil {
		return Snapshot{}, false
	}
	return f.Snapshot(), true
}

// Fighters returns snapshots in turn order.
func (a *Arena) Fighters() []Snapshot {
	out := make([]Snapshot, len(a.fighters))
	for i, f := range a.fighters {
		out[i] = f.Snapshot()
	}
	return out
}

func (a *Arena) lookup(id FighterID) *Fighter {
	i, ok := a.index[id]
	if !ok {
		return nil
	}
	return a.fighters[i]
}

// AddEnemy makes enemy a valid target for fighter. Unknown ids and
// self-enmity are ignored, and repeated calls add nothing.
func (a *Arena) AddEnemy(fighter, enemy FighterID) {
	if fighter == enemy || a.lookup(fighter) == nil || a.lookup(enemy) == nil {
		return
	}
	for _, id := range a.enmities[fighter] {
		if id == enemy {
			return
		}
	}
	a.enmities[fighter] = append(a.enmities[fighter], enemy)
}

func (a *Arena) AddMutualEnemies(x, y FighterID) {
	a.AddEnemy(x, y)
	a.AddEnemy(y, x)
}

// Deathmatch makes every fighter an enemy of every other fighter.
func (a *Arena) Deathmatch() {
	for _, f := range a.fighters {
		for _, g := range a.fighters {
			a.AddEnemy(f.ID(), g.ID())
		}
	}
}

func (a *Arena) EnemiesOf(id FighterID) []FighterID {
	return append([]FighterID(nil), a.enmities[id]...)
}

// Run plays turns until every fighter is knocked out, i.e. dead or alive with
// nobody left to attack. It panics with ErrNoFighters on an empty arena.
//
// A fighter that has no target, or names one outside its candidates, is
// knocked out. If a whole cycle goes by without anyone losing health or being
// knocked out, the battle is a stalemate and ends.
func (a *Arena) Run() Result {
	n := len(a.fighters)
	if n == 0 {
		panic(ErrNoFighters)
	}

	var res Result
	emit := func(ev Event) {
		if a.record {
			res.Events = append(res.Events, ev)
		}
		if a.emit != nil {
			a.emit(ev)
		}
	}

	knockedOut := make(map[FighterID]struct{}, n)
	current, idle := 0, 0
	for len(knockedOut) < n {
		res.Turns++
		f := a.fighters[current]
		if a.takeTurn(res.Turns, f, knockedOut, &res, emit) {
			idle = 0
		} else {
			idle++
		}
		current = (current + 1) % n

		if len(knockedOut) == n {
			break
		}
		if idle >= n {
			res.Stalemate = true
			emit(Event{Turn: res.Turns, Type: EventStalemate})
			a.log.Debug("battle stalled", zap.Int("turn", res.Turns))
			break
		}
		if a.maxTurns > 0 && res.Turns >= a.maxTurns {
			res.TurnLimitHit = true
			emit(Event{Turn: res.Turns, Type: EventTurnLimit})
			a.log.Debug("turn limit reached", zap.Int("turn", res.Turns))
			break
		}
	}

	for _, f := range a.fighters {
		if f.IsAlive() {
			res.Survivors = append(res.Survivors, f.Snapshot())
		}
	}
	if len(res.Survivors) == 1 {
		w := res.Survivors[0]
		res.Winner = &w
	}
	return res
}

// takeTurn plays f's turn and reports whether anything changed.
func (a *Arena) takeTurn(turn int, f *Fighter, knockedOut map[FighterID]struct{}, res *Result, emit func(Event)) bool {
	if _, out := knockedOut[f.ID()]; out {
		return false
	}
	if !f.IsAlive() {
		knockedOut[f.ID()] = struct{}{}
		return true
	}

	candidates := a.candidatesFor(f)
	targetID, ok := f.ChooseTarget(candidates)
	if ok && !containsID(candidates, targetID) {
		ok = false
	}
	if !ok {
		knockedOut[f.ID()] = struct{}{}
		emit(Event{Turn: turn, Type: EventKnockedOut, Payload: map[string]any{
			"id": f.ID().String(), "name": f.Name(), "hp": f.Health(),
		}})
		a.log.Debug("fighter knocked out", zap.Stringer("fighter", f), zap.Int("turn", turn))
		return true
	}

	target := a.lookup(targetID)
	before := target.Health()
	died := target.ReceiveDamage(f.AttackPower())
	emit(Event{Turn: turn, Type: EventAttack, Payload: map[string]any{
		"attacker": f.Name(), "target": target.Name(),
		"weapon": f.Weapon().Name, "armor": target.Armor().Name,
		"dmg": before - target.Health(), "hp": target.Health(),
	}})
	if died {
		res.Deaths = append(res.Deaths, target.ID())
		emit(Event{Turn: turn, Type: EventDeath, Payload: map[string]any{
			"id": target.ID().String(), "name": target.Name(), "killer": f.Name(),
		}})
		a.log.Info("fighter died",
			zap.String("fighter", target.ID().String()),
			zap.String("name", target.Name()),
			zap.Int("turn", turn))
	}
	return target.Health() != before
}

// candidatesFor lists f's living enemies in turn order.
func (a *Arena) candidatesFor(f *Fighter) []Snapshot {
	enemies := a.enmities[f.ID()]
	if len(enemies) == 0 {
		return nil
	}
	isEnemy := make(map[FighterID]struct{}, len(enemies))
	for _, id := range enemies {
		isEnemy[id] = struct{}{}
	}
	out := make([]Snapshot, 0, len(enemies))
	for _, g := range a.fighters {
		if _, ok := isEnemy[g.ID()]; ok && g.IsAlive() {
			out = append(out, g.Snapshot())
		}
	}
	return out
}

func containsID(list []Snapshot, id FighterID) bool {
	for _, s := range list {
		if s.ID == id {
			return true
		}
	}
	return false
}
