package combat

import "sync"

// Strategy picks which of the living enemies to attack. It must not retain or
// modify the snapshots; any memory it keeps is its own.
type Strategy interface {
	ChooseTarget(enemies []Snapshot) (FighterID, bool)
}

// AttackFirst always hits the first enemy in the list.
type AttackFirst struct{}

func (AttackFirst) ChooseTarget(enemies []Snapshot) (FighterID, bool) {
	if len(enemies) == 0 {
		return FighterID{}, false
	}
	return enemies[0].ID, true
}

// FallenTimber finishes off the weakest enemy. Ties go to the earliest one.
type FallenTimber struct{}

func (FallenTimber) ChooseTarget(enemies []Snapshot) (FighterID, bool) {
	if len(enemies) == 0 {
		return FighterID{}, false
	}
	weakest := enemies[0]
	for _, e := range enemies[1:] {
		if e.Health < weakest.Health {
			weakest = e
		}
	}
	return weakest.ID, true
}

// NoFreeRide goes after the healthiest enemy. Ties go to the earliest one.
type NoFreeRide struct{}

func (NoFreeRide) ChooseTarget(enemies []Snapshot) (FighterID, bool) {
	if len(enemies) == 0 {
		return FighterID{}, false
	}
	strongest := enemies[0]
	for _, e := range enemies[1:] {
		if e.Health > strongest.Health {
			strongest = e
		}
	}
	return strongest.ID, true
}

// ShareTheLoad spreads attacks evenly: it only considers the enemies it has
// hit the fewest times, and among those picks the weakest.
type ShareTheLoad struct {
	mu     sync.Mutex
	counts map[FighterID]int
}

func NewShareTheLoad() *ShareTheLoad {
	return &ShareTheLoad{counts: map[FighterID]int{}}
}

func (s *ShareTheLoad) ChooseTarget(enemies []Snapshot) (FighterID, bool) {
	if len(enemies) == 0 {
		return FighterID{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.counts == nil {
		s.counts = map[FighterID]int{}
	}

	least := s.counts[enemies[0].ID]
	for _, e := range enemies[1:] {
		if c := s.counts[e.ID]; c < least {
			least = c
		}
	}
	pool := make([]Snapshot, 0, len(enemies))
	for _, e := range enemies {
		if s.counts[e.ID] == least {
			pool = append(pool, e)
		}
	}

	id, ok := FallenTimber{}.ChooseTarget(pool)
	if ok {
		s.counts[id]++
	}
	return id, ok
}

// Attacks returns how many times this strategy has picked id.
func (s *ShareTheLoad) Attacks(id FighterID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[id]
}

// MyList walks a fixed preference list, resuming after the last pick so that
// preferred targets are attacked in rotation.
type MyList struct {
	mu        sync.Mutex
	preferred []FighterID
	next      int
}

func NewMyList(preferred ...FighterID) *MyList {
	return &MyList{preferred: append([]FighterID(nil), preferred...)}
}

func (m *MyList) ChooseTarget(enemies []Snapshot) (FighterID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.preferred)
	if n == 0 || len(enemies) == 0 {
		return FighterID{}, false
	}

	present := make(map[FighterID]struct{}, len(enemies))
	for _, e := range enemies {
		present[e.ID] = struct{}{}
	}
	for step := 0; step < n; step++ {
		i := (m.next + step) % n
		if _, ok := present[m.preferred[i]]; ok {
			m.next = (i + 1) % n
			return m.preferred[i], true
		}
	}
	return FighterID{}, false
}

// SetPreferred replaces the preference list and rewinds the cursor. Rosters
// use it once every fighter has an id.
func (m *MyList) SetPreferred(preferred ...FighterID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.preferred = append([]FighterID(nil), preferred...)
	m.next = 0
}
