package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// damaged returns a fighter snapshot that has taken dmg points.
func damaged(t *testing.T, dmg int) Snapshot {
	t.Helper()
	f := NewFighter(Fists(), NoArmor(), nil)
	f.ReceiveDamage(dmg)
	return f.Snapshot()
}

func TestAttackFirst(t *testing.T) {
	f1, f2, f3 := damaged(t, 10), damaged(t, 2), damaged(t, 1)

	id, ok := AttackFirst{}.ChooseTarget([]Snapshot{f2, f1, f3})

	require.True(t, ok)
	assert.Equal(t, f2.ID, id)
}

func TestFallenTimberPicksWeakest(t *testing.T) {
	a, b, c := damaged(t, 10), damaged(t, 18), damaged(t, 15) // health 10, 2, 5

	id, ok := FallenTimber{}.ChooseTarget([]Snapshot{a, b, c})

	require.True(t, ok)
	assert.Equal(t, b.ID, id)
}

func TestNoFreeRidePicksStrongest(t *testing.T) {
	a, b, c := damaged(t, 10), damaged(t, 18), damaged(t, 15)

	id, ok := NoFreeRide{}.ChooseTarget([]Snapshot{a, b, c})

	require.True(t, ok)
	assert.Equal(t, a.ID, id)
}

func TestExtremesKeepFirstOnTie(t *testing.T) {
	a, b, c := damaged(t, 4), damaged(t, 4), damaged(t, 4)
	list := []Snapshot{a, b, c}

	id, _ := FallenTimber{}.ChooseTarget(list)
	assert.Equal(t, a.ID, id)
	id, _ = NoFreeRide{}.ChooseTarget(list)
	assert.Equal(t, a.ID, id)
}

func TestStrategiesWithNoEnemies(t *testing.T) {
	strategies := map[string]Strategy{
		"attack_first":   AttackFirst{},
		"fallen_timber":  FallenTimber{},
		"no_free_ride":   NoFreeRide{},
		"share_the_load": NewShareTheLoad(),
		"my_list":        NewMyList(damaged(t, 0).ID),
	}
	for name, s := range strategies {
		t.Run(name, func(t *testing.T) {
			_, ok := s.ChooseTarget(nil)
			assert.False(t, ok)
		})
	}
}

func TestShareTheLoadVisitsEveryoneEachRound(t *testing.T) {
	enemies := []Snapshot{damaged(t, 0), damaged(t, 0), damaged(t, 0), damaged(t, 0)}
	s := NewShareTheLoad()

	var picks []FighterID
	for i := 0; i < 8; i++ {
		id, ok := s.ChooseTarget(enemies)
		require.True(t, ok)
		picks = append(picks, id)
	}

	// equal health, so each round follows list order
	for i, id := range picks {
		assert.Equal(t, enemies[i%4].ID, id, "pick %d", i)
	}
	for _, e := range enemies {
		assert.Equal(t, 2, s.Attacks(e.ID))
	}
}

func TestShareTheLoadPrefersWeakestAmongLeastHit(t *testing.T) {
	a, b, c := damaged(t, 0), damaged(t, 6), damaged(t, 3)
	s := NewShareTheLoad()
	list := []Snapshot{a, b, c}

	var got []FighterID
	for i := 0; i < 3; i++ {
		id, _ := s.ChooseTarget(list)
		got = append(got, id)
	}
	assert.Equal(t, []FighterID{b.ID, c.ID, a.ID}, got)
}

func TestShareTheLoadZeroValue(t *testing.T) {
	var s ShareTheLoad
	a := damaged(t, 0)
	id, ok := s.ChooseTarget([]Snapshot{a})
	require.True(t, ok)
	assert.Equal(t, a.ID, id)
}

func TestMyListAlternates(t *testing.T) {
	a, b, c := damaged(t, 0), damaged(t, 0), damaged(t, 0)
	s := NewMyList(a.ID, c.ID)
	pool := []Snapshot{a, b, c}

	var got []FighterID
	for i := 0; i < 5; i++ {
		id, ok := s.ChooseTarget(pool)
		require.True(t, ok)
		got = append(got, id)
	}
	assert.Equal(t, []FighterID{a.ID, c.ID, a.ID, c.ID, a.ID}, got)
}

func TestMyListSkipsAbsentAndWraps(t *testing.T) {
	a, b, c := damaged(t, 0), damaged(t, 0), damaged(t, 0)
	s := NewMyList(a.ID, b.ID, c.ID)

	id, _ := s.ChooseTarget([]Snapshot{a, b, c})
	assert.Equal(t, a.ID, id)

	// b is gone, so c is next; the cursor then wraps back to a
	id, _ = s.ChooseTarget([]Snapshot{a, c})
	assert.Equal(t, c.ID, id)
	id, _ = s.ChooseTarget([]Snapshot{a, c})
	assert.Equal(t, a.ID, id)
}

func TestMyListNothingPreferredLeft(t *testing.T) {
	a, b := damaged(t, 0), damaged(t, 0)
	s := NewMyList(a.ID)

	_, ok := s.ChooseTarget([]Snapshot{b})
	assert.False(t, ok)

	_, ok = NewMyList().ChooseTarget([]Snapshot{a})
	assert.False(t, ok)
}

func TestMyListSetPreferredRewinds(t *testing.T) {
	a, b := damaged(t, 0), damaged(t, 0)
	s := NewMyList(a.ID, b.ID)
	s.ChooseTarget([]Snapshot{a, b})

	s.SetPreferred(b.ID, a.ID)
	id, _ := s.ChooseTarget([]Snapshot{a, b})
	assert.Equal(t, b.ID, id)
}

func TestNewStrategy(t *testing.T) {
	for _, name := range StrategyNames() {
		s, err := NewStrategy(name, nil)
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}

	s, err := NewStrategy("", nil)
	require.NoError(t, err)
	assert.IsType(t, AttackFirst{}, s)

	_, err = NewStrategy("berserk", nil)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestNewStrategyReturnsFreshState(t *testing.T) {
	a, b := damaged(t, 0), damaged(t, 0)
	s1, err := NewStrategy(StrategyShareTheLoad, nil)
	require.NoError(t, err)
	s2, err := NewStrategy(StrategyShareTheLoad, nil)
	require.NoError(t, err)

	s1.ChooseTarget([]Snapshot{a, b})
	id, _ := s2.ChooseTarget([]Snapshot{a, b})
	assert.Equal(t, a.ID, id, "second instance must not see the first one's counts")
}
